//go:generate mockgen -source=factory.go -destination=./factory_mocks_test.go -package=status_handle_test
package status_handle

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

var (
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrAssignmentOnly  = errors.New("driver assignment is not requestable directly")
)

type ExecuteFn func(ctx context.Context, orderCode string, actorID *string) error

type LifecycleService interface {
	ChangeStatus(ctx context.Context, orderCode string, requested entities.OrderStatusType, actorID *string) (*entities.Order, error)
}

// StatusHandlerFactory превращает статус входящего события в обработчик
// перехода. Легальность самого перехода проверяет lifecycle, фабрика отсекает
// статусы вне моделируемого набора и Assigned to Driver: его выставляет
// только движок распределения, внешним событием он не запрашивается.
type StatusHandlerFactory struct {
	lifecycleService LifecycleService
}

func NewStatusHandlerFactory(lifecycleService LifecycleService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		lifecycleService: lifecycleService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (ExecuteFn, error) {
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}
	if status == entities.OrderAssignedToDriver {
		return nil, fmt.Errorf("%w: %s", ErrAssignmentOnly, status)
	}

	return func(ctx context.Context, orderCode string, actorID *string) error {
		_, err := f.lifecycleService.ChangeStatus(ctx, orderCode, status, actorID)
		return err
	}, nil
}
