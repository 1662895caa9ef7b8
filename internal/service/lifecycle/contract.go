//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (int64, error)
	GetByCode(ctx context.Context, orderCode string) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

type Validator interface {
	ValidateTransition(current, next entities.OrderStatusType) error
}

type AuditRecorder interface {
	Record(ctx context.Context, orderID int64, oldStatus, newStatus entities.OrderStatusType, actorID *string) (*entities.TransitionLogEntry, error)
}

type Outbox interface {
	Enqueue(ctx context.Context, orderID int64, eventType entities.OutboxEventType, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
