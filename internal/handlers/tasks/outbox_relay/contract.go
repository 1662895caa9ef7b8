//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_relay_test
package outbox_relay

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/courier"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Outbox interface {
	ClaimDue(ctx context.Context, limit int) ([]entities.OutboxEvent, error)
	MarkProcessed(ctx context.Context, eventID int64) error
	Reschedule(ctx context.Context, eventID int64, nextAttemptAt time.Time) error
	MarkDeadLetter(ctx context.Context, eventID int64) error
}

type OrderProvider interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type CourierNotifier interface {
	Notify(ctx context.Context, order entities.Order, newStatus entities.OrderStatusType) (*courier.NotifyResult, error)
}

type CustomerNotifier interface {
	Dispatch(ctx context.Context, order entities.Order, newStatus entities.OrderStatusType) (string, error)
}
