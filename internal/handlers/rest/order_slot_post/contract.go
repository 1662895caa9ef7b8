//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_slot_post_test
package order_slot_post

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SelectSlot(ctx context.Context, orderCode string, slotDate time.Time, slotTime string, actorID *string) (*entities.Order, error)
}
