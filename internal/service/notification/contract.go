//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"dispatch/internal/entities"
)

type MessageFactory interface {
	MessageFor(status entities.OrderStatusType) (string, error)
}

// Sender это внешний канал доставки (push/SMS), вне зоны ответственности ядра.
type Sender interface {
	Send(ctx context.Context, notification entities.CustomerNotification) error
}
