package notification

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

// Dispatcher собирает клиентское уведомление из перехода статуса и передает
// его внешнему каналу доставки. Доставку канал не гарантирует и Dispatcher
// ее не ретраит: это best-effort сайд-эффект.
type Dispatcher struct {
	messages MessageFactory
	sender   Sender
}

func New(messages MessageFactory, sender Sender) *Dispatcher {
	return &Dispatcher{
		messages: messages,
		sender:   sender,
	}
}

// Dispatch возвращает собранное сообщение, чтобы вызывающий мог его
// залогировать рядом с audit-записью перехода.
func (d *Dispatcher) Dispatch(ctx context.Context, order entities.Order, newStatus entities.OrderStatusType) (string, error) {
	message, err := d.messages.MessageFor(newStatus)
	if err != nil {
		if errors.Is(err, ErrNoTemplate) {
			// Не для каждого статуса есть клиентский текст, это не сбой.
			return "", nil
		}
		return "", fmt.Errorf("compose notification: %w", err)
	}

	notification := entities.CustomerNotification{
		OrderCode: order.OrderCode,
		Phone:     order.Phone,
		Status:    newStatus,
		Message:   message,
	}

	if err := d.sender.Send(ctx, notification); err != nil {
		return message, fmt.Errorf("send notification: %w", err)
	}
	return message, nil
}
