package notification_text

import (
	"fmt"

	"dispatch/internal/entities"
	"dispatch/internal/service/notification"
)

// MessageTextFactory отдает клиентский текст уведомления по статусу заказа.
// Не для каждого статуса есть клиентский текст: внутренние статусы
// распределения клиенту не транслируются.
type MessageTextFactory struct{}

func New() *MessageTextFactory {
	return &MessageTextFactory{}
}

var templates = map[entities.OrderStatusType]string{
	entities.OrderSlotSelected:         "Your delivery slot is confirmed.",
	entities.OrderOutForDelivery:       "Your order is out for delivery.",
	entities.OrderDelivered:            "Your order has been delivered. Thank you!",
	entities.OrderCustomerNotAvailable: "We could not reach you. Your delivery will be rescheduled.",
	entities.OrderRescheduled:          "Your delivery has been rescheduled.",
}

func (f *MessageTextFactory) MessageFor(status entities.OrderStatusType) (string, error) {
	message, ok := templates[status]
	if !ok {
		return "", fmt.Errorf("%w: %s", notification.ErrNoTemplate, status)
	}

	return message, nil
}
