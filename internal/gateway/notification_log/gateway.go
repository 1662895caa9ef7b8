package notification_log

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// Gateway это канал доставки клиентских уведомлений. Внешний push/SMS-провайдер
// сюда еще не подключен, уведомления пишутся в структурный лог: downstream
// собирает их оттуда.
type Gateway struct {
	log logger.Logger
}

func New(log logger.Logger) *Gateway {
	return &Gateway{
		log: log.With(
			logger.NewField("channel", "customer-notification"),
		),
	}
}

func (g *Gateway) Send(_ context.Context, notification entities.CustomerNotification) error {
	g.log.With(
		logger.NewField("order", notification.OrderCode),
		logger.NewField("phone", notification.Phone),
		logger.NewField("status", notification.Status.String()),
	).Info(notification.Message)

	return nil
}
