package courier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

// callbackPayload это точный wire-формат courier callback, ключи являются
// внешним контрактом.
type callbackPayload struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	Timestamp    string `json:"timestamp"`
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
}

type NotifyResult struct {
	Success bool
	Message string
	OrderID string
	Status  entities.OrderStatusType
}

// Notifier уведомляет внешнюю курьерскую систему о смене статуса заказа
// подписанным callback. Каждая попытка логируется независимо от исхода.
//
// Ошибка доставки возвращается как структурный результат и никогда не должна
// блокировать или откатывать локальный переход статуса: источник истины -
// локальная запись заказа, callback это best-effort downstream уведомление.
type Notifier struct {
	signer     *Signer
	sender     Sender
	attemptLog AttemptLog
	log        handlerLogger
	now        func() time.Time
}

func New(log handlerLogger, signer *Signer, sender Sender, attemptLog AttemptLog) *Notifier {
	return &Notifier{
		signer:     signer,
		sender:     sender,
		attemptLog: attemptLog,
		log:        log.With(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (n *Notifier) Notify(ctx context.Context, order entities.Order, newStatus entities.OrderStatusType) (*NotifyResult, error) {
	payload, err := json.Marshal(callbackPayload{
		OrderID:      order.OrderCode,
		Status:       newStatus.String(),
		Timestamp:    n.now().Format(time.RFC3339),
		CustomerName: order.CustomerName,
		Phone:        order.Phone,
	})
	if err != nil {
		return n.finish(ctx, order, newStatus, false, fmt.Sprintf("encode payload: %v", err)),
			fmt.Errorf("%w: encode payload: %w", ErrCallbackDelivery, err)
	}

	authHeader := n.signer.GenerateAuthHeader(payload)

	response, err := n.sender.Send(ctx, payload, authHeader)
	if err != nil {
		return n.finish(ctx, order, newStatus, false, err.Error()),
			fmt.Errorf("%w: %w", ErrCallbackDelivery, err)
	}

	return n.finish(ctx, order, newStatus, true, response), nil
}

// finish пишет журнал попытки и собирает результат. Сбой записи журнала не
// меняет исход уведомления, только логируется.
func (n *Notifier) finish(ctx context.Context, order entities.Order, status entities.OrderStatusType, success bool, response string) *NotifyResult {
	attempt := entities.CallbackAttempt{
		OrderID:   order.ID,
		Status:    status,
		Success:   success,
		Response:  response,
		Timestamp: n.now(),
	}
	if err := n.attemptLog.RecordAttempt(ctx, attempt); err != nil {
		n.log.With(
			logger.NewField("order", order.OrderCode),
			logger.NewField("error", err),
		).Error("record callback attempt")
	}

	message := "callback delivered"
	if !success {
		message = "callback failed: " + response
	}

	return &NotifyResult{
		Success: success,
		Message: message,
		OrderID: order.OrderCode,
		Status:  status,
	}
}
