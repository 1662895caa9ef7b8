package outbox_relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/lifecycle"
	"dispatch/pkg/logger"
)

const (
	batchSize       = 100
	maxAttempts     = 8
	backoffBase     = 30 * time.Second
	backoffMaxDelay = 1 * time.Hour
)

// OutboxRelay разгребает outbox: доставляет courier callback и клиентские
// уведомления, записанные транзакцией перехода статуса.
//
// Сбой доставки откладывает событие с экспоненциальным backoff, исчерпание
// попыток переводит его в dead_letter для ручного разбора. Неразбираемое
// событие (битый payload, несуществующий заказ, неизвестный тип) уходит в
// dead_letter сразу: повторы его не вылечат.
type OutboxRelay struct {
	log      handlerLogger
	outbox   Outbox
	orders   OrderProvider
	courier  CourierNotifier
	customer CustomerNotifier
	interval time.Duration
	now      func() time.Time
}

func New(
	log handlerLogger,
	outbox Outbox,
	orders OrderProvider,
	courierNotifier CourierNotifier,
	customerNotifier CustomerNotifier,
	interval time.Duration,
) *OutboxRelay {
	return &OutboxRelay{
		log:      log.With(),
		outbox:   outbox,
		orders:   orders,
		courier:  courierNotifier,
		customer: customerNotifier,
		interval: interval,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	events, err := o.outbox.ClaimDue(ctxWithTimeout, batchSize)
	if err != nil {
		return fmt.Errorf("claim outbox events: %w", err)
	}

	for _, event := range events {
		if ctxWithTimeout.Err() != nil {
			return ctxWithTimeout.Err()
		}
		o.processEvent(ctxWithTimeout, event)
	}

	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}

func (o *OutboxRelay) processEvent(ctx context.Context, event entities.OutboxEvent) {
	eventLog := o.log.With(
		logger.NewField("event_id", event.ID),
		logger.NewField("event_type", event.EventType.String()),
		logger.NewField("attempt", event.Attempts+1),
	)

	err := o.deliver(ctx, event)
	if err == nil {
		if err := o.outbox.MarkProcessed(ctx, event.ID); err != nil {
			eventLog.Error("mark outbox event processed",
				logger.NewField("error", err),
			)
		}
		return
	}

	var permanent *permanentError
	if errors.As(err, &permanent) {
		eventLog.Warn("outbox event is undeliverable, moving to dead letter",
			logger.NewField("error", err),
		)
		o.deadLetter(ctx, event, eventLog)
		return
	}

	if event.Attempts+1 >= maxAttempts {
		eventLog.Error("outbox delivery attempts exhausted, moving to dead letter",
			logger.NewField("error", err),
		)
		o.deadLetter(ctx, event, eventLog)
		return
	}

	nextAttemptAt := o.now().Add(nextDelay(event.Attempts))
	eventLog.Warn("outbox delivery failed, rescheduling",
		logger.NewField("error", err),
		logger.NewField("next_attempt_at", nextAttemptAt),
	)
	if err := o.outbox.Reschedule(ctx, event.ID, nextAttemptAt); err != nil {
		eventLog.Error("reschedule outbox event",
			logger.NewField("error", err),
		)
	}
}

func (o *OutboxRelay) deliver(ctx context.Context, event entities.OutboxEvent) error {
	var payload entities.StatusEventPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return &permanentError{err: fmt.Errorf("decode payload: %w", err)}
	}

	orderEntity, err := o.orders.GetByID(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrOrderNotFound) {
			return &permanentError{err: fmt.Errorf("order %d: %w", payload.OrderID, err)}
		}
		return fmt.Errorf("load order %d: %w", payload.OrderID, err)
	}

	switch event.EventType {
	case entities.OutboxCourierCallback:
		result, err := o.courier.Notify(ctx, *orderEntity, payload.Status)
		if err != nil {
			return err
		}
		o.log.With(
			logger.NewField("order", orderEntity.OrderCode),
			logger.NewField("status", payload.Status.String()),
		).Info(result.Message)
		return nil
	case entities.OutboxCustomerNotification:
		_, err := o.customer.Dispatch(ctx, *orderEntity, payload.Status)
		return err
	default:
		return &permanentError{err: fmt.Errorf("unknown event type %q", event.EventType)}
	}
}

func (o *OutboxRelay) deadLetter(ctx context.Context, event entities.OutboxEvent, eventLog logger.Logger) {
	if err := o.outbox.MarkDeadLetter(ctx, event.ID); err != nil {
		eventLog.Error("mark outbox event dead letter",
			logger.NewField("error", err),
		)
	}
}

// nextDelay удваивает базовую задержку на каждую попытку с верхней границей.
// Джиттер в пределах половины задержки разносит ретраи конкурирующих relay.
func nextDelay(attempts int) time.Duration {
	delay := backoffBase
	for i := 0; i < attempts && delay < backoffMaxDelay; i++ {
		delay *= 2
	}
	if delay > backoffMaxDelay {
		delay = backoffMaxDelay
	}

	return delay/2 + rand.N(delay/2+1)
}

// permanentError помечает событие, которое нельзя доставить никаким числом
// повторов.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}
