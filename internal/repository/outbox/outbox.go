package outbox

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

const eventColumns = `id, order_id, event_type, payload, status, attempts,
	next_attempt_at, created_at, processed_at`

const claimLease = "5 minutes"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Enqueue пишет событие в статусе pending. Вызывается внутри транзакции
// перехода статуса, поэтому событие и переход фиксируются атомарно.
func (r *Repository) Enqueue(ctx context.Context, orderID int64, eventType entities.OutboxEventType, payload []byte) error {
	query := `INSERT INTO outbox_events (order_id, event_type, payload, status, attempts, next_attempt_at)
		VALUES ($1, $2, $3, $4, 0, NOW())`

	_, err := r.querier.Exec(ctx, query, orderID, eventType.String(), payload, entities.OutboxPending.String())
	if err != nil {
		return fmt.Errorf("unexpected outbox repository enqueue error: %w", err)
	}

	return nil
}

// ClaimDue забирает пачку созревших pending-событий под lease: next_attempt_at
// отодвигается на claimLease той же командой, что выбирает события. Параллельный
// экземпляр relay не увидит событие до истечения lease, а после падения
// обработчика событие само возвращается в оборот. Доставка at-least-once:
// событие, обработанное на границе lease, может уйти повторно.
func (r *Repository) ClaimDue(ctx context.Context, limit int) ([]entities.OutboxEvent, error) {
	query := fmt.Sprintf(`
		UPDATE outbox_events SET next_attempt_at = NOW() + INTERVAL '%s'
		WHERE id IN (
			SELECT id FROM outbox_events
			WHERE status = $1 AND next_attempt_at <= NOW()
			ORDER BY next_attempt_at
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING %s`, claimLease, eventColumns)

	rows, err := r.querier.Query(ctx, query, entities.OutboxPending.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]OutboxEventDB, 0, 8)
	for rows.Next() {
		var eventModel OutboxEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.OrderID,
			&eventModel.EventType,
			&eventModel.Payload,
			&eventModel.Status,
			&eventModel.Attempts,
			&eventModel.NextAttemptAt,
			&eventModel.CreatedAt,
			&eventModel.ProcessedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) MarkProcessed(ctx context.Context, eventID int64) error {
	query := `
		UPDATE outbox_events
		SET status = $1, processed_at = NOW()
		WHERE id = $2`

	_, err := r.querier.Exec(ctx, query, entities.OutboxProcessed.String(), eventID)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark processed error: %w", err)
	}

	return nil
}

// Reschedule инкрементирует счетчик попыток и откладывает событие.
func (r *Repository) Reschedule(ctx context.Context, eventID int64, nextAttemptAt time.Time) error {
	query := `
		UPDATE outbox_events
		SET attempts = attempts + 1, next_attempt_at = $1
		WHERE id = $2`

	_, err := r.querier.Exec(ctx, query, nextAttemptAt, eventID)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository reschedule error: %w", err)
	}

	return nil
}

// MarkDeadLetter выводит событие из оборота после исчерпания попыток.
// Дальше только ручная разборка.
func (r *Repository) MarkDeadLetter(ctx context.Context, eventID int64) error {
	query := `
		UPDATE outbox_events
		SET status = $1, attempts = attempts + 1
		WHERE id = $2`

	_, err := r.querier.Exec(ctx, query, entities.OutboxDeadLetter.String(), eventID)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark dead letter error: %w", err)
	}

	return nil
}

func (r *Repository) RecordAttempt(ctx context.Context, attempt entities.CallbackAttempt) error {
	query := `INSERT INTO callback_attempts (order_id, status, success, response, ts)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.querier.Exec(
		ctx,
		query,
		attempt.OrderID,
		attempt.Status.String(),
		attempt.Success,
		attempt.Response,
		attempt.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository record attempt error: %w", err)
	}

	return nil
}
