package audit

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, entry entities.TransitionLogEntry) (*entities.TransitionLogEntry, error) {
	query := `INSERT INTO transition_log (order_id, old_status, new_status, ts, actor_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, order_id, old_status, new_status, ts, actor_id`

	var entryModel TransitionLogDB
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.OrderID,
		entry.OldStatus.String(),
		entry.NewStatus.String(),
		entry.Timestamp,
		entry.ActorID,
	).Scan(
		&entryModel.ID,
		&entryModel.OrderID,
		&entryModel.OldStatus,
		&entryModel.NewStatus,
		&entryModel.Timestamp,
		&entryModel.ActorID,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected audit repository append error: %w", err)
	}

	return ToDomain(&entryModel), nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]entities.TransitionLogEntry, error) {
	query := `
	SELECT id, order_id, old_status, new_status, ts, actor_id
	FROM transition_log
	WHERE order_id = $1
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected audit repository list error: %w", err)
	}
	defer rows.Close()

	entryModels := make([]TransitionLogDB, 0, 8)
	for rows.Next() {
		var entryModel TransitionLogDB
		err := rows.Scan(
			&entryModel.ID,
			&entryModel.OrderID,
			&entryModel.OldStatus,
			&entryModel.NewStatus,
			&entryModel.Timestamp,
			&entryModel.ActorID,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected audit repository list error: %w", err)
		}
		entryModels = append(entryModels, entryModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected audit repository list error: %w", err)
	}

	return ToDomainList(entryModels), nil
}
