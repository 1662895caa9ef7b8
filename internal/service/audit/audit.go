package audit

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

// Recorder ведет append-only журнал переходов статусов. Запись не может быть
// отклонена бизнес-правилом и прошлые записи никогда не мутируются.
type Recorder struct {
	repository Repository
	now        func() time.Time
}

func New(repository Repository) *Recorder {
	return &Recorder{
		repository: repository,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewWithClock используется в тестах для фиксированного времени.
func NewWithClock(repository Repository, now func() time.Time) *Recorder {
	return &Recorder{
		repository: repository,
		now:        now,
	}
}

func (r *Recorder) Record(ctx context.Context, orderID int64, oldStatus, newStatus entities.OrderStatusType, actorID *string) (*entities.TransitionLogEntry, error) {
	entry := entities.TransitionLogEntry{
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: r.now(),
		ActorID:   actorID,
	}

	saved, err := r.repository.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("append transition log: %w", err)
	}
	return saved, nil
}

func (r *Recorder) ListByOrder(ctx context.Context, orderID int64) ([]entities.TransitionLogEntry, error) {
	entries, err := r.repository.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list transition log: %w", err)
	}
	return entries, nil
}
