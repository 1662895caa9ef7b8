package audit

import "time"

type TransitionLogDB struct {
	ID        int64
	OrderID   int64
	OldStatus string
	NewStatus string
	Timestamp time.Time
	ActorID   *string
}
