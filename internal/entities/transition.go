package entities

import "time"

// TransitionLogEntry это одна запись append-only журнала переходов статусов.
// ActorID nil для переходов, инициированных системой.
type TransitionLogEntry struct {
	ID        int64
	OrderID   int64
	OldStatus OrderStatusType
	NewStatus OrderStatusType
	Timestamp time.Time
	ActorID   *string
}
