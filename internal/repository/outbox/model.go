package outbox

import "time"

type OutboxEventDB struct {
	ID            int64
	OrderID       int64
	EventType     string
	Payload       []byte
	Status        string
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

type CallbackAttemptDB struct {
	ID        int64
	OrderID   int64
	Status    string
	Success   bool
	Response  string
	Timestamp time.Time
}
