package entities

import "time"

// OutboxEvent это отложенный сайд-эффект перехода статуса, записанный в той же
// транзакции, что и сам переход. Relay обрабатывает события асинхронно.
type OutboxEvent struct {
	ID            int64
	OrderID       int64
	EventType     OutboxEventType
	Payload       []byte
	Status        OutboxStatusType
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

type OutboxEventType string

const (
	OutboxCourierCallback      OutboxEventType = "courier_callback"
	OutboxCustomerNotification OutboxEventType = "customer_notification"
)

func (t OutboxEventType) String() string {
	return string(t)
}

type OutboxStatusType string

const (
	OutboxPending    OutboxStatusType = "pending"
	OutboxProcessed  OutboxStatusType = "processed"
	OutboxDeadLetter OutboxStatusType = "dead_letter"
)

func (t OutboxStatusType) String() string {
	return string(t)
}

// CallbackAttempt это запись журнала попыток доставки courier callback.
// Пишется на каждую попытку независимо от исхода.
type CallbackAttempt struct {
	ID        int64
	OrderID   int64
	Status    OrderStatusType
	Success   bool
	Response  string
	Timestamp time.Time
}

// CustomerNotification это сообщение для клиента, передаваемое внешнему
// каналу доставки (push/SMS). Ядро только формирует содержимое.
type CustomerNotification struct {
	OrderCode string
	Phone     string
	Status    OrderStatusType
	Message   string
}

// StatusEventPayload это содержимое outbox-события перехода статуса.
type StatusEventPayload struct {
	OrderID int64           `json:"order_id"`
	Status  OrderStatusType `json:"status"`
}
