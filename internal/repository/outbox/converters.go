package outbox

import (
	"dispatch/internal/entities"
)

func ToDomain(e *OutboxEventDB) *entities.OutboxEvent {
	if e == nil {
		return nil
	}

	return &entities.OutboxEvent{
		ID:            e.ID,
		OrderID:       e.OrderID,
		EventType:     entities.OutboxEventType(e.EventType),
		Payload:       e.Payload,
		Status:        entities.OutboxStatusType(e.Status),
		Attempts:      e.Attempts,
		NextAttemptAt: e.NextAttemptAt,
		CreatedAt:     e.CreatedAt,
		ProcessedAt:   e.ProcessedAt,
	}
}

func ToDomainList(eventsDB []OutboxEventDB) []entities.OutboxEvent {
	if len(eventsDB) == 0 {
		return []entities.OutboxEvent{}
	}

	result := make([]entities.OutboxEvent, len(eventsDB))
	for i, eventDB := range eventsDB {
		result[i] = *ToDomain(&eventDB)
	}
	return result
}
