package audit

import (
	"dispatch/internal/entities"
)

func ToDomain(e *TransitionLogDB) *entities.TransitionLogEntry {
	if e == nil {
		return nil
	}

	return &entities.TransitionLogEntry{
		ID:        e.ID,
		OrderID:   e.OrderID,
		OldStatus: entities.OrderStatusType(e.OldStatus),
		NewStatus: entities.OrderStatusType(e.NewStatus),
		Timestamp: e.Timestamp,
		ActorID:   e.ActorID,
	}
}

func ToDomainList(entriesDB []TransitionLogDB) []entities.TransitionLogEntry {
	if len(entriesDB) == 0 {
		return []entities.TransitionLogEntry{}
	}

	result := make([]entities.TransitionLogEntry, len(entriesDB))
	for i, entryDB := range entriesDB {
		result[i] = *ToDomain(&entryDB)
	}
	return result
}
