//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=audit_test
package audit

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, entry entities.TransitionLogEntry) (*entities.TransitionLogEntry, error)
	ListByOrder(ctx context.Context, orderID int64) ([]entities.TransitionLogEntry, error)
}
