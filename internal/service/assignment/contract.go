//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"dispatch/internal/entities"
)

type OrderRepository interface {
	// ClaimSlotSelected помечает заказы в статусе Slot Selected как взятые в
	// распределение и возвращает снапшот. Claim на уровне БД сериализует
	// конкурентные прогоны: заказ не может быть назначен дважды.
	ClaimSlotSelected(ctx context.Context, limit int) ([]entities.Order, error)

	// ReleaseClaims снимает отметку с заказов, которые не удалось назначить.
	ReleaseClaims(ctx context.Context, orderIDs []int64) error
}

type DriverRepository interface {
	GetAll(ctx context.Context) ([]entities.Driver, error)
}

type LifecycleService interface {
	AssignDriver(ctx context.Context, order entities.Order, driverID int64) (*entities.Order, error)
}
