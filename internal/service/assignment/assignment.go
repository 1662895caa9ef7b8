package assignment

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

const defaultClaimLimit = 500

type Service struct {
	engine     *Engine
	orders     OrderRepository
	drivers    DriverRepository
	lifecycle  LifecycleService
	claimLimit int
}

func New(engine *Engine, orders OrderRepository, drivers DriverRepository, lifecycle LifecycleService) *Service {
	return &Service{
		engine:     engine,
		orders:     orders,
		drivers:    drivers,
		lifecycle:  lifecycle,
		claimLimit: defaultClaimLimit,
	}
}

// RunAssignment выполняет один batch распределения: claim заказов в Slot
// Selected, прогон движка, применение каждого назначения через lifecycle.
//
// Пустой пул водителей не фатален: batch завершается с ErrNoDriversAvailable,
// claim снимается, результат с нулевыми DriverCount возвращается вызывающему
// для отчета. Ошибка назначения отдельного заказа не прерывает batch - его
// claim снимается и заказ попадет в следующий прогон.
func (s *Service) RunAssignment(ctx context.Context) (*entities.AssignmentResult, error) {
	claimed, err := s.orders.ClaimSlotSelected(ctx, s.claimLimit)
	if err != nil {
		return nil, fmt.Errorf("claim orders: %w", err)
	}
	if len(claimed) == 0 {
		result := s.engine.Assign(nil, nil)
		return &result, nil
	}

	drivers, err := s.drivers.GetAll(ctx)
	if err != nil {
		s.releaseAll(ctx, claimed)
		return nil, fmt.Errorf("load driver pool: %w", err)
	}

	result := s.engine.Assign(claimed, drivers)

	if len(drivers) == 0 {
		s.releaseAll(ctx, claimed)
		return &result, ErrNoDriversAvailable
	}

	var failed []int64
	var errs []error
	for _, group := range result.Groups {
		for _, order := range group.Orders {
			driverID, ok := group.Assignments[order.ID]
			if !ok {
				failed = append(failed, order.ID)
				continue
			}
			if _, err := s.lifecycle.AssignDriver(ctx, order, driverID); err != nil {
				failed = append(failed, order.ID)
				errs = append(errs, fmt.Errorf("assign order %s: %w", order.OrderCode, err))
			}
		}
	}

	if len(failed) > 0 {
		if err := s.orders.ReleaseClaims(ctx, failed); err != nil {
			errs = append(errs, fmt.Errorf("release claims: %w", err))
		}
	}

	return &result, errors.Join(errs...)
}

func (s *Service) releaseAll(ctx context.Context, claimed []entities.Order) {
	ids := make([]int64, 0, len(claimed))
	for _, order := range claimed {
		ids = append(ids, order.ID)
	}
	// Заказ остается в Slot Selected, несброшенный claim истекает по TTL
	// и заказ перечитается следующим прогоном.
	_ = s.orders.ReleaseClaims(ctx, ids)
}
