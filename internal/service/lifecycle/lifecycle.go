package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

// Service прогоняет заказ через машину статусов: проверка перехода по таблице,
// запись нового статуса, audit-запись и outbox-события в одной транзакции.
//
// Сайд-эффекты (courier callback, клиентское уведомление) не выполняются
// синхронно: в транзакции фиксируется только намерение, relay обрабатывает
// события в фоне. Медленный или лежащий courier endpoint не блокирует запись
// заказа, и сбой доставки никогда не откатывает переход.
type Service struct {
	repository Repository
	validator  Validator
	audit      AuditRecorder
	outbox     Outbox
	txManager  TxManager
}

func New(
	repository Repository,
	validator Validator,
	audit AuditRecorder,
	outbox Outbox,
	txManager TxManager,
) *Service {
	return &Service{
		repository: repository,
		validator:  validator,
		audit:      audit,
		outbox:     outbox,
		txManager:  txManager,
	}
}

// CreateOrder регистрирует новый заказ. Статус всегда Pending Slot Selection,
// независимо от того, что пришло в modify.
func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (int64, error) {
	if orderModify.OrderCode == nil ||
		orderModify.CustomerName == nil ||
		orderModify.Phone == nil ||
		orderModify.Address == nil ||
		orderModify.Pincode == nil ||
		orderModify.Lat == nil ||
		orderModify.Lng == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidOrderCode(*orderModify.OrderCode) {
		return 0, ErrInvalidOrderCode
	}
	if !isValidPhone(*orderModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidPincode(*orderModify.Pincode) {
		return 0, ErrInvalidPincode
	}

	initial := entities.OrderPendingSlotSelection
	orderModify.Status = &initial
	orderModify.SlotDate = nil
	orderModify.SlotTime = nil
	orderModify.AssignedDriverID = nil

	id, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	return id, nil
}

func (s *Service) GetOrder(ctx context.Context, orderCode string) (*entities.Order, error) {
	if !isValidOrderCode(orderCode) {
		return nil, ErrInvalidOrderCode
	}

	order, err := s.repository.GetByCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderCode, err)
	}

	return order, nil
}

// ChangeStatus применяет запрошенный переход к заказу по его коду.
// actorID nil для системных переходов.
func (s *Service) ChangeStatus(ctx context.Context, orderCode string, requested entities.OrderStatusType, actorID *string) (*entities.Order, error) {
	if !isValidOrderCode(orderCode) {
		return nil, ErrInvalidOrderCode
	}
	// Assigned to Driver выставляет только движок через AssignDriver: прямой
	// запрос записал бы статус без id водителя.
	if requested == entities.OrderAssignedToDriver {
		return nil, ErrAssignmentOnly
	}

	order, err := s.repository.GetByCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderCode, err)
	}

	if err := s.validator.ValidateTransition(order.Status, requested); err != nil {
		return nil, err
	}

	modify := entities.OrderModify{
		ID:     &order.ID,
		Status: &requested,
	}
	return s.applyTransition(ctx, order, modify, requested, actorID)
}

// SelectSlot фиксирует выбранный клиентом слот и переводит заказ в Slot Selected.
func (s *Service) SelectSlot(ctx context.Context, orderCode string, slotDate time.Time, slotTime string, actorID *string) (*entities.Order, error) {
	if !isValidOrderCode(orderCode) {
		return nil, ErrInvalidOrderCode
	}
	if slotDate.IsZero() {
		return nil, ErrMissingSlot
	}

	order, err := s.repository.GetByCode(ctx, orderCode)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderCode, err)
	}

	newStatus := entities.OrderSlotSelected
	if err := s.validator.ValidateTransition(order.Status, newStatus); err != nil {
		return nil, err
	}

	modify := entities.OrderModify{
		ID:       &order.ID,
		Status:   &newStatus,
		SlotDate: &slotDate,
	}
	if slotTime != "" {
		modify.SlotTime = &slotTime
	}
	return s.applyTransition(ctx, order, modify, newStatus, actorID)
}

// AssignDriver это путь движка распределения: единственный легальный способ
// достичь Assigned to Driver. Переход системный, актора нет.
func (s *Service) AssignDriver(ctx context.Context, order entities.Order, driverID int64) (*entities.Order, error) {
	if driverID == 0 {
		return nil, ErrDriverUnspecified
	}

	newStatus := entities.OrderAssignedToDriver
	if err := s.validator.ValidateTransition(order.Status, newStatus); err != nil {
		return nil, err
	}

	modify := entities.OrderModify{
		ID:               &order.ID,
		Status:           &newStatus,
		AssignedDriverID: &driverID,
	}
	return s.applyTransition(ctx, &order, modify, newStatus, nil)
}

// applyTransition выполняет шаги 2-4 машины статусов в одной транзакции:
// запись статуса, audit, outbox-намерения сайд-эффектов.
func (s *Service) applyTransition(ctx context.Context, order *entities.Order, modify entities.OrderModify, newStatus entities.OrderStatusType, actorID *string) (*entities.Order, error) {
	oldStatus := order.Status

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("persist status: %w", err)
		}

		if _, err := s.audit.Record(ctx, order.ID, oldStatus, newStatus, actorID); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		payload, err := json.Marshal(entities.StatusEventPayload{
			OrderID: order.ID,
			Status:  newStatus,
		})
		if err != nil {
			return fmt.Errorf("encode event payload: %w", err)
		}

		if err := s.outbox.Enqueue(ctx, order.ID, entities.OutboxCourierCallback, payload); err != nil {
			return fmt.Errorf("enqueue courier callback: %w", err)
		}
		if err := s.outbox.Enqueue(ctx, order.ID, entities.OutboxCustomerNotification, payload); err != nil {
			return fmt.Errorf("enqueue customer notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
