package status

import (
	"fmt"

	"dispatch/internal/entities"
)

// transitions задает полный направленный граф легальных переходов.
// Delivered терминален и отсутствует как ключ намеренно не случайно:
// для него разрешенных целей нет.
var transitions = map[entities.OrderStatusType][]entities.OrderStatusType{
	entities.OrderPendingSlotSelection: {
		entities.OrderSlotSelected,
		entities.OrderRescheduled,
	},
	entities.OrderSlotSelected: {
		entities.OrderAssignedToDriver,
		entities.OrderOutForDelivery,
		entities.OrderRescheduled,
	},
	entities.OrderAssignedToDriver: {
		entities.OrderOutForDelivery,
		entities.OrderRescheduled,
	},
	entities.OrderOutForDelivery: {
		entities.OrderDelivered,
		entities.OrderCustomerNotAvailable,
		entities.OrderRescheduled,
	},
	entities.OrderCustomerNotAvailable: {
		entities.OrderRescheduled,
	},
	entities.OrderRescheduled: {
		entities.OrderOutForDelivery,
		entities.OrderDelivered,
	},
	entities.OrderDelivered: {},
}

// Validator проверяет переходы статусов заказа по статической таблице.
//
// Поведение для current вне таблицы управляется permissiveUnknown: исторически
// неизвестный исходный статус пропускал любой переход. Это сомнительный, но
// задокументированный дефолт совместимости, поэтому он вынесен в явную опцию
// вместо молчаливого поведения.
type Validator struct {
	permissiveUnknown bool
}

type Option func(*Validator)

// WithPermissiveUnknown включает пропуск переходов из немоделируемых статусов.
func WithPermissiveUnknown(permissive bool) Option {
	return func(v *Validator) {
		v.permissiveUnknown = permissive
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// IsValidTransition чистый предикат, не возвращает ошибок.
// Самопереход запрещен для любого статуса: таблица нигде не перечисляет
// статус как собственную цель.
func (v *Validator) IsValidTransition(current, next entities.OrderStatusType) bool {
	allowed, ok := transitions[current]
	if !ok {
		// Delivered есть в таблице с пустым списком, сюда не попадает.
		return v.permissiveUnknown
	}
	for _, s := range allowed {
		if s == next {
			return true
		}
	}
	return false
}

// ValidateTransition возвращает ошибку с именами обоих статусов.
func (v *Validator) ValidateTransition(current, next entities.OrderStatusType) error {
	if !v.IsValidTransition(current, next) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, current.String(), next.String())
	}
	return nil
}

// AllowedTransitions возвращает копию списка целей для статуса.
func AllowedTransitions(from entities.OrderStatusType) []entities.OrderStatusType {
	allowed, ok := transitions[from]
	if !ok {
		return nil
	}
	result := make([]entities.OrderStatusType, len(allowed))
	copy(result, allowed)
	return result
}
