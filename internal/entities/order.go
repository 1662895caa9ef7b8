package entities

import "time"

type Order struct {
	ID               int64
	OrderCode        string
	CustomerName     string
	Phone            string
	Address          string
	Pincode          string
	Lat              float64
	Lng              float64
	SlotDate         *time.Time
	SlotTime         *string
	Status           OrderStatusType
	AssignedDriverID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderStatusType хранит точные строковые значения статусов внешнего контракта,
// регистр и пробелы значимы.
type OrderStatusType string

const (
	OrderPendingSlotSelection OrderStatusType = "Pending Slot Selection"
	OrderSlotSelected         OrderStatusType = "Slot Selected"
	OrderAssignedToDriver     OrderStatusType = "Assigned to Driver"
	OrderOutForDelivery       OrderStatusType = "Out for Delivery"
	OrderDelivered            OrderStatusType = "Delivered"
	OrderCustomerNotAvailable OrderStatusType = "Customer Not Available"
	OrderRescheduled          OrderStatusType = "Rescheduled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsKnown сообщает, входит ли статус в моделируемый набор.
func (s OrderStatusType) IsKnown() bool {
	switch s {
	case OrderPendingSlotSelection,
		OrderSlotSelected,
		OrderAssignedToDriver,
		OrderOutForDelivery,
		OrderDelivered,
		OrderCustomerNotAvailable,
		OrderRescheduled:
		return true
	default:
		return false
	}
}

type OrderModify struct {
	ID               *int64
	OrderCode        *string
	CustomerName     *string
	Phone            *string
	Address          *string
	Pincode          *string
	Lat              *float64
	Lng              *float64
	SlotDate         *time.Time
	SlotTime         *string
	Status           *OrderStatusType
	AssignedDriverID *int64
}
