package order

import "time"

type OrderDB struct {
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
	Status           string
	AssignedDriverID *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderModifyDB struct {
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
	Status           *string
	AssignedDriverID *int64
}
