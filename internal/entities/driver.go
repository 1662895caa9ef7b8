package entities

import "time"

// Driver не мутируется назначением: заказ ссылается на водителя,
// обратной связи нет.
type Driver struct {
	ID         int64
	Name       string
	Phone      string
	CurrentLat float64
	CurrentLng float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type DriverModify struct {
	ID         *int64
	Name       *string
	Phone      *string
	CurrentLat *float64
	CurrentLng *float64
}
