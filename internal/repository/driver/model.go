package driver

import "time"

type DriverDB struct {
	ID         int64
	Name       string
	Phone      string
	CurrentLat float64
	CurrentLng float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type DriverModifyDB struct {
	ID         *int64
	Name       *string
	Phone      *string
	CurrentLat *float64
	CurrentLng *float64
}
