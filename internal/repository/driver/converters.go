package driver

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:         d.ID,
		Name:       d.Name,
		Phone:      d.Phone,
		CurrentLat: d.CurrentLat,
		CurrentLng: d.CurrentLng,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}

	return &DriverModifyDB{
		ID:         driverModify.ID,
		Name:       driverModify.Name,
		Phone:      driverModify.Phone,
		CurrentLat: driverModify.CurrentLat,
		CurrentLng: driverModify.CurrentLng,
	}
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
