package driver

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

// Driver управляет пулом водителей. Координаты обновляются диспетчером
// вручную или телеметрией, движок распределения читает их как снапшот.
type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (int64, error) {
	if driverModify.Name == nil ||
		driverModify.Phone == nil ||
		driverModify.CurrentLat == nil ||
		driverModify.CurrentLng == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return 0, ErrInvalidPhone
	}
	if !isValidLat(*driverModify.CurrentLat) || !isValidLng(*driverModify.CurrentLng) {
		return 0, ErrInvalidCoordinates
	}

	id, err := s.repository.Create(ctx, driverModify)
	if err != nil {
		return 0, fmt.Errorf("create driver: %w", err)
	}

	return id, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || *driverModify.ID <= 0 {
		return nil, ErrInvalidDriverID
	}

	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.CurrentLat == nil &&
		driverModify.CurrentLng == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.CurrentLat != nil && !isValidLat(*driverModify.CurrentLat) {
		return nil, ErrInvalidCoordinates
	}
	if driverModify.CurrentLng != nil && !isValidLng(*driverModify.CurrentLng) {
		return nil, ErrInvalidCoordinates
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, id int64) (*entities.Driver, error) {
	if id <= 0 {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}

	return drivers, nil
}
