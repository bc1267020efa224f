package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"carwash/internal/errors"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// VehicleService handles vehicles, addressed by plate.
type VehicleService interface {
	Register(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Get(ctx context.Context, plate string) (*model.Vehicle, error)
	Update(ctx context.Context, plate string, patch model.VehiclePatch) (*model.Vehicle, error)
	Delete(ctx context.Context, plate string) error
}

type vehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(repo repository.VehicleRepository) VehicleService {
	return &vehicleService{repo: repo}
}

func (s *vehicleService) Register(ctx context.Context, vehicle *model.Vehicle) (*model.Vehicle, error) {
	_, err := s.repo.FindByPlate(ctx, vehicle.Plate)
	if err == nil {
		return nil, errors.ErrVehicleExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check vehicle existence: %w", err)
	}

	if err := s.repo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	vehicles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *vehicleService) Get(ctx context.Context, plate string) (*model.Vehicle, error) {
	vehicle, err := s.repo.FindByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	return vehicle, nil
}

// Update applies the supplied fields, including a new plate; the unique
// index rejects a plate that is already taken.
func (s *vehicleService) Update(ctx context.Context, plate string, patch model.VehiclePatch) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, plate)
	if err != nil {
		return nil, err
	}
	patch.Apply(vehicle)
	if err := s.repo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, plate string) error {
	vehicle, err := s.Get(ctx, plate)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, vehicle); err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
