package repository

import (
	"context"

	"gorm.io/gorm"

	"carwash/internal/model"
)

// VehicleRepository defines vehicle persistence operations.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	Update(ctx context.Context, vehicle *model.Vehicle) error
	FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error)
	List(ctx context.Context) ([]model.Vehicle, error)
	Delete(ctx context.Context, vehicle *model.Vehicle) error
}

type vehicleRepository struct {
	crud[model.Vehicle]
}

// NewVehicleRepository creates a new vehicle repository.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{crud[model.Vehicle]{db: db}}
}

func (r *vehicleRepository) FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := r.db.WithContext(ctx).Where("placa = ?", plate).First(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}
