package repository

import (
	"context"

	"gorm.io/gorm"

	"carwash/internal/model"
)

// ServiceRepository persists the wash service catalog.
type ServiceRepository interface {
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Delete(ctx context.Context, service *model.Service) error
}

type serviceRepository struct {
	crud[model.Service]
}

// NewServiceRepository creates a new catalog repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{crud[model.Service]{db: db}}
}
