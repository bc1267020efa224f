package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"carwash/internal/errors"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// CatalogService manages the wash services offered.
type CatalogService interface {
	Register(ctx context.Context, service *model.Service) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	Get(ctx context.Context, id uint) (*model.Service, error)
	Update(ctx context.Context, id uint, patch model.ServicePatch) (*model.Service, error)
	Delete(ctx context.Context, id uint) error
}

type catalogService struct {
	repo repository.ServiceRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ServiceRepository) CatalogService {
	return &catalogService{repo: repo}
}

// Register always lets the store assign the id.
func (s *catalogService) Register(ctx context.Context, service *model.Service) (*model.Service, error) {
	service.ID = 0
	if service.ImageName == nil || *service.ImageName == "" {
		image := model.DefaultServiceImage
		service.ImageName = &image
	}
	if err := s.repo.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return service, nil
}

func (s *catalogService) List(ctx context.Context) ([]model.Service, error) {
	services, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

func (s *catalogService) Get(ctx context.Context, id uint) (*model.Service, error) {
	service, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}
	return service, nil
}

func (s *catalogService) Update(ctx context.Context, id uint, patch model.ServicePatch) (*model.Service, error) {
	service, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(service)
	if err := s.repo.Update(ctx, service); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}
	return service, nil
}

func (s *catalogService) Delete(ctx context.Context, id uint) error {
	service, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, service); err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
