package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"carwash/internal/errors"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// ClientService handles client registration and maintenance. Clients are
// addressed by national id (cedula).
type ClientService interface {
	Register(ctx context.Context, client *model.Client) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Get(ctx context.Context, cedula int64) (*model.Client, error)
	Update(ctx context.Context, cedula int64, patch model.ClientPatch) (*model.Client, error)
	Delete(ctx context.Context, cedula int64) (*model.Client, error)
}

type clientService struct {
	repo repository.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func (s *clientService) Register(ctx context.Context, client *model.Client) (*model.Client, error) {
	existing, err := s.repo.FindByCedula(ctx, client.Cedula)
	if err == nil && existing != nil {
		return nil, errors.ErrClientExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check client existence: %w", err)
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) Get(ctx context.Context, cedula int64) (*model.Client, error) {
	client, err := s.repo.FindByCedula(ctx, cedula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return client, nil
}

// Update applies the supplied fields. A new email must not belong to another client.
func (s *clientService) Update(ctx context.Context, cedula int64, patch model.ClientPatch) (*model.Client, error) {
	client, err := s.Get(ctx, cedula)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		other, err := s.repo.FindByEmail(ctx, *patch.Email)
		if err == nil && other.ID != client.ID {
			return nil, errors.ErrEmailInUse
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check client email: %w", err)
		}
	}

	patch.Apply(client)
	if err := s.repo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

// Delete removes the client and returns the deleted record.
func (s *clientService) Delete(ctx context.Context, cedula int64) (*model.Client, error) {
	client, err := s.Get(ctx, cedula)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, client); err != nil {
		return nil, fmt.Errorf("delete client: %w", err)
	}
	return client, nil
}
