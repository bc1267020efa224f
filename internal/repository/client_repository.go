package repository

import (
	"context"

	"gorm.io/gorm"

	"carwash/internal/model"
)

// ClientRepository defines client persistence operations.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	FindByCedula(ctx context.Context, cedula int64) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Delete(ctx context.Context, client *model.Client) error
}

type clientRepository struct {
	crud[model.Client]
}

// NewClientRepository creates a new client repository.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{crud[model.Client]{db: db}}
}

// FindByCedula finds a client by national id.
func (r *clientRepository) FindByCedula(ctx context.Context, cedula int64) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Where("cliente_cedula = ?", cedula).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
