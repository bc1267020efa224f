package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"carwash/internal/errors"
	"carwash/internal/model"
)

func TestCatalogService_Register(t *testing.T) {
	custom := "premium.png"
	empty := ""

	tests := []struct {
		name          string
		image         *string
		expectedImage string
	}{
		{name: "no image uses default", image: nil, expectedImage: model.DefaultServiceImage},
		{name: "empty image uses default", image: &empty, expectedImage: model.DefaultServiceImage},
		{name: "image kept", image: &custom, expectedImage: "premium.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockServiceRepository)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Service")).Return(nil)

			svc, err := NewCatalogService(repo).Register(context.Background(), &model.Service{
				ID:        42,
				Name:      "Lavado completo",
				Price:     decimal.RequireFromString("25.50"),
				ImageName: tt.image,
			})
			require.NoError(t, err)
			assert.Zero(t, svc.ID)
			require.NotNil(t, svc.ImageName)
			assert.Equal(t, tt.expectedImage, *svc.ImageName)
		})
	}
}

func TestCatalogService_Update(t *testing.T) {
	repo := new(MockServiceRepository)
	stored := &model.Service{ID: 3, Name: "Encerado", Price: decimal.NewFromInt(10)}
	repo.On("FindByID", mock.Anything, uint(3)).Return(stored, nil)
	repo.On("Update", mock.Anything, stored).Return(nil)

	price := decimal.RequireFromString("12.75")
	updated, err := NewCatalogService(repo).Update(context.Background(), 3, model.ServicePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Encerado", updated.Name)
	assert.True(t, updated.Price.Equal(price))
}

func TestCatalogService_GetMissing(t *testing.T) {
	repo := new(MockServiceRepository)
	repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := NewCatalogService(repo).Get(context.Background(), 9)
	assert.ErrorIs(t, err, errors.ErrServiceNotFound)
	assert.ErrorIs(t, err, errors.ErrNotFound)
}
