package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"carwash/internal/errors"
	"carwash/internal/model"
)

func TestClientService_Register(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(*MockClientRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			setupMock: func(m *MockClientRepository) {
				m.On("FindByCedula", mock.Anything, int64(1001)).Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Client")).Return(nil)
			},
		},
		{
			name: "client already exists",
			setupMock: func(m *MockClientRepository) {
				m.On("FindByCedula", mock.Anything, int64(1001)).Return(&model.Client{Cedula: 1001}, nil)
			},
			expectedError: errors.ErrClientExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockClientRepository)
			tt.setupMock(repo)

			svc := NewClientService(repo)
			client, err := svc.Register(context.Background(), &model.Client{Cedula: 1001, Email: "ana@example.com"})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.ErrorIs(t, err, errors.ErrConflict)
				assert.Nil(t, client)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1001), client.Cedula)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestClientService_RegisterThenGet(t *testing.T) {
	repo := new(MockClientRepository)
	stored := &model.Client{Cedula: 1001, Name: "Ana", Email: "ana@example.com"}
	repo.On("FindByCedula", mock.Anything, int64(1001)).Return(nil, gorm.ErrRecordNotFound).Once()
	repo.On("Create", mock.Anything, stored).Return(nil)
	repo.On("FindByCedula", mock.Anything, int64(1001)).Return(stored, nil)

	svc := NewClientService(repo)
	_, err := svc.Register(context.Background(), stored)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestClientService_Update(t *testing.T) {
	t.Run("email owned by another client", func(t *testing.T) {
		repo := new(MockClientRepository)
		repo.On("FindByCedula", mock.Anything, int64(1001)).Return(&model.Client{ID: 1, Cedula: 1001}, nil)
		repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.Client{ID: 2}, nil)

		email := "taken@example.com"
		_, err := NewClientService(repo).Update(context.Background(), 1001, model.ClientPatch{Email: &email})
		assert.ErrorIs(t, err, errors.ErrEmailInUse)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("omitted fields keep their value", func(t *testing.T) {
		repo := new(MockClientRepository)
		client := &model.Client{ID: 1, Cedula: 1001, Name: "Ana", Phone: "555"}
		repo.On("FindByCedula", mock.Anything, int64(1001)).Return(client, nil)
		repo.On("Update", mock.Anything, client).Return(nil)

		phone := "777"
		updated, err := NewClientService(repo).Update(context.Background(), 1001, model.ClientPatch{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "Ana", updated.Name)
		assert.Equal(t, "777", updated.Phone)
	})
}

func TestClientService_DeleteThenGet(t *testing.T) {
	repo := new(MockClientRepository)
	client := &model.Client{ID: 1, Cedula: 1001}
	repo.On("FindByCedula", mock.Anything, int64(1001)).Return(client, nil).Once()
	repo.On("Delete", mock.Anything, client).Return(nil)
	repo.On("FindByCedula", mock.Anything, int64(1001)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewClientService(repo)
	deleted, err := svc.Delete(context.Background(), 1001)
	require.NoError(t, err)
	assert.Equal(t, client, deleted)

	_, err = svc.Get(context.Background(), 1001)
	assert.ErrorIs(t, err, errors.ErrClientNotFound)
}
