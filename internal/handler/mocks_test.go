package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	"carwash/internal/model"
	"carwash/internal/service"
)

type testValidator struct {
	v *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{v: validator.New()}
	return e
}

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Register(ctx context.Context, order *model.ServiceOrder) (*model.ServiceOrder, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceOrder), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, status *model.OrderStatus) ([]model.ServiceOrder, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceOrder), args.Error(1)
}

func (m *MockOrderService) Get(ctx context.Context, id uint) (*service.OrderDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderDetail), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id uint, patch model.OrderPatch) (*model.ServiceOrder, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceOrder), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockEarningsService is a mock implementation of service.EarningsService.
type MockEarningsService struct {
	mock.Mock
}

func (m *MockEarningsService) Compute(ctx context.Context, q service.EarningsQuery) (*service.Earnings, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Earnings), args.Error(1)
}

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Register(ctx context.Context, client *model.Client) (*model.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientService) Get(ctx context.Context, cedula int64) (*model.Client, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, cedula int64, patch model.ClientPatch) (*model.Client, error) {
	args := m.Called(ctx, cedula, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, cedula int64) (*model.Client, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Register(ctx context.Context, svc *model.Service) (*model.Service, error) {
	args := m.Called(ctx, svc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, id uint) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, id uint, patch model.ServicePatch) (*model.Service, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
