package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"carwash/internal/model"
)

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *model.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, client *model.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) FindByCedula(ctx context.Context, cedula int64) (*model.Client, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) List(ctx context.Context) ([]model.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, client *model.Client) error {
	return m.Called(ctx, client).Error(0)
}

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

func (m *MockVehicleRepository) FindByPlate(ctx context.Context, plate string) (*model.Vehicle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context) ([]model.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, vehicle *model.Vehicle) error {
	return m.Called(ctx, vehicle).Error(0)
}

// MockServiceRepository is a mock implementation of ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) Create(ctx context.Context, service *model.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *model.Service) error {
	return m.Called(ctx, service).Error(0)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Service), args.Error(1)
}

func (m *MockServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Service), args.Error(1)
}

func (m *MockServiceRepository) Delete(ctx context.Context, service *model.Service) error {
	return m.Called(ctx, service).Error(0)
}

// MockEmployeeRepository is a mock implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) FindByID(ctx context.Context, id uint) (*model.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindByCedula(ctx context.Context, cedula int64) (*model.Employee, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]model.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, employee *model.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *model.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint) (*model.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, status *model.OrderStatus) ([]model.ServiceOrder, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ServiceOrder), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, order *model.ServiceOrder) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) SumTotalsForWasher(ctx context.Context, washerID uint, from, to model.Date) (decimal.Decimal, error) {
	args := m.Called(ctx, washerID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockTokenRepository is a mock implementation of TokenRepository.
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(ctx context.Context, record *model.TokenRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockTokenRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockTokenRepository) FindActiveByAccessToken(ctx context.Context, accessToken string) (*model.TokenRecord, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenRecord), args.Error(1)
}

func (m *MockTokenRepository) FindActiveByRefreshToken(ctx context.Context, refreshToken string) (*model.TokenRecord, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenRecord), args.Error(1)
}

func (m *MockTokenRepository) Rotate(ctx context.Context, old *model.TokenRecord, newAccessToken string) (*model.TokenRecord, error) {
	args := m.Called(ctx, old, newAccessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenRecord), args.Error(1)
}

func (m *MockTokenRepository) Deactivate(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

func (m *MockTokenRepository) PurgeStale(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockOperationRepository is a mock implementation of OperationRepository.
type MockOperationRepository struct {
	mock.Mock
}

func (m *MockOperationRepository) Create(ctx context.Context, op *model.Operation) error {
	return m.Called(ctx, op).Error(0)
}

func (m *MockOperationRepository) Update(ctx context.Context, op *model.Operation) error {
	return m.Called(ctx, op).Error(0)
}

func (m *MockOperationRepository) FindByID(ctx context.Context, id uint) (*model.Operation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Operation), args.Error(1)
}

func (m *MockOperationRepository) List(ctx context.Context) ([]model.Operation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Operation), args.Error(1)
}

func (m *MockOperationRepository) Delete(ctx context.Context, op *model.Operation) error {
	return m.Called(ctx, op).Error(0)
}

func (m *MockOperationRepository) ListByRole(ctx context.Context, roleID uint) ([]model.Operation, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Operation), args.Error(1)
}

// MockRoleOperationRepository is a mock implementation of RoleOperationRepository.
type MockRoleOperationRepository struct {
	mock.Mock
}

func (m *MockRoleOperationRepository) Create(ctx context.Context, grant *model.RoleOperation) error {
	return m.Called(ctx, grant).Error(0)
}

func (m *MockRoleOperationRepository) Update(ctx context.Context, grant *model.RoleOperation) error {
	return m.Called(ctx, grant).Error(0)
}

func (m *MockRoleOperationRepository) FindByID(ctx context.Context, id uint) (*model.RoleOperation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RoleOperation), args.Error(1)
}

func (m *MockRoleOperationRepository) List(ctx context.Context) ([]model.RoleOperation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RoleOperation), args.Error(1)
}

func (m *MockRoleOperationRepository) Delete(ctx context.Context, grant *model.RoleOperation) error {
	return m.Called(ctx, grant).Error(0)
}

// MockGrantStore is a mock implementation of GrantStoreInterface.
type MockGrantStore struct {
	mock.Mock
}

func (m *MockGrantStore) GetOperations(ctx context.Context, roleID uint) ([]model.Operation, bool) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]model.Operation), args.Bool(1)
}

func (m *MockGrantStore) StoreOperations(ctx context.Context, roleID uint, ops []model.Operation) error {
	return m.Called(ctx, roleID, ops).Error(0)
}

func (m *MockGrantStore) InvalidateRole(ctx context.Context, roleID uint) error {
	return m.Called(ctx, roleID).Error(0)
}

func (m *MockGrantStore) InvalidateAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockRoleRepository is a mock implementation of RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) Create(ctx context.Context, role *model.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepository) Update(ctx context.Context, role *model.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepository) FindByID(ctx context.Context, id uint) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Role), args.Error(1)
}

func (m *MockRoleRepository) Delete(ctx context.Context, role *model.Role) error {
	return m.Called(ctx, role).Error(0)
}
