package repository

import (
	"context"

	"gorm.io/gorm"

	"carwash/internal/model"
)

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id uint) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Delete(ctx context.Context, role *model.Role) error
}

// ModuleRepository defines module persistence operations.
type ModuleRepository interface {
	Create(ctx context.Context, module *model.Module) error
	Update(ctx context.Context, module *model.Module) error
	FindByID(ctx context.Context, id uint) (*model.Module, error)
	List(ctx context.Context) ([]model.Module, error)
	Delete(ctx context.Context, module *model.Module) error
}

// OperationRepository defines operation persistence operations.
type OperationRepository interface {
	Create(ctx context.Context, op *model.Operation) error
	Update(ctx context.Context, op *model.Operation) error
	FindByID(ctx context.Context, id uint) (*model.Operation, error)
	List(ctx context.Context) ([]model.Operation, error)
	Delete(ctx context.Context, op *model.Operation) error
	// ListByRole returns the operations granted to roleID.
	ListByRole(ctx context.Context, roleID uint) ([]model.Operation, error)
}

// RoleOperationRepository defines grant persistence operations.
type RoleOperationRepository interface {
	Create(ctx context.Context, grant *model.RoleOperation) error
	Update(ctx context.Context, grant *model.RoleOperation) error
	FindByID(ctx context.Context, id uint) (*model.RoleOperation, error)
	List(ctx context.Context) ([]model.RoleOperation, error)
	Delete(ctx context.Context, grant *model.RoleOperation) error
}

type roleRepository struct{ crud[model.Role] }
type moduleRepository struct{ crud[model.Module] }
type operationRepository struct{ crud[model.Operation] }
type roleOperationRepository struct{ crud[model.RoleOperation] }

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{crud[model.Role]{db: db}}
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &moduleRepository{crud[model.Module]{db: db}}
}

func NewOperationRepository(db *gorm.DB) OperationRepository {
	return &operationRepository{crud[model.Operation]{db: db}}
}

func NewRoleOperationRepository(db *gorm.DB) RoleOperationRepository {
	return &roleOperationRepository{crud[model.RoleOperation]{db: db}}
}

func (r *operationRepository) ListByRole(ctx context.Context, roleID uint) ([]model.Operation, error) {
	var ops []model.Operation
	err := r.db.WithContext(ctx).
		Joins("JOIN rol_operacion ON rol_operacion.operacion_id = operacion.id").
		Where("rol_operacion.rol_id = ?", roleID).
		Find(&ops).Error
	if err != nil {
		return nil, err
	}
	return ops, nil
}
