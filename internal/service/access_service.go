package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"carwash/internal/auth"
	"carwash/internal/errors"
	"carwash/internal/logger"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// RoleService manages roles.
type RoleService interface {
	Register(ctx context.Context, role *model.Role) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Get(ctx context.Context, id uint) (*model.Role, error)
	Update(ctx context.Context, id uint, patch model.RolePatch) (*model.Role, error)
	Delete(ctx context.Context, id uint) error
}

// ModuleService manages the modules operations are grouped under.
type ModuleService interface {
	Register(ctx context.Context, module *model.Module) (*model.Module, error)
	List(ctx context.Context) ([]model.Module, error)
	Get(ctx context.Context, id uint) (*model.Module, error)
	Update(ctx context.Context, id uint, patch model.ModulePatch) (*model.Module, error)
	Delete(ctx context.Context, id uint) error
}

// OperationService manages operations. Mutations drop every cached grant list.
type OperationService interface {
	Register(ctx context.Context, op *model.Operation) (*model.Operation, error)
	List(ctx context.Context) ([]model.Operation, error)
	Get(ctx context.Context, id uint) (*model.Operation, error)
	Update(ctx context.Context, id uint, patch model.OperationPatch) (*model.Operation, error)
	Delete(ctx context.Context, id uint) error
}

// GrantService manages role-operation grants. Mutations drop the cached
// grant list of each affected role.
type GrantService interface {
	Register(ctx context.Context, grant *model.RoleOperation) (*model.RoleOperation, error)
	List(ctx context.Context) ([]model.RoleOperation, error)
	Get(ctx context.Context, id uint) (*model.RoleOperation, error)
	Update(ctx context.Context, id uint, patch model.RoleOperationPatch) (*model.RoleOperation, error)
	Delete(ctx context.Context, id uint) error
}

func notFound(err, sentinel error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("find %s: %w", what, err)
}

type roleService struct {
	repo   repository.RoleRepository
	grants auth.GrantStoreInterface
}

func NewRoleService(repo repository.RoleRepository, grants auth.GrantStoreInterface) RoleService {
	return &roleService{repo: repo, grants: grants}
}

func (s *roleService) Register(ctx context.Context, role *model.Role) (*model.Role, error) {
	if err := s.repo.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context) ([]model.Role, error) {
	roles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *roleService) Get(ctx context.Context, id uint) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errors.ErrRoleNotFound, "role")
	}
	return role, nil
}

func (s *roleService) Update(ctx context.Context, id uint, patch model.RolePatch) (*model.Role, error) {
	role, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		role.Name = *patch.Name
	}
	if err := s.repo.Update(ctx, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return role, nil
}

func (s *roleService) Delete(ctx context.Context, id uint) error {
	role, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, role); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	_ = s.grants.InvalidateRole(ctx, id)
	return nil
}

type moduleService struct {
	repo repository.ModuleRepository
}

func NewModuleService(repo repository.ModuleRepository) ModuleService {
	return &moduleService{repo: repo}
}

func (s *moduleService) Register(ctx context.Context, module *model.Module) (*model.Module, error) {
	if err := s.repo.Create(ctx, module); err != nil {
		return nil, fmt.Errorf("create module: %w", err)
	}
	return module, nil
}

func (s *moduleService) List(ctx context.Context) ([]model.Module, error) {
	modules, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list modules: %w", err)
	}
	return modules, nil
}

func (s *moduleService) Get(ctx context.Context, id uint) (*model.Module, error) {
	module, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errors.ErrModuleNotFound, "module")
	}
	return module, nil
}

func (s *moduleService) Update(ctx context.Context, id uint, patch model.ModulePatch) (*model.Module, error) {
	module, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		module.Name = *patch.Name
	}
	if err := s.repo.Update(ctx, module); err != nil {
		return nil, fmt.Errorf("update module: %w", err)
	}
	return module, nil
}

func (s *moduleService) Delete(ctx context.Context, id uint) error {
	module, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, module); err != nil {
		return fmt.Errorf("delete module: %w", err)
	}
	return nil
}

type operationService struct {
	repo   repository.OperationRepository
	grants auth.GrantStoreInterface
}

func NewOperationService(repo repository.OperationRepository, grants auth.GrantStoreInterface) OperationService {
	return &operationService{repo: repo, grants: grants}
}

func (s *operationService) invalidate(ctx context.Context) {
	if err := s.grants.InvalidateAll(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("could not invalidate cached grants")
	}
}

func (s *operationService) Register(ctx context.Context, op *model.Operation) (*model.Operation, error) {
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("create operation: %w", err)
	}
	s.invalidate(ctx)
	return op, nil
}

func (s *operationService) List(ctx context.Context) ([]model.Operation, error) {
	ops, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list operations: %w", err)
	}
	return ops, nil
}

func (s *operationService) Get(ctx context.Context, id uint) (*model.Operation, error) {
	op, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errors.ErrOperationNotFound, "operation")
	}
	return op, nil
}

func (s *operationService) Update(ctx context.Context, id uint, patch model.OperationPatch) (*model.Operation, error) {
	op, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		op.Name = *patch.Name
	}
	if patch.ModuleID != nil {
		op.ModuleID = *patch.ModuleID
	}
	if err := s.repo.Update(ctx, op); err != nil {
		return nil, fmt.Errorf("update operation: %w", err)
	}
	s.invalidate(ctx)
	return op, nil
}

func (s *operationService) Delete(ctx context.Context, id uint) error {
	op, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, op); err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

type grantService struct {
	repo   repository.RoleOperationRepository
	grants auth.GrantStoreInterface
}

func NewGrantService(repo repository.RoleOperationRepository, grants auth.GrantStoreInterface) GrantService {
	return &grantService{repo: repo, grants: grants}
}

func (s *grantService) Register(ctx context.Context, grant *model.RoleOperation) (*model.RoleOperation, error) {
	if err := s.repo.Create(ctx, grant); err != nil {
		return nil, fmt.Errorf("create grant: %w", err)
	}
	_ = s.grants.InvalidateRole(ctx, grant.RoleID)
	return grant, nil
}

func (s *grantService) List(ctx context.Context) ([]model.RoleOperation, error) {
	grants, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}
	return grants, nil
}

func (s *grantService) Get(ctx context.Context, id uint) (*model.RoleOperation, error) {
	grant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, errors.ErrRoleOperationNotFound, "grant")
	}
	return grant, nil
}

func (s *grantService) Update(ctx context.Context, id uint, patch model.RoleOperationPatch) (*model.RoleOperation, error) {
	grant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	previousRole := grant.RoleID
	if patch.RoleID != nil {
		grant.RoleID = *patch.RoleID
	}
	if patch.OperationID != nil {
		grant.OperationID = *patch.OperationID
	}
	if err := s.repo.Update(ctx, grant); err != nil {
		return nil, fmt.Errorf("update grant: %w", err)
	}
	_ = s.grants.InvalidateRole(ctx, previousRole)
	if grant.RoleID != previousRole {
		_ = s.grants.InvalidateRole(ctx, grant.RoleID)
	}
	return grant, nil
}

func (s *grantService) Delete(ctx context.Context, id uint) error {
	grant, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, grant); err != nil {
		return fmt.Errorf("delete grant: %w", err)
	}
	_ = s.grants.InvalidateRole(ctx, grant.RoleID)
	return nil
}
