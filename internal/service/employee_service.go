package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"carwash/internal/auth"
	"carwash/internal/errors"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// NewEmployee is the registration input; Password is stored hashed.
type NewEmployee struct {
	Name     string
	Surname  string
	Phone    string
	Email    string
	Password string
	RoleID   *uint
	Cedula   int64
}

// EmployeeService manages staff accounts, addressed by national id.
type EmployeeService interface {
	Register(ctx context.Context, in NewEmployee) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, cedula int64) (*model.Employee, error)
	Update(ctx context.Context, cedula int64, patch model.EmployeePatch) (*model.Employee, error)
	Delete(ctx context.Context, cedula int64) error
}

type employeeService struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{repo: repo}
}

// Register rejects a taken email first, then a taken cedula.
func (s *employeeService) Register(ctx context.Context, in NewEmployee) (*model.Employee, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, errors.ErrEmployeeEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check employee email: %w", err)
	}
	if _, err := s.repo.FindByCedula(ctx, in.Cedula); err == nil {
		return nil, errors.ErrEmployeeCedulaExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check employee cedula: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:         in.Name,
		Surname:      in.Surname,
		Phone:        in.Phone,
		Email:        in.Email,
		PasswordHash: hash,
		RoleID:       in.RoleID,
		Cedula:       in.Cedula,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

func (s *employeeService) Get(ctx context.Context, cedula int64) (*model.Employee, error) {
	employee, err := s.repo.FindByCedula(ctx, cedula)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, cedula int64, patch model.EmployeePatch) (*model.Employee, error) {
	employee, err := s.Get(ctx, cedula)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		other, err := s.repo.FindByEmail(ctx, *patch.Email)
		if err == nil && other.ID != employee.ID {
			return nil, errors.ErrEmailInUse
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check employee email: %w", err)
		}
		employee.Email = *patch.Email
	}
	if patch.Name != nil {
		employee.Name = *patch.Name
	}
	if patch.Surname != nil {
		employee.Surname = *patch.Surname
	}
	if patch.Phone != nil {
		employee.Phone = *patch.Phone
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = hash
	}
	if patch.RoleID != nil {
		roleID := *patch.RoleID
		employee.RoleID = &roleID
	}
	if patch.Cedula != nil {
		employee.Cedula = *patch.Cedula
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeService) Delete(ctx context.Context, cedula int64) error {
	employee, err := s.Get(ctx, cedula)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, employee); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
