package repository

import (
	"context"

	"gorm.io/gorm"

	"carwash/internal/model"
)

// EmployeeRepository defines employee persistence operations.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uint) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	FindByCedula(ctx context.Context, cedula int64) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Delete(ctx context.Context, employee *model.Employee) error
}

type employeeRepository struct {
	crud[model.Employee]
}

// NewEmployeeRepository builds a GORM-backed repository.
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{crud[model.Employee]{db: db}}
}

func (r *employeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByCedula(ctx context.Context, cedula int64) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}
