package model

import "time"

// Employee is a staff member who can log in. An order references two
// employees: the admin who registered it and the washer who performed it.
type Employee struct {
	ID           uint   `json:"empleado_id" gorm:"column:empleado_id;primaryKey"`
	Name         string `json:"nombre" gorm:"column:nombre;size:100"`
	Surname      string `json:"apellido" gorm:"column:apellido;size:100"`
	Phone        string `json:"telefono" gorm:"column:telefono;size:15"`
	Email        string `json:"email" gorm:"column:email;size:100;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;size:255;not null"`
	RoleID       *uint  `json:"rol_id" gorm:"column:rol_id"`
	Cedula       int64  `json:"cedula" gorm:"column:cedula;uniqueIndex;not null"`

	Role *Role `json:"-" gorm:"foreignKey:RoleID;references:ID"`
}

func (Employee) TableName() string {
	return "empleado"
}

// RoleIDOrZero returns the role id, or 0 for an employee without a role.
func (e *Employee) RoleIDOrZero() uint {
	if e == nil || e.RoleID == nil {
		return 0
	}
	return *e.RoleID
}

// EmployeePatch is applied by the employee service, which hashes Password
// before storing it.
type EmployeePatch struct {
	Name     *string `json:"nombre"`
	Surname  *string `json:"apellido"`
	Phone    *string `json:"telefono"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	RoleID   *uint   `json:"rol_id"`
	Cedula   *int64  `json:"cedula"`
}

// TokenRecord is the live session of an employee. Login replaces any
// previous records for the same employee.
type TokenRecord struct {
	UserID       uint      `json:"user_id" gorm:"column:user_id;index"`
	AccessToken  string    `json:"access_token" gorm:"column:access_token;primaryKey;size:450"`
	RefreshToken string    `json:"refresh_token" gorm:"column:refresh_token;size:450;not null"`
	Active       bool      `json:"status" gorm:"column:status"`
	CreatedAt    time.Time `json:"created_date" gorm:"column:created_date;autoCreateTime"`
}

func (TokenRecord) TableName() string {
	return "token"
}
