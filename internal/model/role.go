package model

// Well-known role ids created by the seed command.
const (
	RoleAdmin      uint = 1
	RoleSupervisor uint = 2
	RoleWasher     uint = 3
)

type Role struct {
	ID   uint   `json:"rol_id" gorm:"column:rol_id;primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;size:100;not null"`
}

func (Role) TableName() string {
	return "rol"
}

type RolePatch struct {
	Name *string `json:"nombre"`
}

// Module groups operations for display purposes.
type Module struct {
	ID   uint   `json:"id" gorm:"column:id;primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;size:100;not null"`
}

func (Module) TableName() string {
	return "modulo"
}

type ModulePatch struct {
	Name *string `json:"nombre"`
}

// Operation is a named capability granted to roles through RoleOperation.
type Operation struct {
	ID       uint   `json:"id" gorm:"column:id;primaryKey"`
	Name     string `json:"nombre" gorm:"column:nombre;size:100;not null"`
	ModuleID uint   `json:"modulo_id" gorm:"column:modulo_id;not null;index"`

	Module *Module `json:"-" gorm:"foreignKey:ModuleID;references:ID"`
}

func (Operation) TableName() string {
	return "operacion"
}

type OperationPatch struct {
	Name     *string `json:"nombre"`
	ModuleID *uint   `json:"modulo_id"`
}

// RoleOperation grants one operation to one role.
type RoleOperation struct {
	ID          uint `json:"id" gorm:"column:id;primaryKey"`
	RoleID      uint `json:"rol_id" gorm:"column:rol_id;not null;index"`
	OperationID uint `json:"operacion_id" gorm:"column:operacion_id;not null;index"`

	Role      *Role      `json:"-" gorm:"foreignKey:RoleID;references:ID"`
	Operation *Operation `json:"-" gorm:"foreignKey:OperationID;references:ID"`
}

func (RoleOperation) TableName() string {
	return "rol_operacion"
}

type RoleOperationPatch struct {
	RoleID      *uint `json:"rol_id"`
	OperationID *uint `json:"operacion_id"`
}
