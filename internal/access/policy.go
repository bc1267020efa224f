// Package access decides which employee roles may run which operations.
// Every rule lives in Policy; handlers only name the action they perform.
package access

import (
	"strings"

	"carwash/internal/model"
)

// Action names an operation guarded by the gate.
type Action string

const (
	ClientRegister Action = "clientes.registrar"
	ClientList     Action = "clientes.todos"
	ClientGet      Action = "clientes.ver"
	ClientUpdate   Action = "clientes.actualizar"
	ClientDelete   Action = "clientes.eliminar"

	VehicleRegister Action = "vehiculos.registrar"
	VehicleList     Action = "vehiculos.todos"
	VehicleGet      Action = "vehiculos.ver"
	VehicleUpdate   Action = "vehiculos.actualizar"
	VehicleDelete   Action = "vehiculos.eliminar"

	ServiceRegister Action = "servicios.registrar"
	ServiceList     Action = "servicios.todos"
	ServiceGet      Action = "servicios.ver"
	ServiceUpdate   Action = "servicios.actualizar"
	ServiceDelete   Action = "servicios.eliminar"

	EmployeeRegister Action = "empleados.registrar"
	EmployeeList     Action = "empleados.todos"
	EmployeeGet      Action = "empleados.ver"
	EmployeeUpdate   Action = "empleados.actualizar"
	EmployeeDelete   Action = "empleados.eliminar"

	OrderRegister Action = "ordenes.registrar"
	OrderList     Action = "ordenes.todos"
	OrderGet      Action = "ordenes.ver"
	OrderUpdate   Action = "ordenes.actualizar"
	OrderDelete   Action = "ordenes.eliminar"

	EarningsCompute Action = "pagos.ganancias"

	CatalogRead   Action = "permisos.ver"
	CatalogMutate Action = "permisos.modificar"

	Logout Action = "sesion.cerrar"
)

var (
	adminOnly       = []uint{model.RoleAdmin}
	adminSupervisor = []uint{model.RoleAdmin, model.RoleSupervisor}
)

// Policy maps each restricted action to the roles allowed to run it. An
// action absent from the map is open to any authenticated employee.
var Policy = map[Action][]uint{
	ClientRegister: adminSupervisor,
	ClientList:     adminSupervisor,
	ClientGet:      adminSupervisor,
	ClientUpdate:   adminSupervisor,
	ClientDelete:   adminOnly,

	VehicleRegister: adminSupervisor,
	VehicleList:     adminSupervisor,
	VehicleGet:      adminSupervisor,
	VehicleUpdate:   adminSupervisor,
	VehicleDelete:   adminOnly,

	ServiceRegister: adminSupervisor,
	ServiceGet:      adminSupervisor,
	ServiceUpdate:   adminSupervisor,
	ServiceDelete:   adminOnly,

	EmployeeRegister: adminOnly,
	EmployeeList:     adminOnly,
	EmployeeGet:      adminOnly,
	EmployeeUpdate:   adminOnly,
	EmployeeDelete:   adminOnly,

	EarningsCompute: adminOnly,

	CatalogMutate: adminOnly,
}

// Actions lists every action in display order. The seed command mirrors it
// into the operation catalog.
var Actions = []Action{
	ClientRegister, ClientList, ClientGet, ClientUpdate, ClientDelete,
	VehicleRegister, VehicleList, VehicleGet, VehicleUpdate, VehicleDelete,
	ServiceRegister, ServiceList, ServiceGet, ServiceUpdate, ServiceDelete,
	EmployeeRegister, EmployeeList, EmployeeGet, EmployeeUpdate, EmployeeDelete,
	OrderRegister, OrderList, OrderGet, OrderUpdate, OrderDelete,
	EarningsCompute,
	CatalogRead, CatalogMutate,
	Logout,
}

// Module returns the part of the action name before the dot.
func (a Action) Module() string {
	module, _, _ := strings.Cut(string(a), ".")
	return module
}
