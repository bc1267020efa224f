package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderStatus is the state of a service order. Any status may be set to any
// other; no transitions are enforced.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDIENTE"
	OrderStatusCompleted OrderStatus = "COMPLETADO"
	OrderStatusCanceled  OrderStatus = "CANCELADO"
)

// ParseOrderStatus validates a wire value.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return st, nil
	}
	return "", fmt.Errorf("invalid order status %q", s)
}

// ServiceOrder is one wash job. ClientCedula references Client.Cedula
// without a foreign key; the remaining references are enforced by the store.
type ServiceOrder struct {
	ID              uint            `json:"orden_id" gorm:"column:orden_id;primaryKey"`
	ClientCedula    int64           `json:"cliente_id" gorm:"column:cliente_id;not null;index"`
	VehiclePlate    string          `json:"vehiculo_id" gorm:"column:vehiculo_id;size:10;not null;index"`
	ServiceID       uint            `json:"servicio_id" gorm:"column:servicio_id;not null;index"`
	AdminEmployeeID uint            `json:"empleado_admin_id" gorm:"column:empleado_admin_id;not null;index"`
	WasherID        uint            `json:"empleado_lavador_id" gorm:"column:empleado_lavador_id;not null;index"`
	OrderDate       Date            `json:"fecha_orden" gorm:"column:fecha_orden;not null;index"`
	EntryTime       TimeOfDay       `json:"hora_entrada" gorm:"column:hora_entrada;not null"`
	ExitTime        *TimeOfDay      `json:"hora_salida" gorm:"column:hora_salida"`
	Status          OrderStatus     `json:"estado" gorm:"column:estado;type:varchar(20);not null;index"`
	Total           decimal.Decimal `json:"total" gorm:"column:total;type:decimal(10,2);not null"`
	Diagnostic      *string         `json:"diagnostico" gorm:"column:diagnostico;type:text"`

	Vehicle       *Vehicle  `json:"-" gorm:"foreignKey:VehiclePlate;references:Plate"`
	Service       *Service  `json:"-" gorm:"foreignKey:ServiceID;references:ID"`
	AdminEmployee *Employee `json:"-" gorm:"foreignKey:AdminEmployeeID;references:ID"`
	Washer        *Employee `json:"-" gorm:"foreignKey:WasherID;references:ID"`
}

func (ServiceOrder) TableName() string {
	return "orden_servicio"
}

// OrderPatch carries a partial order update. A nil field, whether omitted or
// sent as JSON null, leaves the stored value untouched, so optional fields
// cannot be cleared through a patch.
type OrderPatch struct {
	ClientCedula    *int64           `json:"cliente_id"`
	VehiclePlate    *string          `json:"vehiculo_id"`
	ServiceID       *uint            `json:"servicio_id"`
	AdminEmployeeID *uint            `json:"empleado_admin_id"`
	WasherID        *uint            `json:"empleado_lavador_id"`
	OrderDate       *Date            `json:"fecha_orden"`
	EntryTime       *TimeOfDay       `json:"hora_entrada"`
	ExitTime        *TimeOfDay       `json:"hora_salida"`
	Status          *OrderStatus     `json:"estado" validate:"omitempty,oneof=PENDIENTE COMPLETADO CANCELADO"`
	Total           *decimal.Decimal `json:"total"`
	Diagnostic      *string          `json:"diagnostico"`
}

// Apply copies every non-nil field onto o.
func (p OrderPatch) Apply(o *ServiceOrder) {
	if p.ClientCedula != nil {
		o.ClientCedula = *p.ClientCedula
	}
	if p.VehiclePlate != nil {
		o.VehiclePlate = *p.VehiclePlate
	}
	if p.ServiceID != nil {
		o.ServiceID = *p.ServiceID
	}
	if p.AdminEmployeeID != nil {
		o.AdminEmployeeID = *p.AdminEmployeeID
	}
	if p.WasherID != nil {
		o.WasherID = *p.WasherID
	}
	if p.OrderDate != nil {
		o.OrderDate = *p.OrderDate
	}
	if p.EntryTime != nil {
		o.EntryTime = *p.EntryTime
	}
	if p.ExitTime != nil {
		exit := *p.ExitTime
		o.ExitTime = &exit
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Diagnostic != nil {
		diag := *p.Diagnostic
		o.Diagnostic = &diag
	}
}
