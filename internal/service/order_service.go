package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carwash/internal/errors"
	"carwash/internal/logger"
	"carwash/internal/metrics"
	"carwash/internal/model"
	"carwash/internal/repository"
)

// notFoundPlaceholder replaces every field of an entity an order points at
// but that no longer exists.
const notFoundPlaceholder = "No encontrado"

// OrderService manages the service order lifecycle.
type OrderService interface {
	Register(ctx context.Context, order *model.ServiceOrder) (*model.ServiceOrder, error)
	List(ctx context.Context, status *model.OrderStatus) ([]model.ServiceOrder, error)
	Get(ctx context.Context, id uint) (*OrderDetail, error)
	Update(ctx context.Context, id uint, patch model.OrderPatch) (*model.ServiceOrder, error)
	Delete(ctx context.Context, id uint) error
}

// OrderDetail is an order plus display data of the entities it references.
type OrderDetail struct {
	Order     *model.ServiceOrder `json:"orden_servicio"`
	Client    ClientSummary       `json:"cliente"`
	Vehicle   VehicleSummary      `json:"vehiculo"`
	Service   ServiceSummary      `json:"servicio"`
	Employees EmployeesSummary    `json:"empleados"`
}

type ClientSummary struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
}

type VehicleSummary struct {
	Plate string `json:"placa"`
	Make  string `json:"marca"`
	Model string `json:"modelo"`
	Color string `json:"color"`
	Type  string `json:"tipo"`
}

type ServiceSummary struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
}

type EmployeeSummary struct {
	Name    string `json:"nombre"`
	Surname string `json:"apellido"`
}

type EmployeesSummary struct {
	Admin  EmployeeSummary `json:"admin"`
	Washer EmployeeSummary `json:"lavador"`
}

type orderService struct {
	orders    repository.OrderRepository
	clients   repository.ClientRepository
	vehicles  repository.VehicleRepository
	services  repository.ServiceRepository
	employees repository.EmployeeRepository
}

// NewOrderService creates a new order service.
func NewOrderService(
	orders repository.OrderRepository,
	clients repository.ClientRepository,
	vehicles repository.VehicleRepository,
	services repository.ServiceRepository,
	employees repository.EmployeeRepository,
) OrderService {
	return &orderService{
		orders:    orders,
		clients:   clients,
		vehicles:  vehicles,
		services:  services,
		employees: employees,
	}
}

// Register stores a new order. A caller-supplied id must be unused and the
// client must exist; a missing exit time is derived from the entry time.
func (s *orderService) Register(ctx context.Context, order *model.ServiceOrder) (*model.ServiceOrder, error) {
	if order.ID != 0 {
		_, err := s.orders.FindByID(ctx, order.ID)
		if err == nil {
			return nil, errors.ErrOrderExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check order existence: %w", err)
		}
	}

	if _, err := s.clients.FindByCedula(ctx, order.ClientCedula); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}

	if order.ExitTime == nil {
		exit, ok := deriveExitTime(order.EntryTime)
		if !ok {
			metrics.ExitTimeFallbackTotal.Inc()
			logger.Get().Warn().
				Str("hora_entrada", order.EntryTime.String()).
				Msg("could not derive exit time, using entry time")
		}
		order.ExitTime = &exit
	}
	if order.Diagnostic == nil {
		empty := ""
		order.Diagnostic = &empty
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	metrics.OrdersRegisteredTotal.WithLabelValues(string(order.Status)).Inc()
	return order, nil
}

// deriveExitTime returns entry plus one hour on a 24-hour clock, without
// date rollover. Only whole-second HH:MM:SS values are accepted; an entry
// carrying fractional seconds yields entry unchanged and false.
func deriveExitTime(entry model.TimeOfDay) (model.TimeOfDay, bool) {
	if entry.Nanosecond() != 0 {
		return entry, false
	}
	next := (time.Duration(entry) + time.Hour) % (24 * time.Hour)
	return model.TimeOfDay(next), true
}

func (s *orderService) List(ctx context.Context, status *model.OrderStatus) ([]model.ServiceOrder, error) {
	orders, err := s.orders.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) find(ctx context.Context, id uint) (*model.ServiceOrder, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return order, nil
}

// Get returns the order with its related display data. References that no
// longer resolve are rendered with placeholders instead of failing.
func (s *orderService) Get(ctx context.Context, id uint) (*OrderDetail, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetail{Order: order}

	client, err := optional(s.clients.FindByCedula(ctx, order.ClientCedula))
	if err != nil {
		return nil, fmt.Errorf("find client: %w", err)
	}
	detail.Client = ClientSummary{Name: notFoundPlaceholder, Phone: notFoundPlaceholder}
	if client != nil {
		detail.Client = ClientSummary{Name: client.Name, Phone: client.Phone}
	}

	vehicle, err := optional(s.vehicles.FindByPlate(ctx, order.VehiclePlate))
	if err != nil {
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	detail.Vehicle = VehicleSummary{
		Plate: notFoundPlaceholder, Make: notFoundPlaceholder, Model: notFoundPlaceholder,
		Color: notFoundPlaceholder, Type: notFoundPlaceholder,
	}
	if vehicle != nil {
		detail.Vehicle = VehicleSummary{
			Plate: vehicle.Plate, Make: vehicle.Make, Model: vehicle.Model,
			Color: vehicle.Color, Type: vehicle.Type,
		}
	}

	svc, err := optional(s.services.FindByID(ctx, order.ServiceID))
	if err != nil {
		return nil, fmt.Errorf("find service: %w", err)
	}
	detail.Service = ServiceSummary{Name: notFoundPlaceholder, Description: notFoundPlaceholder, Price: decimal.Zero}
	if svc != nil {
		detail.Service = ServiceSummary{Name: svc.Name, Description: svc.Description, Price: svc.Price}
	}

	admin, err := optional(s.employees.FindByID(ctx, order.AdminEmployeeID))
	if err != nil {
		return nil, fmt.Errorf("find admin employee: %w", err)
	}
	washer, err := optional(s.employees.FindByID(ctx, order.WasherID))
	if err != nil {
		return nil, fmt.Errorf("find washer: %w", err)
	}
	detail.Employees = EmployeesSummary{Admin: employeeSummary(admin), Washer: employeeSummary(washer)}

	return detail, nil
}

func employeeSummary(e *model.Employee) EmployeeSummary {
	if e == nil {
		return EmployeeSummary{Name: notFoundPlaceholder, Surname: notFoundPlaceholder}
	}
	return EmployeeSummary{Name: e.Name, Surname: e.Surname}
}

// optional turns a not-found lookup into a nil result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return v, err
}

// Update applies every supplied field. Status changes are not validated
// against the current status.
func (s *orderService) Update(ctx context.Context, id uint, patch model.OrderPatch) (*model.ServiceOrder, error) {
	order, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Status != nil && *patch.Status != order.Status {
		logger.Get().Info().
			Uint("orden_id", id).
			Str("from", string(order.Status)).
			Str("to", string(*patch.Status)).
			Msg("order status changed")
	}
	patch.Apply(order)
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id uint) error {
	order, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, order); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
