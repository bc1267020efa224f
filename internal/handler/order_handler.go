package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"carwash/internal/model"
	"carwash/internal/service"
)

// OrderHandler handles service order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderRequest represents a service order registration request.
type OrderRequest struct {
	ID              uint              `json:"orden_id"`
	ClientCedula    int64             `json:"cliente_id" validate:"required"`
	VehiclePlate    string            `json:"vehiculo_id" validate:"required,max=10"`
	ServiceID       uint              `json:"servicio_id" validate:"required"`
	AdminEmployeeID uint              `json:"empleado_admin_id" validate:"required"`
	WasherID        uint              `json:"empleado_lavador_id" validate:"required"`
	OrderDate       *model.Date       `json:"fecha_orden" validate:"required" swaggertype:"string" example:"2024-05-01"`
	EntryTime       *model.TimeOfDay  `json:"hora_entrada" validate:"required" swaggertype:"string" example:"10:00:00"`
	ExitTime        *model.TimeOfDay  `json:"hora_salida" swaggertype:"string" example:"11:00:00"`
	Status          model.OrderStatus `json:"estado" validate:"required,oneof=PENDIENTE COMPLETADO CANCELADO"`
	Total           decimal.Decimal   `json:"total" swaggertype:"number"`
	Diagnostic      *string           `json:"diagnostico"`
}

// OrderResponse wraps a single order.
type OrderResponse struct {
	Message string              `json:"message"`
	Order   *model.ServiceOrder `json:"orden_servicio"`
}

// Register godoc
// @Summary Register a service order
// @Tags ordenes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OrderRequest true "Order data"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ordenes-servicio/registrar [post]
func (h *OrderHandler) Register(c echo.Context) error {
	var req OrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Total.IsNegative() {
		return badRequest("total must not be negative")
	}

	order, err := h.orderService.Register(c.Request().Context(), &model.ServiceOrder{
		ID:              req.ID,
		ClientCedula:    req.ClientCedula,
		VehiclePlate:    req.VehiclePlate,
		ServiceID:       req.ServiceID,
		AdminEmployeeID: req.AdminEmployeeID,
		WasherID:        req.WasherID,
		OrderDate:       *req.OrderDate,
		EntryTime:       *req.EntryTime,
		ExitTime:        req.ExitTime,
		Status:          req.Status,
		Total:           req.Total,
		Diagnostic:      req.Diagnostic,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, OrderResponse{Message: "Orden de servicio creada con éxito", Order: order})
}

// List godoc
// @Summary List service orders
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Param estado query string false "Status filter" Enums(PENDIENTE, COMPLETADO, CANCELADO)
// @Success 200 {array} model.ServiceOrder
// @Failure 400 {object} errors.ErrorResponse
// @Router /ordenes/todos [get]
func (h *OrderHandler) List(c echo.Context) error {
	var status *model.OrderStatus
	if raw := c.QueryParam("estado"); raw != "" {
		st, err := model.ParseOrderStatus(raw)
		if err != nil {
			return badRequest(err.Error())
		}
		status = &st
	}

	orders, err := h.orderService.List(c.Request().Context(), status)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary Get a service order with its related records
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Success 200 {object} service.OrderDetail
// @Failure 404 {object} errors.ErrorResponse
// @Router /ordenes-servicio/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.orderService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Update godoc
// @Summary Update a service order
// @Tags ordenes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Param request body model.OrderPatch true "Fields to change"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ordenes-servicio/actualizar/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var patch model.OrderPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	if patch.Total != nil && patch.Total.IsNegative() {
		return badRequest("total must not be negative")
	}
	order, err := h.orderService.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, OrderResponse{Message: "Orden de servicio actualizada con éxito", Order: order})
}

// Delete godoc
// @Summary Delete a service order
// @Tags ordenes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /ordenes-servicio/eliminar/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.orderService.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return deleted(c, "Orden de servicio eliminada con éxito")
}
