package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash/internal/model"
	"carwash/internal/service"
)

// VehicleHandler handles vehicle endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// VehicleRequest represents a vehicle registration request.
type VehicleRequest struct {
	ClientCedula int64  `json:"cliente_cedula" validate:"required,gt=0"`
	Make         string `json:"marca" validate:"max=100"`
	Model        string `json:"modelo" validate:"max=100"`
	Plate        string `json:"placa" validate:"required,max=10"`
	Color        string `json:"color" validate:"required,max=50"`
	Type         string `json:"tipo" validate:"required,max=50"`
	Label        string `json:"nombre" validate:"required,max=50"`
}

// VehicleResponse wraps a single vehicle.
type VehicleResponse struct {
	Message string         `json:"message"`
	Vehicle *model.Vehicle `json:"vehiculo"`
}

// Register godoc
// @Summary Register a vehicle
// @Tags vehiculos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VehicleRequest true "Vehicle data"
// @Success 200 {object} VehicleResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /vehiculos/registrar [post]
func (h *VehicleHandler) Register(c echo.Context) error {
	var req VehicleRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	vehicle, err := h.vehicleService.Register(c.Request().Context(), &model.Vehicle{
		ClientCedula: req.ClientCedula,
		Make:         req.Make,
		Model:        req.Model,
		Plate:        req.Plate,
		Color:        req.Color,
		Type:         req.Type,
		Label:        req.Label,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, VehicleResponse{Message: "Vehiculo creado", Vehicle: vehicle})
}

// List godoc
// @Summary List vehicles
// @Tags vehiculos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Vehicle
// @Failure 403 {object} errors.ErrorResponse
// @Router /vehiculos/todos [get]
func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.vehicleService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Get godoc
// @Summary Get a vehicle by plate
// @Tags vehiculos
// @Produce json
// @Security BearerAuth
// @Param placa path string true "Plate"
// @Success 200 {object} model.Vehicle
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehiculos/{placa} [get]
func (h *VehicleHandler) Get(c echo.Context) error {
	vehicle, err := h.vehicleService.Get(c.Request().Context(), c.Param("placa"))
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Update godoc
// @Summary Update a vehicle
// @Tags vehiculos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param placa path string true "Plate"
// @Param request body model.VehiclePatch true "Fields to change"
// @Success 200 {object} VehicleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehiculos/actualizar/{placa} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	var patch model.VehiclePatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	vehicle, err := h.vehicleService.Update(c.Request().Context(), c.Param("placa"), patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, VehicleResponse{Message: "Vehiculo updated successfully", Vehicle: vehicle})
}

// Delete godoc
// @Summary Delete a vehicle
// @Tags vehiculos
// @Produce json
// @Security BearerAuth
// @Param placa path string true "Plate"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehiculos/eliminar/{placa} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	if err := h.vehicleService.Delete(c.Request().Context(), c.Param("placa")); err != nil {
		return fail(err)
	}
	return deleted(c, "Vehiculo deleted successfully")
}
