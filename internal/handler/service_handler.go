package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"carwash/internal/model"
	"carwash/internal/service"
)

// ServiceHandler handles the wash service catalog.
type ServiceHandler struct {
	catalogService service.CatalogService
}

// NewServiceHandler creates a new catalog handler.
func NewServiceHandler(catalogService service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// ServiceRequest represents a catalog entry registration request.
type ServiceRequest struct {
	Name        string          `json:"nombre" validate:"required,max=100"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio" swaggertype:"number"`
	ImageName   *string         `json:"imagen_nombre"`
}

// ServiceResponse wraps a single catalog entry.
type ServiceResponse struct {
	Message string         `json:"message"`
	Service *model.Service `json:"servicio"`
}

// Register godoc
// @Summary Register a wash service
// @Tags servicios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ServiceRequest true "Service data"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /servicios/registrar [post]
func (h *ServiceHandler) Register(c echo.Context) error {
	var req ServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if req.Price.IsNegative() {
		return badRequest("precio must not be negative")
	}

	svc, err := h.catalogService.Register(c.Request().Context(), &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageName:   req.ImageName,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ServiceResponse{Message: "Servicio creado", Service: svc})
}

// List godoc
// @Summary List wash services
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Service
// @Router /servicios/todos [get]
func (h *ServiceHandler) List(c echo.Context) error {
	services, err := h.catalogService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, services)
}

// Get godoc
// @Summary Get a wash service
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service id"
// @Success 200 {object} model.Service
// @Failure 404 {object} errors.ErrorResponse
// @Router /servicios/{id} [get]
func (h *ServiceHandler) Get(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.catalogService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, svc)
}

// Update godoc
// @Summary Update a wash service
// @Tags servicios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service id"
// @Param request body model.ServicePatch true "Fields to change"
// @Success 200 {object} ServiceResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /servicios/actualizar/{id} [put]
func (h *ServiceHandler) Update(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var patch model.ServicePatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return badRequest("precio must not be negative")
	}
	svc, err := h.catalogService.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ServiceResponse{Message: "Servicio updated successfully", Service: svc})
}

// Delete godoc
// @Summary Delete a wash service
// @Tags servicios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /servicios/eliminar/{id} [delete]
func (h *ServiceHandler) Delete(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.catalogService.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return deleted(c, "Servicio deleted successfully")
}
