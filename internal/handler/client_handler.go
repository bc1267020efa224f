package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash/internal/model"
	"carwash/internal/service"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new client handler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// ClientRequest represents a client registration request.
type ClientRequest struct {
	Name      string      `json:"nombre" validate:"required,max=100"`
	Surname   string      `json:"apellido" validate:"max=100"`
	Phone     string      `json:"telefono" validate:"max=15"`
	Email     string      `json:"email" validate:"required,email"`
	Birthdate *model.Date `json:"fecha_cumpleanos"`
	Cedula    int64       `json:"cliente_cedula" validate:"required,gt=0"`
}

// ClientResponse wraps a single client.
type ClientResponse struct {
	Message string        `json:"message"`
	Status  int           `json:"status,omitempty"`
	Client  *model.Client `json:"cliente"`
}

// ClientsResponse wraps the client list.
type ClientsResponse struct {
	Clients []model.Client `json:"clientes"`
}

// Register godoc
// @Summary Register a client
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ClientRequest true "Client data"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /clientes/registrar [post]
func (h *ClientHandler) Register(c echo.Context) error {
	var req ClientRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	client, err := h.clientService.Register(c.Request().Context(), &model.Client{
		Name:      req.Name,
		Surname:   req.Surname,
		Phone:     req.Phone,
		Email:     req.Email,
		Birthdate: req.Birthdate,
		Cedula:    req.Cedula,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ClientResponse{Message: "Cliente creado", Client: client})
}

// List godoc
// @Summary List clients
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ClientsResponse
// @Router /clientes/todos [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clientService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ClientsResponse{Clients: clients})
}

// Get godoc
// @Summary Get a client by national id
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param cedula path int true "Client national id"
// @Success 200 {object} model.Client
// @Failure 404 {object} errors.ErrorResponse
// @Router /clientes/{cedula} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	cedula, err := int64Param(c, "cedula")
	if err != nil {
		return err
	}
	client, err := h.clientService.Get(c.Request().Context(), cedula)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, client)
}

// Update godoc
// @Summary Update a client
// @Tags clientes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cedula path int true "Client national id"
// @Param request body model.ClientPatch true "Fields to change"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clientes/actualizar/{cedula} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	cedula, err := int64Param(c, "cedula")
	if err != nil {
		return err
	}
	var patch model.ClientPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	client, err := h.clientService.Update(c.Request().Context(), cedula, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ClientResponse{Message: "Cliente updated successfully", Client: client})
}

// Delete godoc
// @Summary Delete a client
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param cedula path int true "Client national id"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /clientes/eliminar/{cedula} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	cedula, err := int64Param(c, "cedula")
	if err != nil {
		return err
	}
	client, err := h.clientService.Delete(c.Request().Context(), cedula)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ClientResponse{Message: "Cliente deleted successfully", Status: http.StatusOK, Client: client})
}
