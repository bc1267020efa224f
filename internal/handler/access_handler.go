package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash/internal/model"
	"carwash/internal/service"
)

// AccessHandler manages the permission catalog: roles, modules, operations
// and the grants that link operations to roles.
type AccessHandler struct {
	roles      service.RoleService
	modules    service.ModuleService
	operations service.OperationService
	grants     service.GrantService
}

// NewAccessHandler creates a new permission catalog handler.
func NewAccessHandler(
	roles service.RoleService,
	modules service.ModuleService,
	operations service.OperationService,
	grants service.GrantService,
) *AccessHandler {
	return &AccessHandler{roles: roles, modules: modules, operations: operations, grants: grants}
}

// NameRequest is the body for roles and modules.
type NameRequest struct {
	Name string `json:"nombre" validate:"required,max=100"`
}

// OperationRequest represents an operation registration request.
type OperationRequest struct {
	Name     string `json:"nombre" validate:"required,max=100"`
	ModuleID uint   `json:"modulo_id" validate:"required"`
}

// GrantRequest represents a role operation registration request.
type GrantRequest struct {
	RoleID      uint `json:"rol_id" validate:"required"`
	OperationID uint `json:"operacion_id" validate:"required"`
}

// RoleResponse wraps a single role.
type RoleResponse struct {
	Message string      `json:"message"`
	Role    *model.Role `json:"rol"`
}

// ModulesResponse wraps the module list.
type ModulesResponse struct {
	Message string         `json:"message"`
	Modules []model.Module `json:"modulos"`
}

// ModuleResponse wraps a single module.
type ModuleResponse struct {
	Message string        `json:"message"`
	Module  *model.Module `json:"Modulo,omitempty"`
}

// OperationResponse wraps a single operation.
type OperationResponse struct {
	Message   string           `json:"message"`
	Operation *model.Operation `json:"Operacion"`
}

// GrantResponse wraps a single role operation.
type GrantResponse struct {
	Message string               `json:"message"`
	Grant   *model.RoleOperation `json:"OperacionRol"`
}

// RegisterRole godoc
// @Summary Register a role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NameRequest true "Role name"
// @Success 200 {object} RoleResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /roles/registrar [post]
func (h *AccessHandler) RegisterRole(c echo.Context) error {
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	role, err := h.roles.Register(c.Request().Context(), &model.Role{Name: req.Name})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, RoleResponse{Message: "Rol creado", Role: role})
}

// ListRoles godoc
// @Summary List roles
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Role
// @Router /roles/todos [get]
func (h *AccessHandler) ListRoles(c echo.Context) error {
	roles, err := h.roles.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, roles)
}

// GetRole godoc
// @Summary Get a role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role id"
// @Success 200 {object} model.Role
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/{id} [get]
func (h *AccessHandler) GetRole(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	role, err := h.roles.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, role)
}

// UpdateRole godoc
// @Summary Update a role
// @Tags roles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role id"
// @Param request body model.RolePatch true "Fields to change"
// @Success 200 {object} RoleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/actualizar/{id} [put]
func (h *AccessHandler) UpdateRole(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var patch model.RolePatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	role, err := h.roles.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, RoleResponse{Message: "Rol updated successfully", Role: role})
}

// DeleteRole godoc
// @Summary Delete a role
// @Tags roles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /roles/eliminar/{id} [delete]
func (h *AccessHandler) DeleteRole(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.roles.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return deleted(c, "Rol deleted successfully")
}

// RegisterModule godoc
// @Summary Register a module
// @Tags modulos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body NameRequest true "Module name"
// @Success 200 {object} ModuleResponse
// @Router /modulos [post]
func (h *AccessHandler) RegisterModule(c echo.Context) error {
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if _, err := h.modules.Register(c.Request().Context(), &model.Module{Name: req.Name}); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ModuleResponse{Message: "Modulo created successfully"})
}

// ListModules godoc
// @Summary List modules
// @Tags modulos
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ModulesResponse
// @Router /modulos/todos [get]
func (h *AccessHandler) ListModules(c echo.Context) error {
	modules, err := h.modules.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ModulesResponse{
		Message: fmt.Sprintf("%d Modulos found", len(modules)),
		Modules: modules,
	})
}

// GetModule godoc
// @Summary Get a module
// @Tags modulos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 200 {object} ModuleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /modulos/{id} [get]
func (h *AccessHandler) GetModule(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	module, err := h.modules.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ModuleResponse{Message: "Modulo found", Module: module})
}

// UpdateModule godoc
// @Summary Update a module
// @Tags modulos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Param request body model.ModulePatch true "Fields to change"
// @Success 200 {object} ModuleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /modulos/{id} [put]
func (h *AccessHandler) UpdateModule(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var patch model.ModulePatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	module, err := h.modules.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ModuleResponse{Message: "Modulo updated successfully", Module: module})
}

// DeleteModule godoc
// @Summary Delete a module
// @Tags modulos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Module id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /modulos/{id} [delete]
func (h *AccessHandler) DeleteModule(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.modules.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return deleted(c, "Modulo deleted successfully")
}

// RegisterOperation godoc
// @Summary Register an operation
// @Tags operaciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body OperationRequest true "Operation data"
// @Success 200 {object} OperationResponse
// @Router /operacions/registrar [post]
func (h *AccessHandler) RegisterOperation(c echo.Context) error {
	var req OperationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	op, err := h.operations.Register(c.Request().Context(), &model.Operation{Name: req.Name, ModuleID: req.ModuleID})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, OperationResponse{Message: "Operacion creada", Operation: op})
}

// ListOperations godoc
// @Summary List operations
// @Tags operaciones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Operation
// @Router /operacions/todos [get]
func (h *AccessHandler) ListOperations(c echo.Context) error {
	ops, err := h.operations.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, ops)
}

// GetOperation godoc
// @Summary Get an operation
// @Tags operaciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation id"
// @Success 200 {object} model.Operation
// @Failure 404 {object} errors.ErrorResponse
// @Router /operacions/{id} [get]
func (h *AccessHandler) GetOperation(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	op, err := h.operations.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, op)
}

// UpdateOperation godoc
// @Summary Update an operation
// @Tags operaciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation id"
// @Param request body model.OperationPatch true "Fields to change"
// @Success 200 {object} OperationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /operacions/actualizar/{id} [put]
func (h *AccessHandler) UpdateOperation(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var patch model.OperationPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	op, err := h.operations.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, OperationResponse{Message: "Operacion updated successfully", Operation: op})
}

// DeleteOperation godoc
// @Summary Delete an operation
// @Tags operaciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Operation id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /operacions/eliminar/{id} [delete]
func (h *AccessHandler) DeleteOperation(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.operations.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return deleted(c, "Operacion deleted successfully")
}

// RegisterGrant godoc
// @Summary Grant an operation to a role
// @Tags operaciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GrantRequest true "Grant data"
// @Success 200 {object} GrantResponse
// @Router /operacion-rols/registrar [post]
func (h *AccessHandler) RegisterGrant(c echo.Context) error {
	var req GrantRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	grant, err := h.grants.Register(c.Request().Context(), &model.RoleOperation{RoleID: req.RoleID, OperationID: req.OperationID})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, GrantResponse{Message: "OperacionRol creado", Grant: grant})
}

// ListGrants godoc
// @Summary List role operations
// @Tags operaciones
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.RoleOperation
// @Router /operacion-rols/todos [get]
func (h *AccessHandler) ListGrants(c echo.Context) error {
	grants, err := h.grants.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, grants)
}

// GetGrant godoc
// @Summary Get a role operation
// @Tags operaciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant id"
// @Success 200 {object} model.RoleOperation
// @Failure 404 {object} errors.ErrorResponse
// @Router /operacion-rols/{id} [get]
func (h *AccessHandler) GetGrant(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	grant, err := h.grants.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, grant)
}

// UpdateGrant godoc
// @Summary Update a role operation
// @Tags operaciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant id"
// @Param request body model.RoleOperationPatch true "Fields to change"
// @Success 200 {object} GrantResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /operacion-rols/actualizar/{id} [put]
func (h *AccessHandler) UpdateGrant(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	var patch model.RoleOperationPatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	grant, err := h.grants.Update(c.Request().Context(), id, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, GrantResponse{Message: "OperacionRol updated successfully", Grant: grant})
}

// DeleteGrant godoc
// @Summary Delete a role operation
// @Tags operaciones
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grant id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /operacion-rols/eliminar/{id} [delete]
func (h *AccessHandler) DeleteGrant(c echo.Context) error {
	id, err := uintParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.grants.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return deleted(c, "OperacionRol deleted successfully")
}
