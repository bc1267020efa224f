package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"carwash/internal/model"
	"carwash/internal/service"
)

// EmployeeHandler handles staff account endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// EmployeeRequest represents an employee registration request.
type EmployeeRequest struct {
	Name     string `json:"nombre" validate:"max=100"`
	Surname  string `json:"apellido" validate:"max=100"`
	Phone    string `json:"telefono" validate:"max=15"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	RoleID   *uint  `json:"rol_id"`
	Cedula   int64  `json:"cedula" validate:"required,gt=0"`
}

// EmployeeCreatedResponse is returned by Register.
type EmployeeCreatedResponse struct {
	Message  string          `json:"message"`
	Employee *model.Employee `json:"nuevo"`
}

// EmployeeResponse wraps a single employee.
type EmployeeResponse struct {
	Message  string          `json:"message"`
	Employee *model.Employee `json:"empleado"`
}

// Register godoc
// @Summary Register an employee
// @Tags empleados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EmployeeRequest true "Employee data"
// @Success 200 {object} EmployeeCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /empleados/registrar [post]
func (h *EmployeeHandler) Register(c echo.Context) error {
	var req EmployeeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	employee, err := h.employeeService.Register(c.Request().Context(), service.NewEmployee{
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
		Cedula:   req.Cedula,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, EmployeeCreatedResponse{Message: "Empleado created successfully", Employee: employee})
}

// List godoc
// @Summary List employees
// @Tags empleados
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Employee
// @Failure 403 {object} errors.ErrorResponse
// @Router /empleados/todos [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, employees)
}

// Get godoc
// @Summary Get an employee by national id
// @Tags empleados
// @Produce json
// @Security BearerAuth
// @Param cedula path int true "Employee national id"
// @Success 200 {object} model.Employee
// @Failure 404 {object} errors.ErrorResponse
// @Router /empleados/{cedula} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	cedula, err := int64Param(c, "cedula")
	if err != nil {
		return err
	}
	employee, err := h.employeeService.Get(c.Request().Context(), cedula)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, employee)
}

// Update godoc
// @Summary Update an employee
// @Tags empleados
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cedula path int true "Employee national id"
// @Param request body model.EmployeePatch true "Fields to change"
// @Success 200 {object} EmployeeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /empleados/actualizar/{cedula} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	cedula, err := int64Param(c, "cedula")
	if err != nil {
		return err
	}
	var patch model.EmployeePatch
	if err := bind(c, &patch); err != nil {
		return err
	}
	employee, err := h.employeeService.Update(c.Request().Context(), cedula, patch)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, EmployeeResponse{Message: "Empleado updated successfully", Employee: employee})
}

// Delete godoc
// @Summary Delete an employee
// @Tags empleados
// @Produce json
// @Security BearerAuth
// @Param cedula path int true "Employee national id"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /empleados/eliminar/{cedula} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	cedula, err := int64Param(c, "cedula")
	if err != nil {
		return err
	}
	if err := h.employeeService.Delete(c.Request().Context(), cedula); err != nil {
		return fail(err)
	}
	return deleted(c, "Empleado deleted successfully")
}
