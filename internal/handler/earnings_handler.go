package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"carwash/internal/model"
	"carwash/internal/service"
)

// EarningsHandler exposes the washer payroll calculator.
type EarningsHandler struct {
	earningsService service.EarningsService
}

// NewEarningsHandler creates a new earnings handler.
func NewEarningsHandler(earningsService service.EarningsService) *EarningsHandler {
	return &EarningsHandler{earningsService: earningsService}
}

// Compute godoc
// @Summary Compute a washer's earnings over a date range
// @Tags pagos
// @Produce json
// @Security BearerAuth
// @Param empleado_id path int true "Washer employee id"
// @Param fecha_inicio query string true "First day, YYYY-MM-DD"
// @Param fecha_fin query string true "Last day, YYYY-MM-DD"
// @Param porcentaje query number true "Share of the order totals, in percent"
// @Success 200 {object} service.Earnings
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /pagos/{empleado_id}/ganancias [get]
func (h *EarningsHandler) Compute(c echo.Context) error {
	employeeID, err := uintParam(c, "empleado_id")
	if err != nil {
		return err
	}
	from, err := model.ParseDate(c.QueryParam("fecha_inicio"))
	if err != nil {
		return badRequest("invalid fecha_inicio")
	}
	to, err := model.ParseDate(c.QueryParam("fecha_fin"))
	if err != nil {
		return badRequest("invalid fecha_fin")
	}
	pct, err := strconv.ParseFloat(c.QueryParam("porcentaje"), 64)
	if err != nil {
		return badRequest("invalid porcentaje")
	}

	earnings, err := h.earningsService.Compute(c.Request().Context(), service.EarningsQuery{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Percentage: pct,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, earnings)
}
