package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"carwash/internal/errors"
)

// MessageResponse is returned by deletes and other operations without a body.
type MessageResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// fail maps a service error onto an HTTP error. Errors outside the taxonomy
// are returned unchanged so the router's error handler logs them before
// answering 500.
func fail(err error) error {
	if !errors.IsHandled(err) {
		return err
	}
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{Detail: msg})
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error())
	}
	return nil
}

func uintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, badRequest("invalid " + name)
	}
	return uint(v), nil
}

func int64Param(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, badRequest("invalid " + name)
	}
	return v, nil
}

func deleted(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: msg, Status: http.StatusOK})
}
