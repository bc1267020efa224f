package errors

import (
	"errors"
	"net/http"
)

// Conflict family: a register or update would duplicate a unique key.
var (
	ErrConflict             = errors.New("already exists")
	ErrClientExists         = wrap(ErrConflict, "Cliente ya existe")
	ErrVehicleExists        = wrap(ErrConflict, "Vehiculo ya existe")
	ErrOrderExists          = wrap(ErrConflict, "Orden de servicio ya existe")
	ErrEmployeeEmailExists  = wrap(ErrConflict, "Email already registered")
	ErrEmployeeCedulaExists = wrap(ErrConflict, "Cedula ya registrada")
	ErrEmailInUse           = wrap(ErrConflict, "Email already registered")
)

// NotFound family.
var (
	ErrNotFound              = errors.New("not found")
	ErrClientNotFound        = wrap(ErrNotFound, "Cliente no encontrado")
	ErrVehicleNotFound       = wrap(ErrNotFound, "Vehiculo not found")
	ErrServiceNotFound       = wrap(ErrNotFound, "Servicio not found")
	ErrEmployeeNotFound      = wrap(ErrNotFound, "Empleado not found")
	ErrOrderNotFound         = wrap(ErrNotFound, "Orden de servicio no encontrada")
	ErrRoleNotFound          = wrap(ErrNotFound, "Rol no encontrado")
	ErrModuleNotFound        = wrap(ErrNotFound, "Modulo no encontrado")
	ErrOperationNotFound     = wrap(ErrNotFound, "Operacion no encontrada")
	ErrRoleOperationNotFound = wrap(ErrNotFound, "Operacion de rol no encontrada")
)

var (
	// ErrForbidden is returned when the caller's role may not run an operation.
	ErrForbidden = errors.New("No tienes permiso")
	// ErrUnauthorized is returned for a missing, invalid or revoked session.
	ErrUnauthorized = errors.New("Could not validate credentials")
	// ErrInvalidCredentials is returned when login email or password is wrong.
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	// ErrInvalidRefreshToken is returned when a refresh token is unknown or expired.
	ErrInvalidRefreshToken = errors.New("Invalid or expired refresh token")
	// ErrInvalidInput is returned for values the transport layer could not reject.
	ErrInvalidInput = errors.New("invalid input")
)

// kindError carries a user-facing message while still matching its family
// sentinel through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func wrap(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Detail: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy becomes a generic 500 so driver messages never reach clients.
func MapErrorToHTTP(err error) *HTTPError {
	var ke *kindError
	msg := ""
	if errors.As(err, &ke) {
		msg = ke.msg
	}

	switch {
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusBadRequest, orDefault(msg, err))
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, orDefault(msg, err))
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error())
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, rootMessage(err))
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// Is is errors.Is, re-exported so callers importing this package need not
// alias the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsHandled reports whether err belongs to the taxonomy.
func IsHandled(err error) bool {
	return MapErrorToHTTP(err).StatusCode != http.StatusInternalServerError
}

func orDefault(msg string, err error) string {
	if msg != "" {
		return msg
	}
	return err.Error()
}

func rootMessage(err error) string {
	if errors.Is(err, ErrInvalidRefreshToken) {
		return ErrInvalidRefreshToken.Error()
	}
	return ErrUnauthorized.Error()
}
