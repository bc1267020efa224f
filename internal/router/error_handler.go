package router

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"carwash/internal/errors"
)

// NewHTTPErrorHandler renders every failure as {"detail": "..."}. Domain
// errors that reach it unmapped are translated; anything else is logged and
// answered with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errors.ErrorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		switch m := he.Message.(type) {
		case errors.ErrorResponse:
			return he.Code, m.Detail
		case string:
			return he.Code, m
		case error:
			return he.Code, m.Error()
		default:
			return he.Code, fmt.Sprintf("%v", m)
		}
	}

	if errors.IsHandled(err) {
		httpErr := errors.MapErrorToHTTP(err)
		return httpErr.StatusCode, httpErr.Message
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
