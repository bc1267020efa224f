package router

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"carwash/internal/errors"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   int
		expectedDetail string
		logged         bool
	}{
		{
			name:           "mapped echo error",
			err:            echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{Detail: "Cliente no encontrado"}),
			expectedCode:   http.StatusNotFound,
			expectedDetail: "Cliente no encontrado",
		},
		{
			name:           "plain echo error",
			err:            echo.ErrMethodNotAllowed,
			expectedCode:   http.StatusMethodNotAllowed,
			expectedDetail: "Method Not Allowed",
		},
		{
			name:           "wrapped domain error",
			err:            fmt.Errorf("register: %w", errors.ErrVehicleExists),
			expectedCode:   http.StatusBadRequest,
			expectedDetail: "Vehiculo ya existe",
		},
		{
			name:           "unexpected error",
			err:            stderrors.New("dial tcp 10.0.0.5:3306: connection refused"),
			expectedCode:   http.StatusInternalServerError,
			expectedDetail: "internal server error",
			logged:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			e := echo.New()
			e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.New(&buf))
			e.GET("/boom", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedDetail, detail(t, rec))
			assert.NotContains(t, rec.Body.String(), "10.0.0.5")
			if tt.logged {
				assert.Contains(t, buf.String(), "unhandled error")
			} else {
				assert.NotContains(t, buf.String(), "unhandled error")
			}
		})
	}
}
