package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carwash/internal/model"
)

func TestServiceHandler_RejectsNegativePrice(t *testing.T) {
	tests := []struct {
		name   string
		method string
		call   func(h *ServiceHandler, c echo.Context) error
		body   string
	}{
		{
			name:   "register",
			method: http.MethodPost,
			call:   (*ServiceHandler).Register,
			body:   `{"nombre": "Lavado", "precio": -3}`,
		},
		{
			name:   "update",
			method: http.MethodPut,
			call:   (*ServiceHandler).Update,
			body:   `{"precio": -3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			svc := new(MockCatalogService)
			h := NewServiceHandler(svc)

			c := e.NewContext(jsonRequest(tt.method, "/", tt.body), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues("1")

			var he *echo.HTTPError
			require.ErrorAs(t, tt.call(h, c), &he)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestServiceHandler_UpdatePrice(t *testing.T) {
	e := newEcho()
	svc := new(MockCatalogService)
	h := NewServiceHandler(svc)
	price := decimal.RequireFromString("12.5")
	svc.On("Update", mock.Anything, uint(1), mock.MatchedBy(func(p model.ServicePatch) bool {
		return p.Price != nil && p.Price.Equal(price) && p.Name == nil
	})).Return(&model.Service{ID: 1, Name: "Lavado", Price: price}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/", `{"precio": 12.5}`), rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
