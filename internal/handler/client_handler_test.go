package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carwash/internal/errors"
	"carwash/internal/model"
)

func TestClientHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		serviceErr   error
		callsService bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "created",
			body:         `{"nombre":"Ana","email":"ana@example.com","cliente_cedula":123}`,
			callsService: true,
			expectedCode: http.StatusOK,
		},
		{
			name:         "duplicate cedula",
			body:         `{"nombre":"Ana","email":"ana@example.com","cliente_cedula":123}`,
			serviceErr:   errors.ErrClientExists,
			callsService: true,
			expectedCode: http.StatusBadRequest,
			expectedBody: "Cliente ya existe",
		},
		{
			name:         "invalid email",
			body:         `{"nombre":"Ana","email":"not-an-email","cliente_cedula":123}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing cedula",
			body:         `{"nombre":"Ana","email":"ana@example.com"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			svc := new(MockClientService)
			h := NewClientHandler(svc)
			if tt.callsService {
				if tt.serviceErr != nil {
					svc.On("Register", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
				} else {
					svc.On("Register", mock.Anything, mock.Anything).Return(&model.Client{ID: 1, Name: "Ana", Email: "ana@example.com", Cedula: 123}, nil)
				}
			}

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/clientes/registrar", tt.body), rec)
			err := h.Register(c)

			if tt.expectedCode == http.StatusOK {
				require.NoError(t, err)
				assert.Contains(t, rec.Body.String(), `"message":"Cliente creado"`)
				assert.Contains(t, rec.Body.String(), `"cliente_cedula":123`)
			} else {
				var he *echo.HTTPError
				require.ErrorAs(t, err, &he)
				assert.Equal(t, tt.expectedCode, he.Code)
				if tt.expectedBody != "" {
					assert.Equal(t, errors.ErrorResponse{Detail: tt.expectedBody}, he.Message)
				}
			}
			if !tt.callsService {
				svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestClientHandler_List(t *testing.T) {
	e := newEcho()
	svc := new(MockClientService)
	h := NewClientHandler(svc)
	svc.On("List", mock.Anything).Return([]model.Client{{ID: 1, Cedula: 123}}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/clientes/todos", nil), rec)

	require.NoError(t, h.List(c))
	assert.Contains(t, rec.Body.String(), `"clientes":[`)
}

func TestClientHandler_UpdateAndDelete(t *testing.T) {
	e := newEcho()
	svc := new(MockClientService)
	h := NewClientHandler(svc)

	name := "Ana Maria"
	svc.On("Update", mock.Anything, int64(123), model.ClientPatch{Name: &name}).
		Return(&model.Client{ID: 1, Name: name, Cedula: 123}, nil)
	svc.On("Delete", mock.Anything, int64(123)).
		Return(&model.Client{ID: 1, Name: name, Cedula: 123}, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPut, "/", `{"nombre":"Ana Maria"}`), rec)
	c.SetParamNames("cedula")
	c.SetParamValues("123")
	require.NoError(t, h.Update(c))
	assert.Contains(t, rec.Body.String(), `"message":"Cliente updated successfully"`)

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("cedula")
	c.SetParamValues("123")
	require.NoError(t, h.Delete(c))
	assert.Contains(t, rec.Body.String(), `"message":"Cliente deleted successfully"`)
	assert.Contains(t, rec.Body.String(), `"nombre":"Ana Maria"`)
}
