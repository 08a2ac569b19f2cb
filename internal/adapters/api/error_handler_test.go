package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"guardianclima.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		statusCode int
		message    string
		errType    string
	}{
		{"Validation", errors.NewValidationError("Por favor, ingresa un destino."), http.StatusBadRequest, "Por favor, ingresa un destino.", "VALIDATION_ERROR"},
		{"NotFound", errors.NewNotFoundError("Ciudad no encontrada"), http.StatusNotFound, "Ciudad no encontrada", "NOT_FOUND_ERROR"},
		{"PlanLimit", errors.NewPlanLimitError("Has alcanzado el límite"), http.StatusForbidden, "Has alcanzado el límite", "PLAN_LIMIT_ERROR"},
		{"Forbidden", errors.NewForbiddenError("Función solo para Premium"), http.StatusForbidden, "Función solo para Premium", "FORBIDDEN_ERROR"},
		{"Busy", errors.NewBusyError("request already in flight"), http.StatusConflict, "request already in flight", "BUSY_ERROR"},
		{"Unauthorized", errors.NewUnauthorizedError("Token has expired"), http.StatusUnauthorized, "Token has expired", "UNAUTHORIZED_ERROR"},
		{"Token", errors.NewTokenError("token is expired", nil), http.StatusUnauthorized, expiredTokenMessage, "TOKEN_ERROR"},
		{"ExternalAPI", errors.NewExternalAPIError("No se pudo generar el consejo.", nil), http.StatusBadGateway, "No se pudo generar el consejo.", "EXTERNAL_API_ERROR"},
		{"Storage", errors.NewStorageError("redis down", nil), http.StatusInternalServerError, internalErrorMessage, "STORAGE_ERROR"},
		{"Configuration", errors.NewConfigurationError("bad config", nil), http.StatusInternalServerError, internalErrorMessage, "CONFIGURATION_ERROR"},
		{"Wrapped", fmt.Errorf("weather for city Lima: %w", errors.NewNotFoundError("Ciudad no encontrada")), http.StatusNotFound, "Ciudad no encontrada", "NOT_FOUND_ERROR"},
		{"Plain", stderrors.New("boom"), http.StatusInternalServerError, internalErrorMessage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{}
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				server.handleError(c, tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.statusCode, w.Code)
			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.errType, response.Type)
			assert.Nil(t, response.Screen)
		})
	}
}
