package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guardianclima.app/internal/core/view"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

const (
	internalErrorMessage = "Internal server error"
	expiredTokenMessage  = "Tu sesión ha expirado. Por favor, inicia sesión de nuevo."
)

// ErrorResponse represents an error message structure for API responses.
// Screen is the view after the failure, which may differ from the one the
// request started on (a rejected credential ends the session).
type ErrorResponse struct {
	Error  string       `json:"error"`
	Type   string       `json:"type,omitempty"`
	Screen *view.Screen `json:"screen,omitempty"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var statusCode int
	message := errors.UserMessage(err)

	errType := errors.TypeOf(err)
	switch errType {
	case errors.ValidationError:
		statusCode = http.StatusBadRequest
	case errors.NotFoundError:
		statusCode = http.StatusNotFound
	case errors.PlanLimitError, errors.ForbiddenError:
		statusCode = http.StatusForbidden
	case errors.BusyError:
		statusCode = http.StatusConflict
	case errors.UnauthorizedError:
		statusCode = http.StatusUnauthorized
	case errors.TokenError:
		statusCode = http.StatusUnauthorized
		message = expiredTokenMessage
	case errors.ExternalAPIError:
		statusCode = http.StatusBadGateway
	default:
		statusCode = http.StatusInternalServerError
		message = internalErrorMessage
	}

	if statusCode == http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed", ports.F("path", c.FullPath()), ports.F("error", err.Error()))
	}

	response := ErrorResponse{Error: message}
	if errType != errors.ErrorTypeUnknown {
		response.Type = errType.String()
	}
	if s.session != nil {
		screen := s.screen()
		response.Screen = &screen
	}
	c.JSON(statusCode, response)
}
