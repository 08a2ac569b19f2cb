package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// WeatherRequest carries the city either as a query parameter or in the body
type WeatherRequest struct {
	City string `json:"city" form:"city"`
}

// searchWeather handles GET and POST /api/weather requests
func (s *HTTPServerAdapter) searchWeather(c *gin.Context) {
	var req WeatherRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	s.logger.Debug("Searching weather", ports.F("city", req.City))
	if err := s.session.SearchWeather(c.Request.Context(), req.City); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// refreshHistory handles GET /api/history requests
func (s *HTTPServerAdapter) refreshHistory(c *gin.Context) {
	if err := s.session.RefreshHistory(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// hideHistory handles DELETE /api/history requests
func (s *HTTPServerAdapter) hideHistory(c *gin.Context) {
	s.session.HideHistory()
	s.respond(c, http.StatusOK, "")
}
