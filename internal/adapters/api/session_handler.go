package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guardianclima.app/internal/core/session"
	"guardianclima.app/internal/core/view"
	"guardianclima.app/internal/ports"
	"guardianclima.app/pkg/errors"
)

// SessionResponse is returned by every session action: an optional message
// from the backend and the screen to show next
type SessionResponse struct {
	Message string      `json:"message,omitempty"`
	Screen  view.Screen `json:"screen"`
}

// NavigateRequest represents an explicit view change
type NavigateRequest struct {
	View string `json:"view" form:"view" binding:"required,oneof=landing auth personalization main pricing"`
}

// LoginRequest represents the HTTP request for logging in
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// RegisterRequest represents the HTTP request for creating an account
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpgradeRequest represents the HTTP request for changing plan
type UpgradeRequest struct {
	Plan string `json:"plan" form:"plan" binding:"required,plan"`
}

// HealthResponse represents the aggregated component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

func (s *HTTPServerAdapter) screen() view.Screen {
	return view.Render(s.session.Snapshot(), s.session.Limits())
}

func (s *HTTPServerAdapter) respond(c *gin.Context, status int, message string) {
	c.JSON(status, SessionResponse{Message: message, Screen: s.screen()})
}

// getSession handles GET /api/session requests
func (s *HTTPServerAdapter) getSession(c *gin.Context) {
	s.respond(c, http.StatusOK, "")
}

// getPlans handles GET /api/plans requests
func (s *HTTPServerAdapter) getPlans(c *gin.Context) {
	c.JSON(http.StatusOK, view.PlanCards(s.session.Snapshot().User))
}

// navigate handles POST /api/navigate requests
func (s *HTTPServerAdapter) navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("Vista desconocida."))
		return
	}

	target, err := session.ParseViewName(req.View)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if _, err := s.session.Navigate(target); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// login handles POST /api/auth/login requests
func (s *HTTPServerAdapter) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	err := s.session.Login(c.Request.Context(), session.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// register handles POST /api/auth/register requests
func (s *HTTPServerAdapter) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	message, err := s.session.Register(c.Request.Context(), session.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusCreated, message)
}

// logout handles POST /api/auth/logout requests
func (s *HTTPServerAdapter) logout(c *gin.Context) {
	s.session.Logout(c.Request.Context())
	s.respond(c, http.StatusOK, "")
}

// restore handles POST /api/auth/restore requests
func (s *HTTPServerAdapter) restore(c *gin.Context) {
	if err := s.session.RestoreSession(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// upgradePlan handles POST /api/plan/upgrade requests
func (s *HTTPServerAdapter) upgradePlan(c *gin.Context) {
	var req UpgradeRequest
	if err := c.ShouldBind(&req); err != nil {
		s.logger.Debug("Request binding error", ports.F("error", err.Error()))
		s.handleError(c, errors.NewValidationError("Plan no válido."))
		return
	}

	message, err := s.session.UpgradePlan(c.Request.Context(), req.Plan)
	if err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, message)
}

// health handles GET /health requests
func (s *HTTPServerAdapter) health(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	status := http.StatusOK
	for _, component := range components {
		if component.Status != "healthy" {
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
			break
		}
	}
	c.JSON(status, response)
}
