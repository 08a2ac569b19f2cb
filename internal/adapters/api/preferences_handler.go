package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"guardianclima.app/internal/core/preferences"
	"guardianclima.app/pkg/errors"
)

// WizardSelectRequest answers one question of the personalization wizard
type WizardSelectRequest struct {
	Question string `json:"question" form:"question" binding:"required"`
	Option   string `json:"option" form:"option" binding:"required"`
}

func (s *HTTPServerAdapter) wizardStep(c *gin.Context, step func() (preferences.Page, error)) {
	if _, err := step(); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}

// wizardNext handles POST /api/wizard/next requests
func (s *HTTPServerAdapter) wizardNext(c *gin.Context) {
	s.wizardStep(c, s.session.WizardNext)
}

// wizardPrevious handles POST /api/wizard/previous requests
func (s *HTTPServerAdapter) wizardPrevious(c *gin.Context) {
	s.wizardStep(c, s.session.WizardPrevious)
}

// wizardSelect handles POST /api/wizard/select requests
func (s *HTTPServerAdapter) wizardSelect(c *gin.Context) {
	var req WizardSelectRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Selecciona una opción."))
		return
	}
	s.wizardStep(c, func() (preferences.Page, error) {
		return s.session.WizardSelect(req.Question, req.Option)
	})
}

// submitPreferences handles POST /api/wizard/submit requests
func (s *HTTPServerAdapter) submitPreferences(c *gin.Context) {
	if err := s.session.SubmitPreferences(c.Request.Context()); err != nil {
		s.handleError(c, err)
		return
	}
	s.respond(c, http.StatusOK, "")
}
