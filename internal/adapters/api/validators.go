package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"guardianclima.app/internal/core/plan"
	"guardianclima.app/pkg/errors"
)

// RegisterValidators adds the custom binding rules used by the request DTOs
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.NewConfigurationError("binding validator is not go-playground/validator", nil)
	}
	return v.RegisterValidation("plan", validatePlan)
}

// validatePlan accepts the plans a user can upgrade to
func validatePlan(fl validator.FieldLevel) bool {
	p, ok := plan.Parse(fl.Field().String())
	return ok && plan.IsUpgradeTarget(p)
}
