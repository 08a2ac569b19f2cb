package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Client-side errors - caught before any request leaves the session host
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypePlanLimit
	ErrorTypeBusy

	// Backend errors - refusals and failures reported by the remote API
	ErrorTypeForbidden
	ErrorTypeUnauthorized
	ErrorTypeExternalAPI

	// Credential and infrastructure errors
	ErrorTypeToken
	ErrorTypeStorage
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypePlanLimit:
		return "PLAN_LIMIT_ERROR"
	case ErrorTypeBusy:
		return "BUSY_ERROR"
	case ErrorTypeForbidden:
		return "FORBIDDEN_ERROR"
	case ErrorTypeUnauthorized:
		return "UNAUTHORIZED_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeToken:
		return "TOKEN_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across the code base
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	PlanLimitError     = ErrorTypePlanLimit
	BusyError          = ErrorTypeBusy
	ForbiddenError     = ErrorTypeForbidden
	UnauthorizedError  = ErrorTypeUnauthorized
	ExternalAPIError   = ErrorTypeExternalAPI
	TokenError         = ErrorTypeToken
	StorageError       = ErrorTypeStorage
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Client-side error constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewPlanLimitError(message string) *AppError {
	return New(PlanLimitError, message)
}

func NewBusyError(message string) *AppError {
	return New(BusyError, message)
}

// Backend error constructors. The message is what the user sees, so it carries
// the server-supplied text whenever there is one.
func NewForbiddenError(message string) *AppError {
	return New(ForbiddenError, message)
}

func NewUnauthorizedError(message string) *AppError {
	return New(UnauthorizedError, message)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

// Credential and infrastructure error constructors
func NewTokenError(message string, cause error) *AppError {
	return Wrap(TokenError, message, cause)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// TypeOf returns the type of the first AppError in the chain
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// UserMessage returns the text a user should see for err
func UserMessage(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return TypeOf(err) == ValidationError
}

func IsNotFoundError(err error) bool {
	return TypeOf(err) == NotFoundError
}

func IsPlanLimitError(err error) bool {
	return TypeOf(err) == PlanLimitError
}

func IsBusyError(err error) bool {
	return TypeOf(err) == BusyError
}

func IsForbiddenError(err error) bool {
	return TypeOf(err) == ForbiddenError
}

func IsUnauthorizedError(err error) bool {
	return TypeOf(err) == UnauthorizedError
}

func IsExternalAPIError(err error) bool {
	return TypeOf(err) == ExternalAPIError
}

func IsTokenError(err error) bool {
	return TypeOf(err) == TokenError
}

func IsStorageError(err error) bool {
	return TypeOf(err) == StorageError
}

func IsConfigurationError(err error) bool {
	return TypeOf(err) == ConfigurationError
}
