package domain

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// Stable machine-readable codes returned in the error envelope.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeAuthentication = "AUTHENTICATION_REQUIRED"
	CodeAuthorization  = "INSUFFICIENT_PERMISSIONS"
	CodeInternalServer = "INTERNAL_SERVER_ERROR"
)

const (
	defaultAuthnMessage = "Authentication required"
	defaultAuthnDesc    = "Valid authentication credentials are required to access this resource"
	defaultAuthzMessage = "Insufficient permissions"
	defaultAuthzDesc    = "You do not have sufficient permissions to access this resource"
)

// ApplicationError is a failure the API reports to callers with a fixed code
// and HTTP status. The set of implementations is closed to this package.
type ApplicationError interface {
	error
	Code() string
	StatusCode() int
	// Name is the variant name reported in the envelope "error" field.
	Name() string
	Message() string
	// Description returns the raw description, which may be empty.
	Description() string

	applicationError()
}

// AsApplicationError finds the first ApplicationError in err's chain. A nil
// pointer stored as an ApplicationError does not count.
func AsApplicationError(err error) (ApplicationError, bool) {
	var appErr ApplicationError
	if err == nil || !errors.As(err, &appErr) || isNilPointer(appErr) {
		return nil, false
	}
	return appErr, true
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

type appError struct {
	message     string
	description string
}

func (e appError) Error() string       { return e.message }
func (e appError) Message() string     { return e.message }
func (e appError) Description() string { return e.description }
func (appError) applicationError()     {}

// ValidationError reports request input that violates a route contract.
type ValidationError struct {
	appError
	Field string
}

func NewValidationError(message, description string) *ValidationError {
	return &ValidationError{appError: appError{message: message, description: description}}
}

// WithField returns a copy of e naming the offending input.
func (e *ValidationError) WithField(field string) *ValidationError {
	cp := *e
	cp.Field = field
	return &cp
}

func (*ValidationError) Code() string    { return CodeValidation }
func (*ValidationError) StatusCode() int { return http.StatusUnprocessableEntity }
func (*ValidationError) Name() string    { return "ValidationError" }

// NotFoundError reports a missing resource.
type NotFoundError struct {
	appError
	ResourceType string
	ResourceID   string
}

func NewNotFoundError(message, description string) *NotFoundError {
	return &NotFoundError{appError: appError{message: message, description: description}}
}

// WithResource returns a copy of e identifying the missing resource.
func (e *NotFoundError) WithResource(resourceType string, resourceID any) *NotFoundError {
	cp := *e
	cp.ResourceType = resourceType
	if resourceID != nil {
		cp.ResourceID = fmt.Sprint(resourceID)
	}
	return &cp
}

func (*NotFoundError) Code() string    { return CodeNotFound }
func (*NotFoundError) StatusCode() int { return http.StatusNotFound }
func (*NotFoundError) Name() string    { return "NotFoundError" }

type ConflictError struct{ appError }

func NewConflictError(message, description string) *ConflictError {
	return &ConflictError{appError: appError{message: message, description: description}}
}

func (*ConflictError) Code() string    { return CodeConflict }
func (*ConflictError) StatusCode() int { return http.StatusConflict }
func (*ConflictError) Name() string    { return "ConflictError" }

type AuthenticationError struct{ appError }

// NewAuthenticationError falls back to the standard message and description
// for empty arguments.
func NewAuthenticationError(message, description string) *AuthenticationError {
	if message == "" {
		message = defaultAuthnMessage
	}
	if description == "" {
		description = defaultAuthnDesc
	}
	return &AuthenticationError{appError: appError{message: message, description: description}}
}

func (*AuthenticationError) Code() string    { return CodeAuthentication }
func (*AuthenticationError) StatusCode() int { return http.StatusUnauthorized }
func (*AuthenticationError) Name() string    { return "AuthenticationError" }

type AuthorizationError struct{ appError }

// NewAuthorizationError falls back to the standard message and description
// for empty arguments.
func NewAuthorizationError(message, description string) *AuthorizationError {
	if message == "" {
		message = defaultAuthzMessage
	}
	if description == "" {
		description = defaultAuthzDesc
	}
	return &AuthorizationError{appError: appError{message: message, description: description}}
}

func (*AuthorizationError) Code() string    { return CodeAuthorization }
func (*AuthorizationError) StatusCode() int { return http.StatusForbidden }
func (*AuthorizationError) Name() string    { return "AuthorizationError" }
