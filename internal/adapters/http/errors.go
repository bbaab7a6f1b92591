package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/viralforge/fantasymanager/internal/contracts"
	"github.com/viralforge/fantasymanager/internal/domain"
)

const (
	internalErrorName        = "InternalServerError"
	internalErrorMessage     = "An unexpected error occurred"
	internalErrorDescription = "Please contact support if this error persists"
)

// RequestInfo is the request context attached to error diagnostics.
type RequestInfo struct {
	Method    string
	Path      string
	RequestID string
	Operation string
}

func requestInfo(r *http.Request, operation string) RequestInfo {
	return RequestInfo{
		Method:    r.Method,
		Path:      r.URL.Path,
		RequestID: requestIDFromContext(r.Context()),
		Operation: operation,
	}
}

// Translate maps err to the HTTP status and envelope returned to the caller.
// Application errors are logged at warn level; anything else is logged in
// full at error level and answered with a generic 500 envelope.
func Translate(ctx context.Context, req RequestInfo, err error) (int, contracts.ErrorEnvelope) {
	envelope, appErr := envelopeFor(err)
	operation := req.Operation
	if operation == "" {
		operation = "http_request"
	}
	if appErr != nil {
		logHTTPOperationError(ctx, req, operation, envelope.StatusCode, envelope.Code, envelope.Message,
			append([]any{"description", envelope.Description}, diagnosticFields(err)...)...)
		return envelope.StatusCode, envelope
	}
	// fmt prints nil and nil-pointer errors as "<nil>" without calling Error.
	logHTTPOperationError(ctx, req, operation, envelope.StatusCode, envelope.Code, envelope.Message, "error", fmt.Sprint(err))
	return envelope.StatusCode, envelope
}

// envelopeFor is the pure part of Translate. The returned ApplicationError is
// nil when err is unclassified.
func envelopeFor(err error) (contracts.ErrorEnvelope, domain.ApplicationError) {
	if appErr, ok := domain.AsApplicationError(err); ok {
		description := appErr.Description()
		if description == "" {
			description = appErr.Message()
		}
		return contracts.ErrorEnvelope{
			StatusCode:  appErr.StatusCode(),
			Code:        appErr.Code(),
			Error:       appErr.Name(),
			Message:     appErr.Message(),
			Description: description,
		}, appErr
	}
	return contracts.ErrorEnvelope{
		StatusCode:  http.StatusInternalServerError,
		Code:        domain.CodeInternalServer,
		Error:       internalErrorName,
		Message:     internalErrorMessage,
		Description: internalErrorDescription,
	}, nil
}

func diagnosticFields(err error) []any {
	var fields []any
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil && validationErr.Field != "" {
		fields = append(fields, "field", validationErr.Field)
	}
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) && notFoundErr != nil {
		if notFoundErr.ResourceType != "" {
			fields = append(fields, "resource_type", notFoundErr.ResourceType)
		}
		if notFoundErr.ResourceID != "" {
			fields = append(fields, "resource_id", notFoundErr.ResourceID)
		}
	}
	return fields
}
