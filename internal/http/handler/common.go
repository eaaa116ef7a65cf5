package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AMESmith/customer-dashboard/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationError sends a standardized validation error response with specific field messages
func respondValidationError(w http.ResponseWriter, err error) {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			errs[requestFieldName(fe.StructNamespace())] = formatValidationError(fe)
		}
	}
	respondFieldErrors(w, errs)
}

// respondFieldErrors sends a validation error response for already-formatted field messages
func respondFieldErrors(w http.ResponseWriter, errs map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: errs,
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", requestFieldName(fe.StructNamespace()))
	case "gte":
		return fmt.Sprintf("Must be greater than or equal to %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("Must be greater than or equal to %s", requestFieldName(siblingNamespace(fe.StructNamespace(), fe.Param())))
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return domain.GetValidationMessage(fe.Tag())
	}
}

// requestFieldNames maps criteria fields to the request fields they are read from
var requestFieldNames = map[string]string{
	"ValueRange.Min": paramMinValue,
	"ValueRange.Max": paramMaxValue,
}

// requestFieldName names a validated struct field the way the client sent it
func requestFieldName(namespace string) string {
	for suffix, name := range requestFieldNames {
		if namespace == suffix || strings.HasSuffix(namespace, "."+suffix) {
			return name
		}
	}
	field := namespace
	if idx := strings.LastIndex(namespace, "."); idx != -1 {
		field = namespace[idx+1:]
	}
	return toJSONFieldName(field)
}

// siblingNamespace replaces the last element of namespace with field
func siblingNamespace(namespace, field string) string {
	if idx := strings.LastIndex(namespace, "."); idx != -1 {
		return namespace[:idx+1] + field
	}
	return field
}

// toJSONFieldName converts a Go struct field name to its JSON equivalent (camelCase)
func toJSONFieldName(field string) string {
	if len(field) == 0 {
		return field
	}
	// Convert first character to lowercase for camelCase
	return strings.ToLower(field[:1]) + field[1:]
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusTooManyRequests:
		return domain.ErrorTypeTooManyRequests
	case http.StatusServiceUnavailable:
		return domain.ErrorTypeUnavailable
	default:
		return domain.ErrorTypeInternal
	}
}
