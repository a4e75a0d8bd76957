// Package ercerrors provides the structured API error type used at the
// boundary of the ERC CLI and HTTP gateway, never inside the pure erc
// package itself, which reports failures as plain *erc.InputError values.
package ercerrors

import (
	"fmt"
	"net/http"
	"time"
)

// Code is a standardized, stable error code for the HTTP/CLI boundary.
type Code string

const (
	CodeInvalidParameters  Code = "INVALID_PARAMETERS"
	CodeElectricalSafety   Code = "ELECTRICAL_SAFETY_VIOLATION"
	CodeBadRequest         Code = "BAD_REQUEST"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInternalServer     Code = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
)

// APIError is a structured error returned to CLI/HTTP callers.
type APIError struct {
	Code      Code              `json:"code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus returns the HTTP status code that corresponds to the error.
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest, CodeInvalidParameters, CodeElectricalSafety:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new APIError.
func New(code Code, message string) *APIError {
	return &APIError{Code: code, Message: message, Timestamp: time.Now().UTC()}
}

// NewWithDetails creates a new APIError carrying structured details.
func NewWithDetails(code Code, message string, details map[string]string) *APIError {
	return &APIError{Code: code, Message: message, Details: details, Timestamp: time.Now().UTC()}
}

// InvalidSnapshot wraps an erc.InputError (or any decode failure) as a
// 400-class APIError.
func InvalidSnapshot(err error) *APIError {
	return NewWithDetails(CodeInvalidParameters, "snapshot could not be indexed", map[string]string{
		"reason": err.Error(),
	})
}
