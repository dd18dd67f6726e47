// Package errors provides standardized error handling for the assistant service.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTenantIDInvalid         ErrorCode = "TENANT_ID_INVALID"
	ErrCodeRequestValidationFailed ErrorCode = "REQUEST_VALIDATION_FAILED"

	ErrCodeStoreConnectionFailed ErrorCode = "STORE_CONNECTION_FAILED"
	ErrCodeStoreQueryFailed      ErrorCode = "STORE_QUERY_FAILED"
	ErrCodeQueryTimeout          ErrorCode = "QUERY_TIMEOUT"

	ErrCodeCorpusLoadFailed ErrorCode = "CORPUS_LOAD_FAILED"
	ErrCodeEmptyCorpus      ErrorCode = "EMPTY_CORPUS"

	ErrCodeMemoUnavailable ErrorCode = "MEMO_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewTenantIDInvalidError creates a non-retryable tenant id validation error.
func NewTenantIDInvalidError(raw string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTenantIDInvalid,
		Message:   "Company id is not a valid store identifier",
		Details:   fmt.Sprintf("companyId: %q", raw),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestValidationFailedError creates a non-retryable request body validation error.
func NewRequestValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestValidationFailed,
		Message:   "Chat request body validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreConnectionFailedError creates a retryable store connection error.
func NewStoreConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreConnectionFailed,
		Message:   "Document store connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreQueryFailedError creates a retryable store query error.
func NewStoreQueryFailedError(collection string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreQueryFailed,
		Message:   "Document store query error",
		Details:   fmt.Sprintf("collection: %s, error: %s", collection, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQueryTimeoutError creates a retryable query timeout error.
func NewQueryTimeoutError(collection string) *StandardError {
	return &StandardError{
		Code:      ErrCodeQueryTimeout,
		Message:   "Document store query timeout",
		Details:   fmt.Sprintf("collection: %s", collection),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCorpusLoadFailedError creates a retryable corpus load error.
func NewCorpusLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCorpusLoadFailed,
		Message:   "Tenant document corpus load failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyCorpusError marks a tenant with zero stored documents. Callers treat
// this as a graceful empty result, never as a request failure.
func NewEmptyCorpusError(tenant string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyCorpus,
		Message:   "Tenant has no documents to search",
		Details:   fmt.Sprintf("companyId: %s", tenant),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMemoUnavailableError creates a retryable memo backend error.
func NewMemoUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMemoUnavailable,
		Message:   "Answer memo backend unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// CodeOf extracts the ErrorCode from err, or empty when err is not a StandardError.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ""
}

// IsTimeout reports whether err is a query timeout.
func IsTimeout(err error) bool {
	return CodeOf(err) == ErrCodeQueryTimeout
}
