package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorCodes(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name      string
		err       *StandardError
		code      ErrorCode
		retryable bool
	}{
		{"tenant id invalid", NewTenantIDInvalidError("not-hex"), ErrCodeTenantIDInvalid, false},
		{"request validation failed", NewRequestValidationFailedError("message is required"), ErrCodeRequestValidationFailed, false},
		{"store connection failed", NewStoreConnectionFailedError(cause), ErrCodeStoreConnectionFailed, true},
		{"store query failed", NewStoreQueryFailedError("budgets", cause), ErrCodeStoreQueryFailed, true},
		{"query timeout", NewQueryTimeoutError("budgets"), ErrCodeQueryTimeout, true},
		{"corpus load failed", NewCorpusLoadFailedError(cause), ErrCodeCorpusLoadFailed, true},
		{"empty corpus", NewEmptyCorpusError("64f000000000000000000001"), ErrCodeEmptyCorpus, false},
		{"memo unavailable", NewMemoUnavailableError(cause), ErrCodeMemoUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.retryable, tt.err.Retryable)
			assert.Equal(t, tt.code, CodeOf(tt.err))
			assert.False(t, tt.err.Timestamp.IsZero())
			assert.Contains(t, tt.err.Error(), string(tt.code))
		})
	}
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, IsTimeout(NewQueryTimeoutError("finances")))
	assert.False(t, IsTimeout(NewStoreQueryFailedError("finances", errors.New("boom"))))
	assert.False(t, IsTimeout(errors.New("plain error")))
	assert.False(t, IsTimeout(nil))
}

func TestCodeOfForeignError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("not standard")))
}
