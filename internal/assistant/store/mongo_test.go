package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "nexora-assistant/internal/common/errors"
)

func TestWrapErrClassifiesDeadlineAsTimeout(t *testing.T) {
	s := &MongoStore{queryTimeout: time.Second}

	err := s.wrapErr(context.Background(), CollBudgets, context.DeadlineExceeded)

	assert.Equal(t, apperrors.ErrCodeQueryTimeout, apperrors.CodeOf(err))
	assert.True(t, apperrors.IsTimeout(err))
}

func TestWrapErrClassifiesExpiredContextAsTimeout(t *testing.T) {
	s := &MongoStore{queryTimeout: time.Second}
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	// The driver may surface its own error once the context deadline has
	// passed; the context state decides the classification.
	err := s.wrapErr(ctx, CollFinances, errors.New("operation interrupted"))

	assert.Equal(t, apperrors.ErrCodeQueryTimeout, apperrors.CodeOf(err))
	assert.True(t, apperrors.IsTimeout(err))
}

func TestWrapErrKeepsOtherErrorsAsQueryFailure(t *testing.T) {
	s := &MongoStore{queryTimeout: time.Second}

	err := s.wrapErr(context.Background(), CollEmployees, errors.New("connection reset"))

	assert.Equal(t, apperrors.ErrCodeStoreQueryFailed, apperrors.CodeOf(err))
	assert.False(t, apperrors.IsTimeout(err))
}
