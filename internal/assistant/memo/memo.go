// Package memo stores previously computed answers in Redis so repeating a
// question never re-runs routing or the similarity fallback.
package memo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/common/metrics"
)

// Memo is the per-tenant answer cache. Keys are scoped by company id, so two
// tenants asking the same question never share an answer.
type Memo struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func New(client *redis.Client, ttl time.Duration, log logger.Logger) *Memo {
	return &Memo{client: client, ttl: ttl, log: log}
}

// Key builds the memo key for a question. The question text is hashed, so
// arbitrarily long or unusual input never produces an invalid key.
func Key(companyID primitive.ObjectID, question string) string {
	sum := sha256.Sum256([]byte(question))
	return "memo:" + companyID.Hex() + ":" + hex.EncodeToString(sum[:])
}

// Get returns the memoized answer for the question, if any. Backend errors
// are logged and reported as a miss; the memo never fails a request.
func (m *Memo) Get(ctx context.Context, companyID primitive.ObjectID, question string) (string, bool) {
	if m.client == nil {
		return "", false
	}
	val, err := m.client.Get(ctx, Key(companyID, question)).Result()
	if err == redis.Nil {
		metrics.MemoLookups.WithLabelValues("miss").Inc()
		return "", false
	}
	if err != nil {
		metrics.MemoLookups.WithLabelValues("error").Inc()
		m.log.WithError(apperrors.NewMemoUnavailableError(err)).Warn("memo lookup failed", map[string]interface{}{
			"company_id": companyID.Hex(),
		})
		return "", false
	}
	metrics.MemoLookups.WithLabelValues("hit").Inc()
	return val, true
}

// Set remembers an answer. Errors are logged and swallowed.
func (m *Memo) Set(ctx context.Context, companyID primitive.ObjectID, question, answer string) {
	if m.client == nil {
		return
	}
	if err := m.client.Set(ctx, Key(companyID, question), answer, m.ttl).Err(); err != nil {
		m.log.WithError(apperrors.NewMemoUnavailableError(err)).Warn("memo store failed", map[string]interface{}{
			"company_id": companyID.Hex(),
		})
	}
}
