package memo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/common/logger"
)

func newTestMemo(t *testing.T, ttl time.Duration) (*Memo, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, ttl, logger.NewTestLogger(t)), mr
}

func TestMemoRoundTrip(t *testing.T) {
	m, _ := newTestMemo(t, 0)
	companyID := primitive.NewObjectID()
	ctx := context.Background()

	_, ok := m.Get(ctx, companyID, "מה התקציב של שיווק?")
	assert.False(t, ok)

	m.Set(ctx, companyID, "מה התקציב של שיווק?", "התקציב של שיווק הוא 50000.")

	answer, ok := m.Get(ctx, companyID, "מה התקציב של שיווק?")
	require.True(t, ok)
	assert.Equal(t, "התקציב של שיווק הוא 50000.", answer)
}

func TestMemoScopedByTenant(t *testing.T) {
	m, _ := newTestMemo(t, 0)
	ctx := context.Background()
	companyA := primitive.NewObjectID()
	companyB := primitive.NewObjectID()

	m.Set(ctx, companyA, "כמה עובדים יש?", "יש 12 עובדים.")

	_, ok := m.Get(ctx, companyB, "כמה עובדים יש?")
	assert.False(t, ok, "tenants must not share memoized answers")
}

func TestMemoTTLExpires(t *testing.T) {
	m, mr := newTestMemo(t, time.Minute)
	ctx := context.Background()
	companyID := primitive.NewObjectID()

	m.Set(ctx, companyID, "שאלה", "תשובה")
	mr.FastForward(2 * time.Minute)

	_, ok := m.Get(ctx, companyID, "שאלה")
	assert.False(t, ok)
}

func TestMemoBackendDownIsAMiss(t *testing.T) {
	m, mr := newTestMemo(t, 0)
	ctx := context.Background()
	companyID := primitive.NewObjectID()
	mr.Close()

	_, ok := m.Get(ctx, companyID, "שאלה")
	assert.False(t, ok)
	m.Set(ctx, companyID, "שאלה", "תשובה")
}

func TestKeyStableAndDistinct(t *testing.T) {
	companyID := primitive.NewObjectID()
	assert.Equal(t, Key(companyID, "שאלה"), Key(companyID, "שאלה"))
	assert.NotEqual(t, Key(companyID, "שאלה"), Key(companyID, "שאלה אחרת"))
	assert.NotEqual(t, Key(companyID, "שאלה"), Key(primitive.NewObjectID(), "שאלה"))
}
