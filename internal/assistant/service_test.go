package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/corpus"
	"nexora-assistant/internal/assistant/memo"
	"nexora-assistant/internal/assistant/qa"
	"nexora-assistant/internal/assistant/store"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/models"
)

func newTestService(t *testing.T) (*Service, *store.Fake) {
	fake := store.NewFake()
	log := logger.NewTestLogger(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := NewService(
		qa.NewEngine(fake, log),
		corpus.NewCache(fake, log),
		memo.New(client, 0, log),
		log,
		nil,
		0.1,
	)
	return svc, fake
}

func TestChatRoutedAnswer(t *testing.T) {
	svc, fake := newTestService(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollBudgets, models.Budget{
		ID:                      primitive.NewObjectID(),
		CompanyID:               companyID,
		DepartmentOrProjectName: "שיווק",
		Amount:                  50000,
	})

	reply, err := svc.Chat(context.Background(), companyID, "כמה תקציב יש למחלקת שיווק?")
	require.NoError(t, err)
	assert.Equal(t, `סכום התקציב של שיווק הוא 50000 ש"ח.`, reply)
}

func TestChatMemoHitSkipsStore(t *testing.T) {
	svc, fake := newTestService(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollBudgets, models.Budget{
		ID:                      primitive.NewObjectID(),
		CompanyID:               companyID,
		DepartmentOrProjectName: "שיווק",
		Amount:                  50000,
	})

	first, err := svc.Chat(context.Background(), companyID, "כמה תקציב יש למחלקת שיווק?")
	require.NoError(t, err)

	queriesAfterFirst := fake.Queries
	second, err := svc.Chat(context.Background(), companyID, "כמה תקציב יש למחלקת שיווק?")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, queriesAfterFirst, fake.Queries, "repeated question must be served from the memo")
}

func TestChatFallbackSimilarity(t *testing.T) {
	svc, fake := newTestService(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollProducts, models.Product{
		ID:          primitive.NewObjectID(),
		CompanyID:   companyID,
		ProductName: "מדפסת לייזר",
		Category:    "ציוד משרדי",
	})

	reply, err := svc.Chat(context.Background(), companyID, "איזה מידע יש על מדפסת לייזר")
	require.NoError(t, err)
	assert.Contains(t, reply, "מצאתי מידע קרוב לשאלתך:")
	assert.Contains(t, reply, "מדפסת לייזר")
}

func TestChatNoMatch(t *testing.T) {
	svc, fake := newTestService(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollProducts, models.Product{
		ID:          primitive.NewObjectID(),
		CompanyID:   companyID,
		ProductName: "מדפסת לייזר",
	})

	reply, err := svc.Chat(context.Background(), companyID, "אבגד הוזחט יכלמ")
	require.NoError(t, err)
	assert.Equal(t, NoAnswerReply, reply)
}

func TestChatEmptyCorpusNoMatch(t *testing.T) {
	svc, _ := newTestService(t)

	reply, err := svc.Chat(context.Background(), primitive.NewObjectID(), "שאלה כללית לגמרי")
	require.NoError(t, err)
	assert.Equal(t, NoAnswerReply, reply)
}

func TestChatStoreErrorPropagates(t *testing.T) {
	svc, fake := newTestService(t)
	fake.FailWith(errors.New("connection reset"))

	_, err := svc.Chat(context.Background(), primitive.NewObjectID(), "כמה תקציב יש למחלקת שיווק?")
	require.Error(t, err)
}
