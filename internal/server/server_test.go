package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant"
	"nexora-assistant/internal/assistant/corpus"
	"nexora-assistant/internal/assistant/memo"
	"nexora-assistant/internal/assistant/qa"
	"nexora-assistant/internal/assistant/store"
	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/models"
)

func newTestServer(t *testing.T) (*Server, *store.Fake) {
	fake := store.NewFake()
	log := logger.NewTestLogger(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	svc := assistant.NewService(
		qa.NewEngine(fake, log),
		corpus.NewCache(fake, log),
		memo.New(client, 0, log),
		log,
		nil,
		0.1,
	)
	srv, err := New(svc, log, ":0")
	require.NoError(t, err)
	return srv, fake
}

func postChat(t *testing.T, srv *Server, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func decodeReply(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Reply
}

func TestChatEndpoint(t *testing.T) {
	srv, fake := newTestServer(t)
	companyID := primitive.NewObjectID()
	fake.Add(store.CollBudgets, models.Budget{
		ID:                      primitive.NewObjectID(),
		CompanyID:               companyID,
		DepartmentOrProjectName: "שיווק",
		Amount:                  50000,
	})

	rec := postChat(t, srv, map[string]string{
		"message":   "כמה תקציב יש למחלקת שיווק?",
		"companyId": companyID.Hex(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `סכום התקציב של שיווק הוא 50000 ש"ח.`, decodeReply(t, rec))
}

func TestChatInvalidCompanyID(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postChat(t, srv, map[string]string{
		"message":   "כמה תקציב יש?",
		"companyId": "not-an-object-id",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "מזהה החברה אינו תקין.", decodeReply(t, rec))
}

func TestChatMissingMessage(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postChat(t, srv, map[string]string{
		"companyId": primitive.NewObjectID().Hex(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEmptyMessage(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := postChat(t, srv, map[string]string{
		"message":   "",
		"companyId": primitive.NewObjectID().Hex(),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatMalformedBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatStoreFailureIsBadGateway(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.FailWith(errors.New("connection reset"))

	rec := postChat(t, srv, map[string]string{
		"message":   "כמה תקציב יש למחלקת שיווק?",
		"companyId": primitive.NewObjectID().Hex(),
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestChatQueryTimeoutIsGatewayTimeout(t *testing.T) {
	srv, fake := newTestServer(t)
	fake.FailWith(apperrors.NewQueryTimeoutError(store.CollBudgets))

	rec := postChat(t, srv, map[string]string{
		"message":   "כמה תקציב יש למחלקת שיווק?",
		"companyId": primitive.NewObjectID().Hex(),
	})

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
