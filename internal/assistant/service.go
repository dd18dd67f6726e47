// Package assistant wires the question-answering pipeline: answer memo,
// keyword routing, and the similarity fallback over the tenant corpus.
package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/corpus"
	"nexora-assistant/internal/assistant/memo"
	"nexora-assistant/internal/assistant/qa"
	"nexora-assistant/internal/assistant/similarity"
	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/common/metrics"
	"nexora-assistant/internal/common/observability"
)

// Fixed replies for questions no handler or fallback could answer.
const (
	NoAnswerReply    = "לא מצאתי תשובה מתאימה לשאלה שלך."
	CloseMatchPrefix = "מצאתי מידע קרוב לשאלתך:\n"
)

// Service answers one chat question end to end. The pipeline is: memo lookup,
// keyword-routed domain handler, then TF-IDF similarity over the tenant
// corpus when no route matched.
type Service struct {
	engine    *qa.Engine
	corpus    *corpus.Cache
	memo      *memo.Memo
	log       logger.Logger
	obs       *observability.Observability
	threshold float64
}

func NewService(engine *qa.Engine, corpusCache *corpus.Cache, answerMemo *memo.Memo, log logger.Logger, obs *observability.Observability, threshold float64) *Service {
	return &Service{
		engine:    engine,
		corpus:    corpusCache,
		memo:      answerMemo,
		log:       log,
		obs:       obs,
		threshold: threshold,
	}
}

// Chat answers a question for one company. Repeated questions are served from
// the memo without touching the store.
func (s *Service) Chat(ctx context.Context, companyID primitive.ObjectID, message string) (string, error) {
	start := time.Now()
	requestID := uuid.NewString()
	log := s.log.With(map[string]interface{}{
		"request_id": requestID,
		"company_id": companyID.Hex(),
	})

	if reply, ok := s.memo.Get(ctx, companyID, message); ok {
		s.record(ctx, "memo", "memo_hit", start)
		log.Info("answered from memo", nil)
		return reply, nil
	}

	q := qa.NewQuestion(companyID, message)
	ans, err := s.engine.Answer(ctx, q)
	if err != nil {
		s.record(ctx, "none", "error", start)
		log.WithError(err).Error("domain handler failed", nil)
		return "", err
	}

	var reply, domain, outcome string
	if ans != nil {
		reply = ans.Text
		domain = ans.Domain
		outcome = string(ans.Outcome)
	} else {
		domain = "fallback"
		reply, outcome, err = s.fallback(ctx, q)
		if err != nil {
			s.record(ctx, domain, "error", start)
			log.WithError(err).Error("similarity fallback failed", nil)
			return "", err
		}
	}

	s.memo.Set(ctx, companyID, message, reply)
	s.record(ctx, domain, outcome, start)
	log.Info("question answered", map[string]interface{}{
		"domain":  domain,
		"outcome": outcome,
	})
	return reply, nil
}

// fallback runs TF-IDF cosine matching over the tenant corpus. Documents
// sharing a token with the question are tried first; with no overlap at all
// the full corpus is scanned.
func (s *Service) fallback(ctx context.Context, q *qa.Question) (string, string, error) {
	docs, err := s.corpus.Documents(ctx, q.CompanyID)
	if err != nil {
		return "", "", err
	}
	if len(docs) == 0 {
		s.log.WithError(apperrors.NewEmptyCorpusError(q.CompanyID.Hex())).Warn("tenant corpus is empty", nil)
		return NoAnswerReply, "no_match", nil
	}

	relevant := narrow(docs, q.Tokens)
	idx, score := similarity.BestMatch(q.Text, relevant)
	if idx < 0 || score <= s.threshold {
		return NoAnswerReply, "no_match", nil
	}
	return CloseMatchPrefix + relevant[idx], "similarity", nil
}

func narrow(docs []string, tokens []string) []string {
	var relevant []string
	for _, doc := range docs {
		lower := strings.ToLower(doc)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				relevant = append(relevant, doc)
				break
			}
		}
	}
	if len(relevant) == 0 {
		return docs
	}
	return relevant
}

func (s *Service) record(ctx context.Context, domain, outcome string, start time.Time) {
	elapsed := time.Since(start)
	metrics.ChatRequests.WithLabelValues(domain, outcome).Inc()
	metrics.ChatRequestDuration.WithLabelValues(domain).Observe(elapsed.Seconds())
	if s.obs != nil {
		s.obs.RecordRequest(ctx, outcome)
		s.obs.RecordDuration(ctx, elapsed, outcome)
	}
}
