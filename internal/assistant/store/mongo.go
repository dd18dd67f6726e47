package store

import (
	"context"
	"errors"
	"time"

	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore implements Store on a mongo.Database with a bounded per-call
// query timeout.
type MongoStore struct {
	db           *mongo.Database
	queryTimeout time.Duration
}

// NewMongoStore creates a Store over db. queryTimeout bounds every call.
func NewMongoStore(db *mongo.Database, queryTimeout time.Duration) *MongoStore {
	return &MongoStore{db: db, queryTimeout: queryTimeout}
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter interface{}, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.StoreQueryDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
	}()

	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return s.wrapErr(ctx, collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return s.wrapErr(ctx, collection, err)
	}
	return nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter interface{}, out interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	start := time.Now()
	defer func() {
		metrics.StoreQueryDuration.WithLabelValues(collection).Observe(time.Since(start).Seconds())
	}()

	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, s.wrapErr(ctx, collection, err)
	}
	return true, nil
}

func (s *MongoStore) FindRaw(ctx context.Context, collection string, filter interface{}) ([]map[string]interface{}, error) {
	var docs []bson.M
	if err := s.Find(ctx, collection, filter, &docs); err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, map[string]interface{}(d))
	}
	return out, nil
}

func (s *MongoStore) wrapErr(ctx context.Context, collection string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.NewQueryTimeoutError(collection)
	}
	return apperrors.NewStoreQueryFailedError(collection, err)
}
