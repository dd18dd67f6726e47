// Package corpus maintains the per-tenant document corpus used by the
// similarity fallback. Every company gets a lazily loaded snapshot of its
// records across all collections, serialized to JSON strings.
package corpus

import (
	"context"
	"encoding/json"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant/store"
	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/logger"
	"nexora-assistant/internal/common/metrics"
)

type entry struct {
	mu     sync.Mutex
	loaded bool
	docs   []string
}

// Cache holds one corpus per company. Loading is guarded per tenant, so a
// slow first load for one company never blocks requests for another.
type Cache struct {
	store store.Store
	log   logger.Logger

	mu      sync.Mutex
	tenants map[string]*entry
}

func NewCache(st store.Store, log logger.Logger) *Cache {
	return &Cache{
		store:   st,
		log:     log,
		tenants: make(map[string]*entry),
	}
}

func (c *Cache) tenant(companyID primitive.ObjectID) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.tenants[companyID.Hex()]
	if !ok {
		e = &entry{}
		c.tenants[companyID.Hex()] = e
	}
	return e
}

// Documents returns the company's corpus, loading it on first use.
func (c *Cache) Documents(ctx context.Context, companyID primitive.ObjectID) ([]string, error) {
	e := c.tenant(companyID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded {
		docs, err := c.load(ctx, companyID)
		if err != nil {
			return nil, err
		}
		e.docs = docs
		e.loaded = true
		metrics.CorpusDocuments.WithLabelValues(companyID.Hex()).Set(float64(len(docs)))
		c.log.Info("corpus loaded", map[string]interface{}{
			"company_id": companyID.Hex(),
			"documents":  len(docs),
		})
	}
	return e.docs, nil
}

// Invalidate drops a company's snapshot so the next question reloads it.
func (c *Cache) Invalidate(companyID primitive.ObjectID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tenants, companyID.Hex())
}

func (c *Cache) load(ctx context.Context, companyID primitive.ObjectID) ([]string, error) {
	var docs []string
	for _, coll := range store.CorpusCollections {
		raw, err := c.store.FindRaw(ctx, coll, bson.M{"companyId": companyID})
		if err != nil {
			return nil, apperrors.NewCorpusLoadFailedError(err)
		}
		for _, doc := range raw {
			delete(doc, "companyId")
			buf, err := json.Marshal(normalize(doc))
			if err != nil {
				c.log.Warn("skipping unserializable corpus document", map[string]interface{}{
					"collection": coll,
					"company_id": companyID.Hex(),
				})
				continue
			}
			docs = append(docs, string(buf))
		}
	}
	return docs, nil
}

// normalize rewrites driver-specific values into plain JSON-friendly ones so
// ids and dates show up as readable strings inside the corpus documents.
func normalize(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case primitive.DateTime:
		return t.Time().UTC().Format("2006-01-02 15:04:05")
	case primitive.Decimal128:
		return t.String()
	case bson.M:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case bson.A:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}
