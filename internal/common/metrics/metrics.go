// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ChatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_chat_requests_total",
			Help: "Total number of chat requests by routed domain and outcome",
		},
		[]string{"domain", "outcome"},
	)

	ChatRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_chat_request_duration_seconds",
			Help: "Duration of chat request handling in seconds",
		},
		[]string{"domain"},
	)

	MemoLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_memo_lookups_total",
			Help: "Answer memo lookups by result (hit/miss/error)",
		},
		[]string{"result"},
	)

	CorpusDocuments = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "assistant_corpus_documents",
			Help: "Number of documents held in the in-memory corpus per tenant",
		},
		[]string{"company"},
	)

	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assistant_store_query_duration_seconds",
			Help: "Duration of document store queries in seconds",
		},
		[]string{"collection"},
	)
)
