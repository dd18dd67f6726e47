// Package server exposes the assistant over HTTP: the chat endpoint plus
// health and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nexora-assistant/internal/assistant"
	apperrors "nexora-assistant/internal/common/errors"
	"nexora-assistant/internal/common/logger"
)

// InvalidTenantReply is returned verbatim when the company id cannot be
// parsed; clients display it like any other answer.
const InvalidTenantReply = "מזהה החברה אינו תקין."

const chatRequestSchema = `{
	"type": "object",
	"required": ["message", "companyId"],
	"properties": {
		"message": {"type": "string", "minLength": 1},
		"companyId": {"type": "string"}
	}
}`

type chatRequest struct {
	Message   string `json:"message"`
	CompanyID string `json:"companyId"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server is the HTTP front of the assistant service.
type Server struct {
	svc        *assistant.Service
	log        logger.Logger
	schema     *gojsonschema.Schema
	httpServer *http.Server
}

func New(svc *assistant.Service, log logger.Logger, addr string) (*Server, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(chatRequestSchema))
	if err != nil {
		return nil, err
	}

	s := &Server{svc: svc, log: log, schema: schema}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s, nil
}

// Router assembles the chi routes; split out so tests can drive the handler
// stack without binding a port.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/chat", s.handleChat)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) ListenAndServe() error {
	s.log.Info("http server listening", map[string]interface{}{"addr": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable request body"})
		return
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body is not valid JSON"})
		return
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		vErr := apperrors.NewRequestValidationFailedError(strings.Join(details, "; "))
		s.log.WithError(vErr).Warn("chat request validation failed", nil)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: vErr.Details})
		return
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "request body is not valid JSON"})
		return
	}

	companyID, err := primitive.ObjectIDFromHex(req.CompanyID)
	if err != nil {
		s.log.WithError(apperrors.NewTenantIDInvalidError(req.CompanyID)).Warn("invalid company id", nil)
		writeJSON(w, http.StatusBadRequest, chatResponse{Reply: InvalidTenantReply})
		return
	}

	reply, err := s.svc.Chat(r.Context(), companyID, req.Message)
	if err != nil {
		s.log.WithError(err).Error("chat request failed", map[string]interface{}{
			"company_id": req.CompanyID,
		})
		status := http.StatusBadGateway
		if apperrors.IsTimeout(err) {
			status = http.StatusGatewayTimeout
		}
		writeJSON(w, status, errorResponse{Error: "failed to answer the question"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
