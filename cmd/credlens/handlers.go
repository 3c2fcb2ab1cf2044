// cmd/credlens/handlers.go
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Server exposes the analysis pipeline over HTTP.
type Server struct {
	cfg      *Config
	pipeline *Pipeline
	history  *HistoryStore
	notifier *Notifier
	hub      *wsHub
	started  time.Time
}

// NewServer wires the HTTP layer around the pipeline.
func NewServer(cfg *Config, pipeline *Pipeline, history *HistoryStore, notifier *Notifier) *Server {
	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		history:  history,
		notifier: notifier,
		hub:      newWSHub(),
		started:  time.Now(),
	}
	pipeline.SetProgress(s.hub.Broadcast)
	return s
}

// Router builds the mux router with all API routes.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverMiddleware)

	// Method mismatches inside a PathPrefix subrouter fall through to
	// the 404 handler unless both routers answer them explicitly.
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.MethodNotAllowedHandler = methodNotAllowed

	api := r.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = methodNotAllowed
	api.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	api.HandleFunc("/history", s.handleHistory).Methods("GET")
	api.HandleFunc("/history/{id}", s.handleHistoryItem).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	api.HandleFunc("/ws", s.hub.Handle)

	return r
}

// handleAnalyze runs one analysis. Input and fetch failures come back
// as 200 with verdict=ERROR; only missing content is a 400.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.InputType == "" {
		req.InputType = InputText
	}

	result, err := s.pipeline.Analyze(r.Context(), req)
	if err != nil {
		Logger().Error("Pipeline failure: %v", err)
		respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	if result.Verdict != VerdictError {
		if err := s.history.Append(*result); err != nil {
			Logger().Warning("Failed to persist history record: %v", err)
		}
		s.notifier.MaybeAlert(result)
	}

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.history.List())
}

func (s *Server) handleHistoryItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, ok := s.history.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "no such analysis")
		return
	}
	respondJSON(w, http.StatusOK, record)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": s.cfg.Version,
		"uptime":  time.Since(s.started).String(),
		"engines": map[string]bool{
			"factCheck":  s.cfg.GoogleFactCheckAPIKey != "",
			"newsSearch": s.cfg.NewsAPIKey != "",
			"inference":  s.cfg.HFAPIKey != "",
			"completion": s.cfg.OpenAIAPIKey != "",
			"grammar":    s.cfg.GrammarAPIKey != "",
			"authority":  s.cfg.DomainAuthorityAPIKey != "",
		},
	})
}

// recoverMiddleware converts panics into structured 500 responses; the
// caller never sees a stack trace.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				Logger().Error("Panic serving %s: %v", r.URL.Path, rec)
				respondError(w, http.StatusInternalServerError, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		Logger().Error("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	Logger().Info("Listening on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv.ListenAndServe()
}
