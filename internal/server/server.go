// Package server exposes the translation pipeline over HTTP and
// WebSocket.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/normanking/signavatar/internal/bus"
	"github.com/normanking/signavatar/internal/config"
	"github.com/normanking/signavatar/internal/logging"
	"github.com/normanking/signavatar/internal/pipeline"
)

// Server hosts the REST API and the animation stream.
type Server struct {
	cfg      config.ServerConfig
	pipe     *pipeline.Pipeline
	events   *bus.EventBus
	appLog   *logging.Logger
	logger   zerolog.Logger
	httpSrv  *http.Server
	streamer *Streamer
}

// New builds the server around an assembled pipeline. appLog may be
// nil; the logs endpoint then returns an empty list.
func New(cfg config.ServerConfig, pipe *pipeline.Pipeline, events *bus.EventBus, appLog *logging.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		pipe:   pipe,
		events: events,
		appLog: appLog,
		logger: log.With().Str("component", "server").Logger(),
	}
	s.streamer = NewStreamer(pipe, events)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/signs", s.handleSigns)
	mux.HandleFunc("GET /api/signs/{token}", s.handleSign)
	mux.HandleFunc("POST /api/translate", s.handleTranslate)
	mux.HandleFunc("GET /api/logs", s.handleLogs)
	mux.HandleFunc("GET /ws/animate", s.streamer.HandleAnimate)

	s.httpSrv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.httpSrv.Addr).Msg("server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains connections within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("server shutting down")
	return s.httpSrv.Shutdown(ctx)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"signs":  s.pipe.Repository().Len(),
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSigns(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  s.pipe.Repository().Len(),
		"tokens": s.pipe.Repository().Tokens(),
	})
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")
	repo := s.pipe.Repository()
	if !repo.Contains(token) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown sign token"})
		return
	}
	writeJSON(w, http.StatusOK, repo.Get(token))
}

type translateRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	// The pipeline treats empty text as a valid no-op translation; the
	// API rejects it so clients learn they sent nothing.
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "empty text"})
		return
	}
	if s.cfg.MaxTextLength > 0 && len(req.Text) > s.cfg.MaxTextLength {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "text too long"})
		return
	}

	result, err := s.pipe.Translate(r.Context(), req.Text)
	if err != nil {
		s.logger.Error().Err(err).Msg("translate failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "translation failed"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &limit); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
	}
	entries := []logging.LogEntry{}
	if s.appLog != nil {
		entries = s.appLog.GetHistory(limit)
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}
