// Package server は、チートシートを1枚の Web ページと小さな JSON API として配信します。
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sat8bit/cheatsheet/catalog"
	"github.com/sat8bit/cheatsheet/config"
	"github.com/sat8bit/cheatsheet/renderer"
	"github.com/sat8bit/cheatsheet/topic"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg    config.ServerConfig
	page   []byte
	topics []*topic.Topic
	bySlug map[string]*topic.Topic
	mux    *http.ServeMux
}

// New は、ページを一度だけ事前に描画します。カタログは構築後に変わりません。
func New(cat *catalog.Catalog, page renderer.Page, cfg config.ServerConfig) (*Server, error) {
	topics := cat.GetAll()

	var buf bytes.Buffer
	if err := renderer.WriteHTML(&buf, page, topics); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		page:   buf.Bytes(),
		topics: topics,
		bySlug: make(map[string]*topic.Topic, len(topics)),
		mux:    http.NewServeMux(),
	}
	for _, t := range topics {
		s.bySlug[renderer.Slug(t.Title)] = t
	}

	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("GET /api/topics", s.handleTopics)
	s.mux.HandleFunc("GET /api/topics/{slug}", s.handleTopic)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// Run は、設定のアドレスで ctx が終わるまで待ち受けます。
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve は、ln で配信し、ctx が終わったら graceful に停止します。
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Serve(ln)
	}()
	slog.Info("Server listening", "addr", ln.Addr().String(), "topics", len(s.topics))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutdown signal received")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("http shutdown error: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.page)
}

func (s *Server) handleTopics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.topics)
}

func (s *Server) handleTopic(w http.ResponseWriter, r *http.Request) {
	t, ok := s.bySlug[r.PathValue("slug")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "topic not found"})
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
