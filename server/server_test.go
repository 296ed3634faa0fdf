package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/sat8bit/cheatsheet/catalog"
	"github.com/sat8bit/cheatsheet/config"
	"github.com/sat8bit/cheatsheet/renderer"
	"github.com/sat8bit/cheatsheet/topic"
)

// chroma の正規表現エンジン (regexp2) はプロセス共通の時計ゴルーチンを持つ
var ignoreRegexpClock = goleak.IgnoreAnyFunction("github.com/dlclark/regexp2.runClock")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, ignoreRegexpClock)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cat, err := catalog.NewEmbedded()
	require.NoError(t, err)

	cfg := config.Default()
	s, err := New(cat, renderer.Page{Title: cfg.Title, HTMLTitle: cfg.HTMLTitle, Author: "Vikrant"}, cfg.Server)
	require.NoError(t, err)
	return s
}

func serve(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestPage(t *testing.T) {
	rec := serve(t, newTestServer(t), http.MethodGet, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Equal(t, 12, strings.Count(body, `<details class="expander">`))
	assert.Contains(t, body, `id="bit-manipulation"`)
}

func TestTopics(t *testing.T) {
	rec := serve(t, newTestServer(t), http.MethodGet, "/api/topics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []*topic.Topic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 12)
	assert.Equal(t, "Arrays", got[0].Title)
	assert.Len(t, got[0].Differences, 4)
	assert.Equal(t, "Bit Manipulation", got[11].Title)
}

func TestTopicBySlug(t *testing.T) {
	s := newTestServer(t)

	rec := serve(t, s, http.MethodGet, "/api/topics/hashsets-hashtables")
	require.Equal(t, http.StatusOK, rec.Code)
	var got topic.Topic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "HashSets/HashTables", got.Title)

	rec = serve(t, s, http.MethodGet, "/api/topics/red-black-trees")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "topic not found")
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t)

	rec := serve(t, s, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	assert.Equal(t, http.StatusOK, serve(t, s, http.MethodHead, "/").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, s, http.MethodGet, "/missing").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, s, http.MethodPost, "/").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, s, http.MethodDelete, "/api/topics").Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t)
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent(), ignoreRegexpClock)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	transport := &http.Transport{DisableKeepAlives: true}
	client := &http.Client{Transport: transport, Timeout: 5 * time.Second}
	defer transport.CloseIdleConnections()

	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	s := newTestServer(t)
	s.cfg.Addr = "256.0.0.1:bad"
	err := s.Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
