package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
)

func newTestMiddleware(w io.Writer) *Middleware {
	return NewMiddleware(logger.New(w, "middleware-test", logger.LevelDebug))
}

func TestRequestID_Generated(t *testing.T) {
	m := newTestMiddleware(io.Discard)

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if seen == "" {
		t.Fatalf("request id not stored in context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response header %q, context %q", got, seen)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	m := newTestMiddleware(io.Discard)

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-42" {
		t.Fatalf("expected caller id, got %q", seen)
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	m := newTestMiddleware(&buf)

	h := m.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("scheduler exploded")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulations", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", rec.Code)
	}
	if rec.Header().Get("Connection") != "close" {
		t.Fatalf("connection must be closed after a panic")
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] == nil || strings.Contains(rec.Body.String(), "scheduler exploded") {
		t.Fatalf("panic value must stay out of the body: %v", body)
	}
	if !strings.Contains(buf.String(), "recovered from panic") || !strings.Contains(buf.String(), "scheduler exploded") {
		t.Fatalf("panic was not logged: %s", buf.String())
	}
}

func TestRecover_AfterHeaderWritten(t *testing.T) {
	m := newTestMiddleware(io.Discard)

	h := m.Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		panic("late failure")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/simulations", nil))

	if rec.Code != http.StatusCreated || rec.Body.Len() != 0 {
		t.Fatalf("nothing may be written after the status: %d %q", rec.Code, rec.Body.String())
	}
}

func TestLogging_RecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	m := newTestMiddleware(&buf)

	h := m.RequestID(m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest(http.MethodGet, "/simulations", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected start and end lines, got %d: %s", len(lines), buf.String())
	}

	var end map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if end["status"] != float64(http.StatusTeapot) || end["request_id"] != "req-7" {
		t.Fatalf("unexpected end line %v", end)
	}
}

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rw := newResponseWriter(httptest.NewRecorder())
	if again := newResponseWriter(rw); again != rw {
		t.Fatalf("wrapping twice must reuse the writer")
	}

	rw.Write([]byte("ok"))
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rw.statusCode)
	}
}

func TestMetrics_PassesThrough(t *testing.T) {
	m := newTestMiddleware(io.Discard)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /simulations/{simulation_id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	m.Metrics("simulation-service")(mux).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/simulations/abc", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
}

func TestLogging_ServerErrorAtWarn(t *testing.T) {
	var buf bytes.Buffer
	m := NewMiddleware(logger.New(&buf, "middleware-test", logger.LevelWarn))

	h := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("expected exactly one WARN line, got %q", buf.String())
	}
	if rec["level"] != "WARN" || rec["message"] != "request completed" {
		t.Fatalf("unexpected line %v", rec)
	}
}
