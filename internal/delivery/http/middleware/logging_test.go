package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordSink collects every log record the middleware emits.
type recordSink struct {
	records []slog.Record
}

func (s *recordSink) Enabled(context.Context, slog.Level) bool { return true }

func (s *recordSink) Handle(_ context.Context, r slog.Record) error {
	s.records = append(s.records, r.Clone())
	return nil
}

func (s *recordSink) WithAttrs([]slog.Attr) slog.Handler { return s }

func (s *recordSink) WithGroup(string) slog.Handler { return s }

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
		body   string
	}{
		{"list ok", http.MethodGet, "/orgs", http.StatusOK, `{"data":[]}`},
		{"created", http.MethodPost, "/auth/signup", http.StatusCreated, `{"data":{}}`},
		{"handler failure", http.MethodPost, "/orgs", http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordSink{}
			handler := LoggingMiddleware(slog.New(sink), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			}))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, httptest.NewRequest(tt.method, "http://test"+tt.path, nil))

			require.Equal(t, tt.status, rr.Code)
			require.Len(t, sink.records, 1)
			rec := sink.records[0]
			assert.Equal(t, "request", rec.Message)
			attrs := recordAttrs(rec)
			assert.Equal(t, tt.method, attrs["method"].String())
			assert.Equal(t, tt.path, attrs["path"].String())
			assert.Equal(t, int64(tt.status), attrs["status"].Int64())
			assert.Equal(t, int64(len(tt.body)), attrs["bytes"].Int64())
			assert.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
		})
	}
}

func TestLoggingMiddleware_default_status_is_200(t *testing.T) {
	sink := &recordSink{}
	handler := LoggingMiddleware(slog.New(sink), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "http://test/orgs", nil))

	require.Len(t, sink.records, 1)
	attrs := recordAttrs(sink.records[0])
	assert.Equal(t, int64(http.StatusOK), attrs["status"].Int64())
}
