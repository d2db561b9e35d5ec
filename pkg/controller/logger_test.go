package controller_test

import (
	"brandkit/pkg/controller"
	"brandkit/pkg/logger"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remoteAddr: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remoteAddr: "not-an-addr", want: "not-an-addr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if tc.remoteAddr != "" {
				req.RemoteAddr = tc.remoteAddr
			}
			require.Equal(t, tc.want, controller.GetClientIP(req))
		})
	}
}

// observe runs h behind WithLogger with a request scoped observer logger.
func observe(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	req = req.WithContext(logger.WithLogger(context.Background(), zap.New(core)))

	rec := httptest.NewRecorder()
	controller.WithLogger(h).ServeHTTP(rec, req)

	return rec, logs
}

func TestWithLogger_RequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = controller.GetRequestID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec, _ := observe(t, next, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", rec.Header().Get(controller.RequestIDHeader))

	rec, _ = observe(t, next, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	require.Equal(t, seen, rec.Header().Get(controller.RequestIDHeader))
}

func TestWithLogger_RejectsUnsafeRequestID(t *testing.T) {
	for _, id := range []string{"has space", strings.Repeat("x", 129), "tab\there"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(controller.RequestIDHeader, id)
		rec, _ := observe(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}), req)

		got := rec.Header().Get(controller.RequestIDHeader)
		require.NotEmpty(t, got)
		require.NotEqual(t, id, got)
	}
}

func TestWithLogger_AccessLog(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/brands?x=1", nil)
	req.Header.Set(controller.RequestIDHeader, "req-1")
	_, logs := observe(t, next, req)

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	require.EqualValues(t, http.StatusOK, fields["status_code"])
	require.EqualValues(t, len(`{"success":true}`), fields["bytes"])
	require.Equal(t, "/v1/brands?x=1", fields["url"])
	require.Equal(t, http.MethodPost, fields["method"])
	require.Equal(t, "req-1", fields[string(controller.RequestIDKey)])
}

func TestWithLogger_ServerErrorsLogAtWarn(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.WriteHeader(http.StatusOK)
	})

	_, logs := observe(t, next, httptest.NewRequest(http.MethodGet, "/", nil))

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.EqualValues(t, http.StatusBadGateway, entries[0].ContextMap()["status_code"])
}
