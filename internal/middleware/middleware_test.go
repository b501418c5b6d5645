package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	valid string
}

func (s stubVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != s.valid {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "admin-1"}, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body["message"]
}

func TestRequireAuth(t *testing.T) {
	var gotClaims auth.Claims
	h := RequireAuth(stubVerifier{valid: "good"}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaims(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name   string
		header string
		status int
		msg    string
	}{
		{"missing", "", http.StatusUnauthorized, msgNoToken},
		{"basic scheme", "Basic abc", http.StatusUnauthorized, msgNoToken},
		{"bearer without token", "Bearer ", http.StatusUnauthorized, msgNoToken},
		{"invalid", "Bearer nope", http.StatusUnauthorized, msgInvalidToken},
		{"valid", "Bearer good", http.StatusNoContent, ""},
		{"valid lowercase scheme", "bearer good", http.StatusNoContent, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, decodeMessage(t, rec))
			} else {
				assert.Equal(t, "admin-1", gotClaims.UserID)
			}
		})
	}
}

func TestGetClaims_Absent(t *testing.T) {
	_, ok := GetClaims(context.Background())
	assert.False(t, ok)
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2, nil)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)

	rec := do("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.NotEmpty(t, decodeMessage(t, rec))

	// otra IP tiene su propio cupo
	assert.Equal(t, http.StatusOK, do("10.0.0.2").Code)

	// al minuto se repone un token
	now = now.Add(time.Minute)
	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	rl := NewRateLimiter(0, 0, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {})
	h := rl.Handler(next)

	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(10, 1, nil)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("a")
	now = now.Add(10 * time.Minute)
	rl.allow("b")

	assert.Equal(t, 1, rl.Cleanup(5*time.Minute))
	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "b")
}

func TestRequestLog_RecordsRoutePattern(t *testing.T) {
	var buf strings.Builder
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, App: "test", Output: &buf})
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(RequestLog(log, m))
	r.Get("/api/pets/{petID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pets/abc", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	assert.Contains(t, buf.String(), `"route":"/api/pets/{petID}"`)
	assert.Contains(t, buf.String(), `"status":404`)
	n, err := testutil.GatherAndCount(m.Registry, "pet_adoption_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
