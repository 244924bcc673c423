package httpapi

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/domain/user"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCORS(t *testing.T) {
	const origin = "https://castaway-league.example.com"

	t.Run("configured origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seasons/s1/standings", nil)
		req.Header.Set("Origin", origin)

		rec := serve(CORS([]string{" " + origin + " "}, okHandler), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))
		assert.Equal(t, requestIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("wildcard preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/drafts/d1/picks", nil)
		req.Header.Set("Origin", origin)

		rec := serve(CORS([]string{"*"}, okHandler), req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Vary"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/seasons/s1/standings", nil)
		req.Header.Set("Origin", "https://not-allowed.example.com")

		rec := serve(CORS([]string{origin}, okHandler), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("no origin header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/seasons/s1/standings", nil)
		rec := serve(CORS([]string{"*"}, okHandler), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /HEALTHZ "} {
		assert.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/seasons/s1/draft", "/v1/drafts/d1/picks", "/"} {
		assert.True(t, shouldTraceRequest(path), path)
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc.def", want: "abc.def", ok: true},
		{header: "  bearer   abc  ", want: "abc", ok: true},
		{header: "", ok: false},
		{header: "Bearer", ok: false},
		{header: "Bearer   ", ok: false},
		{header: "Basic dXNlcjpwYXNz", ok: false},
	}

	for _, tt := range tests {
		got, err := bearerToken(tt.header)
		if !tt.ok {
			require.ErrorIs(t, err, usecase.ErrUnauthorized, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}

type stubVerifier struct {
	principal user.Principal
	err       error
	gotToken  string
}

func (v *stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	v.gotToken = token
	return v.principal, v.err
}

func TestRequireAuth(t *testing.T) {
	var seen user.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	verifier := &stubVerifier{principal: user.Principal{ParticipantID: "p1", DisplayName: "Ana"}}
	req := httptest.NewRequest(http.MethodGet, "/v1/seasons/s1/draft", nil)
	req.Header.Set("Authorization", "Bearer tok-1")

	rec := serve(RequireAuth(verifier, next), req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-1", verifier.gotToken)
	assert.Equal(t, "p1", seen.ParticipantID)

	verifier.err = errors.Join(usecase.ErrUnauthorized, errors.New("expired"))
	rec = serve(RequireAuth(verifier, next), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-42")
	rec := serve(RequestID(next), req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, strings.Repeat("x", 200))
	rec = serve(RequestID(next), req)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(requestIDHeader))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, sonic.Unmarshal(sc.Bytes(), &line))
		out = append(out, line)
	}
	return out
}

func TestRequestLogging_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{status: http.StatusOK, level: "INFO"},
		{status: http.StatusConflict, level: "WARN"},
		{status: http.StatusServiceUnavailable, level: "ERROR"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger := logging.NewJSONWriter(logging.LevelDebug, &buf)
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tt.status)
			_, _ = w.Write([]byte("body"))
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/drafts/d1/picks", nil)
		req.Header.Set(requestIDHeader, "req-7")
		serve(RequestID(RequestLogging(logger, next)), req)

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		line := lines[0]
		assert.Equal(t, tt.level, line["level"])
		assert.Equal(t, "http request", line["msg"])
		assert.EqualValues(t, tt.status, line["status"])
		assert.EqualValues(t, 4, line["bytes"])
		assert.Equal(t, "req-7", line["request_id"])
		assert.Equal(t, "/v1/drafts/d1/picks", line["route"])
	}
}

func TestRecoverPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewJSONWriter(logging.LevelInfo, &buf)
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("tribal council exploded")
	})

	rec := serve(recoverPanic(logger, boom), httptest.NewRequest(http.MethodGet, "/v1/seasons/s1/draft", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "exploded")
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "panic recovered", lines[0]["msg"])
	assert.Equal(t, "tribal council exploded", lines[0]["panic"])
}
