package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/platform/resilience"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

type errorEnvelope struct {
	APIVersion string `json:"apiVersion"`
	Data       any    `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Errors  []struct {
			Domain string `json:"domain"`
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var body errorEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeSuccess(context.Background(), rec, http.StatusCreated, map[string]string{"pick_id": "p-1"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "2.0", body.APIVersion)
	assert.Equal(t, map[string]any{"pick_id": "p-1"}, body.Data)
	assert.Nil(t, body.Error)
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, fmt.Errorf("apply pick: %w", draft.ErrOutOfTurn))

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FAILED_PRECONDITION", body.Error.Status)
	require.Len(t, body.Error.Errors, 1)
	assert.Equal(t, "castaway-league", body.Error.Errors[0].Domain)
	assert.Equal(t, "outOfTurn", body.Error.Errors[0].Reason)
	assert.Contains(t, body.Error.Message, "apply pick")
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(context.Background(), rec, errors.New("pq: password authentication failed for user castaway"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestMapError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantReason string
	}{
		{err: usecase.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantReason: "invalidInput"},
		{err: usecase.ErrNotFound, wantStatus: http.StatusNotFound, wantReason: "notFound"},
		{err: usecase.ErrUnauthorized, wantStatus: http.StatusUnauthorized, wantReason: "unauthorized"},
		{err: usecase.ErrForbidden, wantStatus: http.StatusForbidden, wantReason: "forbidden"},
		{err: usecase.ErrDependencyUnavailable, wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{err: resilience.ErrCircuitOpen, wantStatus: http.StatusServiceUnavailable, wantReason: "dependencyUnavailable"},
		{err: draft.ErrEntityTaken, wantStatus: http.StatusConflict, wantReason: "castawayTaken"},
		{err: draft.ErrRosterFull, wantStatus: http.StatusConflict, wantReason: "rosterFull"},
		{err: draft.ErrAlreadyCompleted, wantStatus: http.StatusConflict, wantReason: "draftCompleted"},
		{err: period.ErrSpoilerLocked, wantStatus: http.StatusLocked, wantReason: "spoilerLocked"},
		{err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantReason: "internalError"},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			got := mapError(fmt.Errorf("wrapped: %w", tc.err))
			assert.Equal(t, tc.wantStatus, got.HTTPStatus)
			assert.Equal(t, tc.wantReason, got.Reason)
		})
	}
}
