package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	basecache "github.com/riskibarqy/castaway-league/internal/platform/cache"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

func newTestVerifier(t *testing.T, cfg Config) *Verifier {
	t.Helper()
	if cfg.Secret == "" {
		cfg.Secret = "test-secret"
	}
	v, err := NewVerifier(cfg, basecache.NewStore(time.Minute), logging.NewNop())
	require.NoError(t, err)
	return v
}

func TestVerifier_IssueAndVerify(t *testing.T) {
	v := newTestVerifier(t, Config{Issuer: "castaway", Audience: "api"})

	token, err := v.Issue("p1", "Ana", time.Hour)
	require.NoError(t, err)

	principal, err := v.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "p1", principal.ParticipantID)
	require.Equal(t, "Ana", principal.DisplayName)

	cached, err := v.VerifyAccessToken(context.Background(), " "+token+" ")
	require.NoError(t, err)
	require.Equal(t, principal, cached)
}

func TestVerifier_Rejects(t *testing.T) {
	v := newTestVerifier(t, Config{Issuer: "castaway"})
	other := newTestVerifier(t, Config{Secret: "other-secret", Issuer: "castaway"})
	wrongIssuer := newTestVerifier(t, Config{Issuer: "someone-else"})

	expired, err := v.Issue("p1", "", -time.Minute)
	require.NoError(t, err)
	foreign, err := other.Issue("p1", "", time.Hour)
	require.NoError(t, err)
	badIssuer, err := wrongIssuer.Issue("p1", "", time.Hour)
	require.NoError(t, err)
	noSubject, err := v.Issue("", "", time.Hour)
	require.NoError(t, err)
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "p1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: "  "},
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "wrong issuer", token: badIssuer},
		{name: "missing subject", token: noSubject},
		{name: "none algorithm", token: noneAlg},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.VerifyAccessToken(context.Background(), tc.token)
			require.ErrorIs(t, err, usecase.ErrUnauthorized)
		})
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier(Config{}, nil, nil)
	require.Error(t, err)
}
