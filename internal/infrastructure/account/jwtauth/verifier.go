package jwtauth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/riskibarqy/castaway-league/internal/domain/user"
	basecache "github.com/riskibarqy/castaway-league/internal/platform/cache"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

// Cached verifications expire with the token, never later than this.
const maxCachedTokenTTL = 5 * time.Minute

type Config struct {
	Secret   string
	Issuer   string
	Audience string
	Leeway   time.Duration
}

type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 bearer tokens issued for the league.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
	issuer string
	aud    string
	cache  *basecache.Store
	logger *logging.Logger
	now    func() time.Time
}

func NewVerifier(cfg Config, cache *basecache.Store, logger *logging.Logger) (*Verifier, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Verifier{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(opts...),
		issuer: cfg.Issuer,
		aud:    cfg.Audience,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}, nil
}

func (v *Verifier) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	key := "token:" + hashToken(token)
	if v.cache != nil {
		if cached, ok := v.cache.Get(ctx, key); ok {
			if principal, ok := cached.(user.Principal); ok {
				return principal, nil
			}
		}
	}

	claims := &Claims{}
	if _, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		v.logger.DebugContext(ctx, "access token rejected", "error", err)
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthorized, err)
	}

	subject := strings.TrimSpace(claims.Subject)
	if subject == "" {
		return user.Principal{}, fmt.Errorf("%w: token subject is empty", usecase.ErrUnauthorized)
	}

	principal := user.Principal{
		ParticipantID: subject,
		DisplayName:   claims.Name,
	}
	if v.cache != nil && claims.ExpiresAt != nil {
		ttl := claims.ExpiresAt.Sub(v.now())
		if ttl > maxCachedTokenTTL {
			ttl = maxCachedTokenTTL
		}
		if ttl > 0 {
			v.cache.SetWithTTL(ctx, key, principal, ttl)
		}
	}
	return principal, nil
}

// Issue signs a token for participantID. Used by the admin CLI and tests.
func (v *Verifier) Issue(participantID, name string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   participantID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if v.aud != "" {
		claims.Audience = jwt.ClaimStrings{v.aud}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
