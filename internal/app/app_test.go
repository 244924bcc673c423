package app

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/config"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		HTTPAddr:       ":0",
		StoreDriver:    config.StoreMemory,
		SeedDemoData:   true,
		CacheEnabled:   true,
		CacheTTL:       time.Minute,
		StandingsCache: config.StandingsCacheMemory,
		JWTSecret:      "test-secret",
		JWTLeeway:      time.Second,
		RecalcWorkers:  2,
	}
}

func TestBuild_MemoryStoreServesDemoSeason(t *testing.T) {
	ctx := context.Background()
	c, err := Build(ctx, memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer c.Close()

	board, err := c.Draft.GetOrCreateDraft(ctx, memory.SeasonIDDemo, "ana")
	require.NoError(t, err)
	require.Equal(t, []string{"ana", "ben", "cam", "dee"}, board.ParticipantIDs)
	require.Len(t, board.Available, 18)
	require.True(t, board.IsMyTurn)

	token, err := c.Verifier.Issue("ben", "Ben", time.Hour)
	require.NoError(t, err)
	principal, err := c.Verifier.VerifyAccessToken(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "ben", principal.ParticipantID)
}

func TestBuild_RedisStandingsCache(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := memoryConfig()
	cfg.StandingsCache = config.StandingsCacheRedis
	cfg.RedisAddr = mr.Addr()
	cfg.RedisKeyPrefix = "test"
	cfg.RedisCircuitEnabled = true
	cfg.RedisCircuitFailureCount = 3
	cfg.RedisCircuitOpenTimeout = time.Second
	cfg.RedisCircuitHalfOpenMaxReq = 1

	ctx := context.Background()
	c, err := Build(ctx, cfg, logging.NewNop())
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Scoring.Standings(ctx, memory.SeasonIDDemo)
	require.NoError(t, err)
	require.True(t, mr.Exists("test:standings:"+memory.SeasonIDDemo))
}

func TestBuild_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := memoryConfig()
	cfg.StandingsCache = config.StandingsCacheRedis
	cfg.RedisAddr = addr

	_, err := Build(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	_, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewHTTPServer_Memory(t *testing.T) {
	srv, cleanup, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, ":0", srv.Addr)
	require.NotNil(t, srv.Handler)
}
