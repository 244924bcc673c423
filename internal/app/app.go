package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/castaway-league/internal/config"
	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/account/jwtauth"
	cacherepo "github.com/riskibarqy/castaway-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/castaway-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/castaway-league/internal/platform/cache"
	idgen "github.com/riskibarqy/castaway-league/internal/platform/id"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
	"github.com/riskibarqy/castaway-league/internal/platform/resilience"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

// Container holds the wired services shared by the HTTP server and the CLI.
type Container struct {
	Draft    *usecase.DraftService
	Scoring  *usecase.ScoringService
	Access   *usecase.AccessService
	Verifier *jwtauth.Verifier

	closers []func() error
}

type repositories struct {
	leagues   league.Repository
	seasons   season.Repository
	castaways castaway.Repository
	periods   period.Repository
	drafts    draft.Repository
	rosters   roster.Repository
	scoring   scoring.Repository
}

// Build wires repositories, caches and services from configuration.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	c := &Container{}
	repos, err := c.openRepositories(ctx, cfg, logger)
	if err != nil {
		c.Close()
		return nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, store)
		repos.castaways = cacherepo.NewCastawayRepository(repos.castaways, store)
		repos.periods = cacherepo.NewPeriodRepository(repos.periods, store)
	}

	standings, err := c.openStandingsCache(ctx, cfg, logger)
	if err != nil {
		c.Close()
		return nil, err
	}

	verifier, err := jwtauth.NewVerifier(jwtauth.Config{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		Leeway:   cfg.JWTLeeway,
	}, basecache.NewStore(cfg.CacheTTL), logger.Named("jwtauth"))
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("build token verifier: %w", err)
	}

	ids := idgen.NewUUIDGenerator()
	c.Verifier = verifier
	c.Draft = usecase.NewDraftService(
		repos.seasons,
		repos.leagues,
		repos.castaways,
		repos.drafts,
		repos.rosters,
		ids,
		logger.Named("draft"),
	)
	c.Scoring = usecase.NewScoringService(
		repos.seasons,
		repos.periods,
		repos.castaways,
		repos.scoring,
		standings,
		ids,
		logger.Named("scoring"),
		cfg.RecalcWorkers,
	)
	c.Access = usecase.NewAccessService(repos.leagues, repos.seasons, repos.drafts)

	return c, nil
}

// Close releases database and redis connections in reverse open order.
func (c *Container) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

func (c *Container) openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.StoreDriver != config.StorePostgres {
		store := memory.NewStore()
		if cfg.SeedDemoData {
			store.Load(memory.DemoDataset(demoFirstRelease(time.Now())))
			logger.Info("memory store seeded", "league_id", memory.LeagueIDDemo, "season_id", memory.SeasonIDDemo)
		}
		return repositories{
			leagues:   store.Leagues(),
			seasons:   store.Seasons(),
			castaways: store.Castaways(),
			periods:   store.Periods(),
			drafts:    store.Drafts(),
			rosters:   store.Rosters(),
			scoring:   store.Scoring(),
		}, nil
	}

	if cfg.DBAutoMigrate {
		if err := MigrateUp(cfg.DBURL, logger); err != nil {
			return repositories{}, err
		}
	}

	db, err := OpenDB(ctx, cfg)
	if err != nil {
		return repositories{}, err
	}
	c.closers = append(c.closers, db.Close)
	logger.Info("postgres connected", "dsn", redactDSN(cfg.DBURL))

	if cfg.SeedDemoData {
		if err := postgres.BootstrapSeed(ctx, db, memory.DemoDataset(demoFirstRelease(time.Now()))); err != nil {
			return repositories{}, fmt.Errorf("seed demo data: %w", err)
		}
	}

	return repositories{
		leagues:   postgres.NewLeagueRepository(db),
		seasons:   postgres.NewSeasonRepository(db),
		castaways: postgres.NewCastawayRepository(db),
		periods:   postgres.NewPeriodRepository(db),
		drafts:    postgres.NewDraftRepository(db),
		rosters:   postgres.NewRosterRepository(db),
		scoring:   postgres.NewScoringRepository(db),
	}, nil
}

func (c *Container) openStandingsCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (scoring.StandingsCache, error) {
	if cfg.StandingsCache != config.StandingsCacheRedis {
		return cacherepo.NewStandingsMemory(basecache.NewStore(cfg.CacheTTL)), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	c.closers = append(c.closers, client.Close)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	standings, err := cacherepo.NewStandingsRedis(pingCtx, &cacherepo.RedisConfig{
		Client:    client,
		KeyPrefix: cfg.RedisKeyPrefix,
		TTL:       cfg.CacheTTL,
		Breaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.RedisCircuitEnabled,
			FailureThreshold: cfg.RedisCircuitFailureCount,
			OpenTimeout:      cfg.RedisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.RedisCircuitHalfOpenMaxReq,
		},
		Logger: logger.Named("standings"),
	})
	if err != nil {
		return nil, fmt.Errorf("build redis standings cache: %w", err)
	}
	logger.Info("redis standings cache enabled", "addr", cfg.RedisAddr, "db", cfg.RedisDB)

	return standings, nil
}

// NewHTTPServer builds the API server. The returned cleanup closes the
// connections opened while wiring.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(c.Draft, c.Scoring, c.Access, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, c.Verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	cleanup := func() {
		if err := c.Close(); err != nil {
			logger.Warn("close app resources failed", "error", err)
		}
	}

	return server, cleanup, nil
}

// demoFirstRelease puts the demo's first episode one day in the past so a
// fresh instance has one released period and later ones still spoiler locked.
func demoFirstRelease(now time.Time) time.Time {
	return now.UTC().Truncate(time.Hour).Add(-24 * time.Hour)
}
