package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
	"github.com/riskibarqy/castaway-league/internal/platform/resilience"
)

const defaultStandingsTTL = 10 * time.Minute

type RedisConfig struct {
	Client    *redis.Client
	KeyPrefix string
	TTL       time.Duration
	Breaker   resilience.CircuitBreakerConfig
	Logger    *logging.Logger
}

// StandingsRedis shares derived standings between API replicas.
type StandingsRedis struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	breaker *resilience.CircuitBreaker
}

func NewStandingsRedis(ctx context.Context, cfg *RedisConfig) (*StandingsRedis, error) {
	if cfg == nil {
		return nil, errors.New("redis standings config is required")
	}
	if cfg.Client == nil {
		return nil, errors.New("redis client is required")
	}
	if err := cfg.Client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultStandingsTTL
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "castaway"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	out := &StandingsRedis{
		client: cfg.Client,
		prefix: prefix + ":" + standingsKeyPrefix,
		ttl:    ttl,
	}
	if cfg.Breaker.Enabled {
		out.breaker = resilience.NewCircuitBreaker("redis-standings", cfg.Breaker,
			resilience.WithStateListener(func(name string, from, to resilience.CircuitState) {
				logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
			}),
		)
	}
	return out, nil
}

type standingRecord struct {
	Rank          int            `json:"rank"`
	ParticipantID string         `json:"participant_id"`
	Total         int            `json:"total"`
	Periods       []periodRecord `json:"periods"`
}

type periodRecord struct {
	PeriodID     string `json:"period_id"`
	PeriodNumber int    `json:"period_number"`
	Score        int    `json:"score"`
}

func (c *StandingsRedis) Get(ctx context.Context, seasonID string) ([]scoring.Standing, bool, error) {
	var raw []byte
	err := c.execute(func() error {
		var err error
		raw, err = c.client.Get(ctx, c.key(seasonID)).Bytes()
		return err
	}, redis.Nil)
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached standings: %w", err)
	}

	var records []standingRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, false, fmt.Errorf("decode cached standings: %w", err)
	}

	out := make([]scoring.Standing, 0, len(records))
	for _, r := range records {
		periods := make([]scoring.PeriodTotal, 0, len(r.Periods))
		for _, p := range r.Periods {
			periods = append(periods, scoring.PeriodTotal{PeriodID: p.PeriodID, PeriodNumber: p.PeriodNumber, Score: p.Score})
		}
		out = append(out, scoring.Standing{
			Rank:          r.Rank,
			ParticipantID: r.ParticipantID,
			Total:         r.Total,
			Periods:       periods,
		})
	}
	return out, true, nil
}

func (c *StandingsRedis) Set(ctx context.Context, seasonID string, standings []scoring.Standing) error {
	records := make([]standingRecord, 0, len(standings))
	for _, s := range standings {
		periods := make([]periodRecord, 0, len(s.Periods))
		for _, p := range s.Periods {
			periods = append(periods, periodRecord{PeriodID: p.PeriodID, PeriodNumber: p.PeriodNumber, Score: p.Score})
		}
		records = append(records, standingRecord{
			Rank:          s.Rank,
			ParticipantID: s.ParticipantID,
			Total:         s.Total,
			Periods:       periods,
		})
	}

	raw, err := sonic.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode standings: %w", err)
	}
	if err := c.execute(func() error {
		return c.client.Set(ctx, c.key(seasonID), raw, c.ttl).Err()
	}); err != nil {
		return fmt.Errorf("set cached standings: %w", err)
	}
	return nil
}

func (c *StandingsRedis) Invalidate(ctx context.Context, seasonID string) error {
	if err := c.execute(func() error {
		return c.client.Del(ctx, c.key(seasonID)).Err()
	}); err != nil {
		return fmt.Errorf("invalidate cached standings: %w", err)
	}
	return nil
}

func (c *StandingsRedis) key(seasonID string) string {
	return c.prefix + seasonID
}

func (c *StandingsRedis) execute(fn func() error, ignore ...error) error {
	if c.breaker == nil {
		return fn()
	}
	return c.breaker.Execute(fn, ignore...)
}
