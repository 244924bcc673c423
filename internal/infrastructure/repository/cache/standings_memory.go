package cache

import (
	"context"

	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	basecache "github.com/riskibarqy/castaway-league/internal/platform/cache"
)

const standingsKeyPrefix = "standings:"

// StandingsMemory keeps derived standings in process.
type StandingsMemory struct {
	store *basecache.Store
}

func NewStandingsMemory(store *basecache.Store) *StandingsMemory {
	return &StandingsMemory{store: store}
}

func (c *StandingsMemory) Get(ctx context.Context, seasonID string) ([]scoring.Standing, bool, error) {
	v, ok := c.store.Get(ctx, standingsKeyPrefix+seasonID)
	if !ok {
		return nil, false, nil
	}
	items, _ := v.([]scoring.Standing)
	return cloneStandings(items), true, nil
}

func (c *StandingsMemory) Set(ctx context.Context, seasonID string, standings []scoring.Standing) error {
	c.store.Set(ctx, standingsKeyPrefix+seasonID, cloneStandings(standings))
	return nil
}

func (c *StandingsMemory) Invalidate(ctx context.Context, seasonID string) error {
	c.store.Delete(ctx, standingsKeyPrefix+seasonID)
	return nil
}

func cloneStandings(items []scoring.Standing) []scoring.Standing {
	out := make([]scoring.Standing, len(items))
	for i, s := range items {
		s.Periods = append([]scoring.PeriodTotal(nil), s.Periods...)
		out[i] = s
	}
	return out
}
