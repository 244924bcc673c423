package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func (r *SeasonRepository) GetByID(_ context.Context, seasonID string) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ss, ok := r.store.seasons[seasonID]
	if !ok {
		return season.Season{}, false, nil
	}

	return cloneSeason(ss), true, nil
}

type CastawayRepository struct {
	store *Store
}

func (r *CastawayRepository) GetByID(_ context.Context, castawayID string) (castaway.Castaway, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.castaways[castawayID]
	if !ok {
		return castaway.Castaway{}, false, nil
	}

	return c, true, nil
}

func (r *CastawayRepository) ListBySeason(_ context.Context, seasonID string) ([]castaway.Castaway, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]castaway.Castaway, 0)
	for _, c := range r.store.castaways {
		if c.SeasonID == seasonID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

type PeriodRepository struct {
	store *Store
}

func (r *PeriodRepository) GetByID(_ context.Context, periodID string) (period.Period, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.periods[periodID]
	if !ok {
		return period.Period{}, false, nil
	}

	return p, true, nil
}

func (r *PeriodRepository) ListBySeason(_ context.Context, seasonID string) ([]period.Period, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]period.Period, 0)
	for _, p := range r.store.periods {
		if p.SeasonID == seasonID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number < out[j].Number
	})

	return out, nil
}
