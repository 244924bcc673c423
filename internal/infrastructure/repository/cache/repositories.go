package cache

import (
	"context"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	basecache "github.com/riskibarqy/castaway-league/internal/platform/cache"
)

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	key := "season:id:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return cachedSeasonByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}

	cached, _ := v.(cachedSeasonByID)
	return cached.value, cached.exists, nil
}

type cachedSeasonByID struct {
	value  season.Season
	exists bool
}

type CastawayRepository struct {
	next  castaway.Repository
	cache *basecache.Store
}

func NewCastawayRepository(next castaway.Repository, cache *basecache.Store) *CastawayRepository {
	return &CastawayRepository{next: next, cache: cache}
}

func (r *CastawayRepository) GetByID(ctx context.Context, castawayID string) (castaway.Castaway, bool, error) {
	key := "castaway:id:" + castawayID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, castawayID)
		if err != nil {
			return nil, err
		}
		return cachedCastawayByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return castaway.Castaway{}, false, err
	}

	cached, _ := v.(cachedCastawayByID)
	return cached.value, cached.exists, nil
}

func (r *CastawayRepository) ListBySeason(ctx context.Context, seasonID string) ([]castaway.Castaway, error) {
	key := "castaway:list:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]castaway.Castaway(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]castaway.Castaway)
	return append([]castaway.Castaway(nil), items...), nil
}

type cachedCastawayByID struct {
	value  castaway.Castaway
	exists bool
}

type PeriodRepository struct {
	next  period.Repository
	cache *basecache.Store
}

func NewPeriodRepository(next period.Repository, cache *basecache.Store) *PeriodRepository {
	return &PeriodRepository{next: next, cache: cache}
}

func (r *PeriodRepository) GetByID(ctx context.Context, periodID string) (period.Period, bool, error) {
	key := "period:id:" + periodID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, periodID)
		if err != nil {
			return nil, err
		}
		return cachedPeriodByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return period.Period{}, false, err
	}

	cached, _ := v.(cachedPeriodByID)
	return cached.value, cached.exists, nil
}

func (r *PeriodRepository) ListBySeason(ctx context.Context, seasonID string) ([]period.Period, error) {
	key := "period:list:" + seasonID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBySeason(ctx, seasonID)
		if err != nil {
			return nil, err
		}
		return append([]period.Period(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]period.Period)
	return append([]period.Period(nil), items...), nil
}

type cachedPeriodByID struct {
	value  period.Period
	exists bool
}
