package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
)

type ScoringRepository struct {
	store *Store
}

func (r *ScoringRepository) CreateEvent(_ context.Context, event scoring.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.events[event.ID]; exists {
		return fmt.Errorf("outcome event %s already exists", event.ID)
	}
	r.store.events[event.ID] = event
	return nil
}

func (r *ScoringRepository) GetEvent(_ context.Context, eventID string) (scoring.Event, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.events[eventID]
	return event, ok, nil
}

func (r *ScoringRepository) DeleteEvent(_ context.Context, eventID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.events, eventID)
	return nil
}

func (r *ScoringRepository) ListEvents(_ context.Context, seasonID, periodID string) ([]scoring.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.periodEvents(seasonID, periodID), nil
}

// ReconcilePeriod holds the period's keyed lock across the read and the
// replace so concurrent recalculations of one period apply in turn.
func (r *ScoringRepository) ReconcilePeriod(ctx context.Context, seasonID, periodID string, compute scoring.ComputeFunc) ([]scoring.PeriodScore, error) {
	unlock, err := r.store.periodLocks.Lock(ctx, seasonID+":"+periodID)
	if err != nil {
		return nil, fmt.Errorf("lock period: %w", err)
	}
	defer unlock()

	r.store.mu.RLock()
	events := r.store.periodEvents(seasonID, periodID)
	entries := append([]roster.Entry(nil), r.store.entries[seasonID]...)
	r.store.mu.RUnlock()

	scores, err := compute(events, entries)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for key, s := range r.store.scores {
		if s.SeasonID == seasonID && s.PeriodID == periodID {
			delete(r.store.scores, key)
		}
	}
	for _, s := range scores {
		r.store.scores[scoreKey(s.ParticipantID, s.SeasonID, s.PeriodID)] = s
	}
	return scores, nil
}

func (r *ScoringRepository) ListPeriodScores(_ context.Context, seasonID, periodID string) ([]scoring.PeriodScore, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]scoring.PeriodScore, 0)
	for _, s := range r.store.scores {
		if s.SeasonID == seasonID && s.PeriodID == periodID {
			out = append(out, s)
		}
	}
	sortScores(out)
	return out, nil
}

func (r *ScoringRepository) ListSeasonScores(_ context.Context, seasonID string) ([]scoring.PeriodScore, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]scoring.PeriodScore, 0)
	for _, s := range r.store.scores {
		if s.SeasonID == seasonID {
			out = append(out, s)
		}
	}
	sortScores(out)
	return out, nil
}

// periodEvents expects the caller to hold s.mu.
func (s *Store) periodEvents(seasonID, periodID string) []scoring.Event {
	out := make([]scoring.Event, 0)
	for _, e := range s.events {
		if e.SeasonID == seasonID && e.PeriodID == periodID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func scoreKey(participantID, seasonID, periodID string) string {
	return participantID + "::" + seasonID + "::" + periodID
}

func sortScores(items []scoring.PeriodScore) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].PeriodID != items[j].PeriodID {
			return items[i].PeriodID < items[j].PeriodID
		}
		return items[i].ParticipantID < items[j].ParticipantID
	})
}
