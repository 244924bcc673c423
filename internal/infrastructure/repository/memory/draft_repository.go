package memory

import (
	"context"
	"fmt"
	"sort"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
)

type DraftRepository struct {
	store *Store
}

func (r *DraftRepository) GetOrCreate(_ context.Context, candidate draft.Draft) (draft.Draft, error) {
	if candidate.ID == "" || candidate.SeasonID == "" {
		return draft.Draft{}, fmt.Errorf("draft id and season id are required")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if id, ok := r.store.draftBySeason[candidate.SeasonID]; ok {
		return r.store.drafts[id], nil
	}
	r.store.drafts[candidate.ID] = candidate
	r.store.draftBySeason[candidate.SeasonID] = candidate.ID
	return candidate, nil
}

func (r *DraftRepository) GetByID(_ context.Context, draftID string) (draft.Draft, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	d, ok := r.store.drafts[draftID]
	if !ok {
		return draft.Draft{}, false, nil
	}
	return d, true, nil
}

func (r *DraftRepository) GetBySeason(_ context.Context, seasonID string) (draft.Draft, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.draftBySeason[seasonID]
	if !ok {
		return draft.Draft{}, false, nil
	}
	return r.store.drafts[id], true, nil
}

func (r *DraftRepository) ListPicks(_ context.Context, draftID string) ([]draft.Pick, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clonePicks(r.store.picks[draftID]), nil
}

// ApplyPick serializes picks per draft with a keyed mutex, then commits the
// pick, roster entry and draft update under the store lock.
func (r *DraftRepository) ApplyPick(ctx context.Context, draftID string, fn draft.ApplyFunc) (draft.Transition, error) {
	unlock, err := r.store.draftLocks.Lock(ctx, draftID)
	if err != nil {
		return draft.Transition{}, fmt.Errorf("lock draft: %w", err)
	}
	defer unlock()

	r.store.mu.RLock()
	current, ok := r.store.drafts[draftID]
	picks := clonePicks(r.store.picks[draftID])
	r.store.mu.RUnlock()
	if !ok {
		return draft.Transition{}, crerr.Wrapf(draft.ErrNotFound, "draft %s", draftID)
	}

	transition, err := fn(current, picks)
	if err != nil {
		return draft.Transition{}, err
	}
	if err := ctx.Err(); err != nil {
		return draft.Transition{}, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.picks[draftID] {
		if p.CastawayID == transition.Pick.CastawayID {
			return draft.Transition{}, crerr.Wrapf(draft.ErrEntityTaken, "castaway %s", p.CastawayID)
		}
	}
	r.store.picks[draftID] = append(r.store.picks[draftID], transition.Pick)
	r.store.entries[transition.Entry.SeasonID] = append(r.store.entries[transition.Entry.SeasonID], transition.Entry)
	r.store.drafts[draftID] = transition.Draft

	return transition, nil
}

func clonePicks(in []draft.Pick) []draft.Pick {
	out := append([]draft.Pick(nil), in...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].PickNumber < out[j].PickNumber
	})
	return out
}

type RosterRepository struct {
	store *Store
}

func (r *RosterRepository) ListBySeason(_ context.Context, seasonID string) ([]roster.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]roster.Entry(nil), r.store.entries[seasonID]...), nil
}

func (r *RosterRepository) ListByParticipant(_ context.Context, seasonID, participantID string) ([]roster.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]roster.Entry, 0)
	for _, e := range r.store.entries[seasonID] {
		if e.ParticipantID == participantID {
			out = append(out, e)
		}
	}
	return out, nil
}
