package memory

import (
	"context"

	"github.com/riskibarqy/castaway-league/internal/domain/league"
)

type LeagueRepository struct {
	store *Store
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.leagues[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) ListMembers(_ context.Context, leagueID string) ([]league.Membership, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]league.Membership(nil), r.store.members[leagueID]...), nil
}

func (r *LeagueRepository) GetMembership(_ context.Context, leagueID, participantID string) (league.Membership, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.members[leagueID] {
		if m.ParticipantID == participantID {
			return m, true, nil
		}
	}

	return league.Membership{}, false, nil
}
