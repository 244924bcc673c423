package memory

import (
	"sync"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	"github.com/riskibarqy/castaway-league/internal/platform/resilience"
)

// Store keeps every aggregate behind one lock so a pick or a reconciliation
// commits all of its rows at once. Repositories are thin views over it.
type Store struct {
	mu sync.RWMutex

	leagues   map[string]league.League
	members   map[string][]league.Membership
	seasons   map[string]season.Season
	castaways map[string]castaway.Castaway
	periods   map[string]period.Period

	drafts        map[string]draft.Draft
	draftBySeason map[string]string
	picks         map[string][]draft.Pick
	entries       map[string][]roster.Entry

	events map[string]scoring.Event
	scores map[string]scoring.PeriodScore

	draftLocks  resilience.KeyedMutex
	periodLocks resilience.KeyedMutex
}

func NewStore() *Store {
	return &Store{
		leagues:       make(map[string]league.League),
		members:       make(map[string][]league.Membership),
		seasons:       make(map[string]season.Season),
		castaways:     make(map[string]castaway.Castaway),
		periods:       make(map[string]period.Period),
		drafts:        make(map[string]draft.Draft),
		draftBySeason: make(map[string]string),
		picks:         make(map[string][]draft.Pick),
		entries:       make(map[string][]roster.Entry),
		events:        make(map[string]scoring.Event),
		scores:        make(map[string]scoring.PeriodScore),
	}
}

// PutLeague stores a league with its memberships in join order.
func (s *Store) PutLeague(l league.League, members ...league.Membership) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leagues[l.ID] = l
	s.members[l.ID] = append([]league.Membership(nil), members...)
}

func (s *Store) PutSeason(ss season.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seasons[ss.ID] = cloneSeason(ss)
}

func (s *Store) PutCastaways(items ...castaway.Castaway) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range items {
		s.castaways[c.ID] = c
	}
}

func (s *Store) PutPeriods(items ...period.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range items {
		s.periods[p.ID] = p
	}
}

// PutRosterEntries adds ownership outside of a draft, e.g. for seeding.
func (s *Store) PutRosterEntries(items ...roster.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range items {
		s.entries[e.SeasonID] = append(s.entries[e.SeasonID], e)
	}
}

func (s *Store) Leagues() *LeagueRepository {
	return &LeagueRepository{store: s}
}

func (s *Store) Seasons() *SeasonRepository {
	return &SeasonRepository{store: s}
}

func (s *Store) Castaways() *CastawayRepository {
	return &CastawayRepository{store: s}
}

func (s *Store) Periods() *PeriodRepository {
	return &PeriodRepository{store: s}
}

func (s *Store) Drafts() *DraftRepository {
	return &DraftRepository{store: s}
}

func (s *Store) Rosters() *RosterRepository {
	return &RosterRepository{store: s}
}

func (s *Store) Scoring() *ScoringRepository {
	return &ScoringRepository{store: s}
}

func cloneSeason(ss season.Season) season.Season {
	copied := ss
	if ss.ScoringOverride != nil {
		copied.ScoringOverride = make(scoring.Override, len(ss.ScoringOverride))
		for k, v := range ss.ScoringOverride {
			copied.ScoringOverride[k] = v
		}
	}
	return copied
}
