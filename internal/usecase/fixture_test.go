package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	cacherepo "github.com/riskibarqy/castaway-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/castaway-league/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/castaway-league/internal/platform/cache"
	"github.com/riskibarqy/castaway-league/internal/platform/id"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

var fixtureNow = time.Date(2026, 5, 6, 12, 0, 0, 0, time.UTC)

type serviceFixture struct {
	store   *memory.Store
	scoring *ScoringService
	draft   *DraftService
	access  *AccessService
}

// newServiceFixture seeds league l1 with members p1, p2, p3 in join order and
// snake season s1 (two castaways each, spoiler lock on). Periods: e1 is
// released, e2 is upcoming, e3 is upcoming but unlocked by override. Season
// s2 holds castaway x1 and period z1.
func newServiceFixture(t *testing.T, opts ...func(*season.Season)) serviceFixture {
	t.Helper()

	store := memory.NewStore()
	joined := fixtureNow.Add(-30 * 24 * time.Hour)
	store.PutLeague(league.League{ID: "l1", Name: "Tribal Council", CreatedAt: joined},
		league.Membership{LeagueID: "l1", ParticipantID: "p1", DisplayName: "P1", Role: league.RoleCommissioner, JoinedAt: joined},
		league.Membership{LeagueID: "l1", ParticipantID: "p2", DisplayName: "P2", Role: league.RoleMember, JoinedAt: joined.Add(time.Minute)},
		league.Membership{LeagueID: "l1", ParticipantID: "p3", DisplayName: "P3", Role: league.RoleMember, JoinedAt: joined.Add(2 * time.Minute)},
	)

	ss := season.Season{
		ID:                 "s1",
		LeagueID:           "l1",
		Name:               "Season One",
		RosterSize:         2,
		DraftStyle:         draft.StyleSnake,
		SpoilerLockEnabled: true,
	}
	for _, opt := range opts {
		opt(&ss)
	}
	store.PutSeason(ss.WithDefaults())
	store.PutSeason(season.Season{ID: "s2", LeagueID: "l1", Name: "Season Two"}.WithDefaults())

	for i := 1; i <= 6; i++ {
		store.PutCastaways(castaway.Castaway{ID: fmt.Sprintf("c%d", i), SeasonID: "s1", Name: fmt.Sprintf("Castaway %d", i)})
	}
	store.PutCastaways(castaway.Castaway{ID: "x1", SeasonID: "s2", Name: "Elsewhere"})

	store.PutPeriods(
		period.Period{ID: "e1", SeasonID: "s1", Number: 1, Name: "Episode 1", ReleaseAt: fixtureNow.Add(-48 * time.Hour)},
		period.Period{ID: "e2", SeasonID: "s1", Number: 2, Name: "Episode 2", ReleaseAt: fixtureNow.Add(5 * 24 * time.Hour)},
		period.Period{ID: "e3", SeasonID: "s1", Number: 3, Name: "Episode 3", ReleaseAt: fixtureNow.Add(12 * 24 * time.Hour), LockOverride: true},
		period.Period{ID: "z1", SeasonID: "s2", Number: 1, Name: "Other Episode 1", ReleaseAt: fixtureNow.Add(-48 * time.Hour)},
	)

	standings := cacherepo.NewStandingsMemory(basecache.NewStore(time.Minute))
	scoringService := NewScoringService(store.Seasons(), store.Periods(), store.Castaways(), store.Scoring(), standings, id.NewUUIDGenerator(), logging.Default(), 2)
	scoringService.now = func() time.Time { return fixtureNow }

	draftService := NewDraftService(store.Seasons(), store.Leagues(), store.Castaways(), store.Drafts(), store.Rosters(), id.NewUUIDGenerator(), logging.Default())
	draftService.now = func() time.Time { return fixtureNow }

	return serviceFixture{
		store:   store,
		scoring: scoringService,
		draft:   draftService,
		access:  NewAccessService(store.Leagues(), store.Seasons(), store.Drafts()),
	}
}
