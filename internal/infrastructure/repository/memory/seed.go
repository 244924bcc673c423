package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
)

const (
	LeagueIDDemo = "demo-league"
	SeasonIDDemo = "demo-season-47"
)

// Dataset is one league with a single season, shared by the memory store and
// the postgres bootstrap seed.
type Dataset struct {
	League    league.League
	Members   []league.Membership
	Season    season.Season
	Castaways []castaway.Castaway
	Periods   []period.Period
}

// DemoDataset returns four participants, eighteen castaways and three weekly
// periods starting at firstRelease.
func DemoDataset(firstRelease time.Time) Dataset {
	joined := firstRelease.Add(-14 * 24 * time.Hour)
	data := Dataset{
		League: league.League{ID: LeagueIDDemo, Name: "Island Demo League", CreatedAt: joined},
		Members: []league.Membership{
			{LeagueID: LeagueIDDemo, ParticipantID: "ana", DisplayName: "Ana", Role: league.RoleCommissioner, JoinedAt: joined},
			{LeagueID: LeagueIDDemo, ParticipantID: "ben", DisplayName: "Ben", Role: league.RoleMember, JoinedAt: joined.Add(time.Hour)},
			{LeagueID: LeagueIDDemo, ParticipantID: "cam", DisplayName: "Cam", Role: league.RoleMember, JoinedAt: joined.Add(2 * time.Hour)},
			{LeagueID: LeagueIDDemo, ParticipantID: "dee", DisplayName: "Dee", Role: league.RoleMember, JoinedAt: joined.Add(3 * time.Hour)},
		},
		Season: season.Season{
			ID:                 SeasonIDDemo,
			LeagueID:           LeagueIDDemo,
			Name:               "Season 47",
			RosterSize:         4,
			DraftStyle:         draft.StyleSnake,
			SpoilerLockEnabled: true,
		}.WithDefaults(),
	}

	names := []struct{ name, tribe string }{
		{"Andy", "Gata"}, {"Genevieve", "Lavo"}, {"Gabe", "Tuku"},
		{"Kishan", "Lavo"}, {"Rachel", "Gata"}, {"Sam", "Gata"},
		{"Sierra", "Tuku"}, {"Sue", "Gata"}, {"Teeny", "Gata"},
		{"Caroline", "Tuku"}, {"Kyle", "Tuku"}, {"Sol", "Lavo"},
		{"Tiyana", "Tuku"}, {"Rome", "Lavo"}, {"Anika", "Gata"},
		{"Kenzie", "Lavo"}, {"Aysha", "Tuku"}, {"Jon", "Lavo"},
	}
	for i, n := range names {
		data.Castaways = append(data.Castaways, castaway.Castaway{
			ID:       fmt.Sprintf("s47-c%02d", i+1),
			SeasonID: SeasonIDDemo,
			Name:     n.name,
			Tribe:    n.tribe,
		})
	}

	for i := 0; i < 3; i++ {
		data.Periods = append(data.Periods, period.Period{
			ID:        fmt.Sprintf("s47-e%02d", i+1),
			SeasonID:  SeasonIDDemo,
			Number:    i + 1,
			Name:      fmt.Sprintf("Episode %d", i+1),
			ReleaseAt: firstRelease.Add(time.Duration(i) * 7 * 24 * time.Hour),
		})
	}
	return data
}

// Load puts a dataset into the store.
func (s *Store) Load(data Dataset) {
	s.PutLeague(data.League, data.Members...)
	s.PutSeason(data.Season)
	s.PutCastaways(data.Castaways...)
	s.PutPeriods(data.Periods...)
}
