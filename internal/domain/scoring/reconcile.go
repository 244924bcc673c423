package scoring

import (
	"sort"
	"time"

	"github.com/riskibarqy/castaway-league/internal/domain/roster"
)

// Reconcile recomputes one period from scratch. Each event counts for every
// owner of its castaway, and every roster holder gets a row, zero included.
// Rows are ordered by participant id.
func Reconcile(seasonID, periodID string, events []Event, entries []roster.Entry, rules Rules, at time.Time) []PeriodScore {
	owners := make(map[string][]string)
	totals := make(map[string]int)
	for _, e := range entries {
		if e.SeasonID != "" && e.SeasonID != seasonID {
			continue
		}
		owners[e.CastawayID] = append(owners[e.CastawayID], e.ParticipantID)
		if _, ok := totals[e.ParticipantID]; !ok {
			totals[e.ParticipantID] = 0
		}
	}

	for _, ev := range events {
		if ev.PeriodID != periodID {
			continue
		}
		points := ScoreFor(ev.Kind, rules)
		for _, participantID := range owners[ev.CastawayID] {
			totals[participantID] += points
		}
	}

	out := make([]PeriodScore, 0, len(totals))
	for participantID, total := range totals {
		out = append(out, PeriodScore{
			ParticipantID: participantID,
			SeasonID:      seasonID,
			PeriodID:      periodID,
			Score:         total,
			CalculatedAt:  at,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ParticipantID < out[j].ParticipantID
	})
	return out
}
