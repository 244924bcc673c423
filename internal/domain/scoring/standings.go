package scoring

import "sort"

// DeriveStandings sums period scores per participant. Higher totals rank
// first; equal totals share a dense rank and are listed by participant id.
// periodNumbers orders each participant's breakdown.
func DeriveStandings(scores []PeriodScore, periodNumbers map[string]int) []Standing {
	index := make(map[string]int)
	out := make([]Standing, 0)
	for _, s := range scores {
		i, ok := index[s.ParticipantID]
		if !ok {
			i = len(out)
			index[s.ParticipantID] = i
			out = append(out, Standing{ParticipantID: s.ParticipantID})
		}
		out[i].Total += s.Score
		out[i].Periods = append(out[i].Periods, PeriodTotal{
			PeriodID:     s.PeriodID,
			PeriodNumber: periodNumbers[s.PeriodID],
			Score:        s.Score,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].ParticipantID < out[j].ParticipantID
	})

	rank := 0
	for i := range out {
		if i == 0 || out[i].Total != out[i-1].Total {
			rank++
		}
		out[i].Rank = rank
		periods := out[i].Periods
		sort.Slice(periods, func(a, b int) bool {
			if periods[a].PeriodNumber != periods[b].PeriodNumber {
				return periods[a].PeriodNumber < periods[b].PeriodNumber
			}
			return periods[a].PeriodID < periods[b].PeriodID
		})
	}
	return out
}

// SortPeriodScores orders a period's rows by score, then participant id.
func SortPeriodScores(scores []PeriodScore) {
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].ParticipantID < scores[j].ParticipantID
	})
}
