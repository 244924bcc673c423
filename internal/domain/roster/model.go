package roster

import (
	"sort"
	"time"
)

// Entry records that a participant owns a castaway for a season. Scoring
// reads ownership from entries only, never from draft history.
type Entry struct {
	ID            string
	SeasonID      string
	ParticipantID string
	CastawayID    string
	AcquiredAt    time.Time
}

// Group is one participant's roster in acquisition order.
type Group struct {
	ParticipantID string
	Entries       []Entry
}

// GroupByParticipant buckets entries per participant, ordered by participant
// id with each bucket in acquisition order.
func GroupByParticipant(entries []Entry) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, e := range entries {
		i, ok := index[e.ParticipantID]
		if !ok {
			i = len(groups)
			index[e.ParticipantID] = i
			groups = append(groups, Group{ParticipantID: e.ParticipantID})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].ParticipantID < groups[j].ParticipantID
	})
	for _, g := range groups {
		sort.SliceStable(g.Entries, func(i, j int) bool {
			return g.Entries[i].AcquiredAt.Before(g.Entries[j].AcquiredAt)
		})
	}
	return groups
}
