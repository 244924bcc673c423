package scoring

import "time"

// Event is one scored happening for a castaway within a period.
type Event struct {
	ID         string
	SeasonID   string
	PeriodID   string
	CastawayID string
	Kind       OutcomeKind
	Note       string
	RecordedBy string
	CreatedAt  time.Time
}

// PeriodScore is the reconciled total of one participant for one period.
type PeriodScore struct {
	ParticipantID string
	SeasonID      string
	PeriodID      string
	Score         int
	CalculatedAt  time.Time
}

type PeriodTotal struct {
	PeriodID     string
	PeriodNumber int
	Score        int
}

type Standing struct {
	Rank          int
	ParticipantID string
	Total         int
	Periods       []PeriodTotal
}
