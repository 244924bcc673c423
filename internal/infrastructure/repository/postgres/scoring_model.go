package postgres

import "time"

type outcomeEventTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	SeasonID   string     `db:"season_public_id"`
	PeriodID   string     `db:"period_public_id"`
	CastawayID string     `db:"castaway_public_id"`
	Kind       string     `db:"kind"`
	Note       string     `db:"note"`
	RecordedBy string     `db:"recorded_by"`
	CreatedAt  time.Time  `db:"created_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type outcomeEventInsertModel struct {
	PublicID   string    `db:"public_id"`
	SeasonID   string    `db:"season_public_id"`
	PeriodID   string    `db:"period_public_id"`
	CastawayID string    `db:"castaway_public_id"`
	Kind       string    `db:"kind"`
	Note       string    `db:"note"`
	RecordedBy string    `db:"recorded_by"`
	CreatedAt  time.Time `db:"created_at"`
}

type periodScoreTableModel struct {
	ID            int64     `db:"id"`
	ParticipantID string    `db:"participant_id"`
	SeasonID      string    `db:"season_public_id"`
	PeriodID      string    `db:"period_public_id"`
	Score         int       `db:"score"`
	CalculatedAt  time.Time `db:"calculated_at"`
}

type periodScoreInsertModel struct {
	ParticipantID string    `db:"participant_id"`
	SeasonID      string    `db:"season_public_id"`
	PeriodID      string    `db:"period_public_id"`
	Score         int       `db:"score"`
	CalculatedAt  time.Time `db:"calculated_at"`
}
