package postgres

import (
	"database/sql"
	"time"
)

type draftTableModel struct {
	ID                   int64          `db:"id"`
	PublicID             string         `db:"public_id"`
	SeasonID             string         `db:"season_public_id"`
	Status               string         `db:"status"`
	CurrentPickNumber    int            `db:"current_pick_number"`
	CurrentParticipantID sql.NullString `db:"current_participant_id"`
	CreatedAt            time.Time      `db:"created_at"`
	UpdatedAt            time.Time      `db:"updated_at"`
}

type draftInsertModel struct {
	PublicID          string    `db:"public_id"`
	SeasonID          string    `db:"season_public_id"`
	Status            string    `db:"status"`
	CurrentPickNumber int       `db:"current_pick_number"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type draftPickTableModel struct {
	ID            int64     `db:"id"`
	PublicID      string    `db:"public_id"`
	DraftID       string    `db:"draft_public_id"`
	PickNumber    int       `db:"pick_number"`
	ParticipantID string    `db:"participant_id"`
	CastawayID    string    `db:"castaway_public_id"`
	PickedAt      time.Time `db:"picked_at"`
}

type draftPickInsertModel struct {
	PublicID      string    `db:"public_id"`
	DraftID       string    `db:"draft_public_id"`
	PickNumber    int       `db:"pick_number"`
	ParticipantID string    `db:"participant_id"`
	CastawayID    string    `db:"castaway_public_id"`
	PickedAt      time.Time `db:"picked_at"`
}

type rosterEntryTableModel struct {
	ID            int64     `db:"id"`
	PublicID      string    `db:"public_id"`
	SeasonID      string    `db:"season_public_id"`
	ParticipantID string    `db:"participant_id"`
	CastawayID    string    `db:"castaway_public_id"`
	AcquiredAt    time.Time `db:"acquired_at"`
}

type rosterEntryInsertModel struct {
	PublicID      string    `db:"public_id"`
	SeasonID      string    `db:"season_public_id"`
	ParticipantID string    `db:"participant_id"`
	CastawayID    string    `db:"castaway_public_id"`
	AcquiredAt    time.Time `db:"acquired_at"`
}
