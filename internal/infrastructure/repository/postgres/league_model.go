package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type leagueMemberTableModel struct {
	ID            int64      `db:"id"`
	LeagueID      string     `db:"league_public_id"`
	ParticipantID string     `db:"participant_id"`
	DisplayName   string     `db:"display_name"`
	Role          string     `db:"role"`
	JoinedAt      time.Time  `db:"joined_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type seasonTableModel struct {
	ID                 int64          `db:"id"`
	PublicID           string         `db:"public_id"`
	LeagueID           string         `db:"league_public_id"`
	Name               string         `db:"name"`
	RosterSize         int            `db:"roster_size"`
	DraftStyle         string         `db:"draft_style"`
	PickTimerSeconds   int            `db:"pick_timer_seconds"`
	CaptainEnabled     bool           `db:"captain_enabled"`
	SpoilerLockEnabled bool           `db:"spoiler_lock_enabled"`
	ScoringOverride    sql.NullString `db:"scoring_override"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
	DeletedAt          *time.Time     `db:"deleted_at"`
}

type castawayTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	SeasonID  string     `db:"season_public_id"`
	Name      string     `db:"name"`
	Tribe     string     `db:"tribe"`
	CreatedAt time.Time  `db:"created_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type periodTableModel struct {
	ID           int64      `db:"id"`
	PublicID     string     `db:"public_id"`
	SeasonID     string     `db:"season_public_id"`
	Number       int        `db:"number"`
	Name         string     `db:"name"`
	ReleaseAt    time.Time  `db:"release_at"`
	LockOverride bool       `db:"lock_override"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

// Seed rows carry only the columns the bootstrap writes; the rest default.

type leagueInsertModel struct {
	PublicID string `db:"public_id"`
	Name     string `db:"name"`
}

type leagueMemberInsertModel struct {
	LeagueID      string    `db:"league_public_id"`
	ParticipantID string    `db:"participant_id"`
	DisplayName   string    `db:"display_name"`
	Role          string    `db:"role"`
	JoinedAt      time.Time `db:"joined_at"`
}

type seasonInsertModel struct {
	PublicID           string `db:"public_id"`
	LeagueID           string `db:"league_public_id"`
	Name               string `db:"name"`
	RosterSize         int    `db:"roster_size"`
	DraftStyle         string `db:"draft_style"`
	PickTimerSeconds   int    `db:"pick_timer_seconds"`
	CaptainEnabled     bool   `db:"captain_enabled"`
	SpoilerLockEnabled bool   `db:"spoiler_lock_enabled"`
	ScoringOverride    any    `db:"scoring_override"`
}

type castawayInsertModel struct {
	PublicID string `db:"public_id"`
	SeasonID string `db:"season_public_id"`
	Name     string `db:"name"`
	Tribe    string `db:"tribe"`
}

type periodInsertModel struct {
	PublicID     string    `db:"public_id"`
	SeasonID     string    `db:"season_public_id"`
	Number       int       `db:"number"`
	Name         string    `db:"name"`
	ReleaseAt    time.Time `db:"release_at"`
	LockOverride bool      `db:"lock_override"`
}
