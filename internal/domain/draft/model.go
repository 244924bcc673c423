package draft

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

type Style string

const (
	StyleSnake  Style = "SNAKE"
	StyleLinear Style = "LINEAR"
)

func ParseStyle(v string) (Style, error) {
	switch Style(strings.ToUpper(strings.TrimSpace(v))) {
	case StyleSnake:
		return StyleSnake, nil
	case StyleLinear:
		return StyleLinear, nil
	default:
		return "", fmt.Errorf("unknown draft style %q", v)
	}
}

// Draft is the single draft of a season.
type Draft struct {
	ID                string
	SeasonID          string
	Status            Status
	CurrentPickNumber int
	// CurrentParticipantID is the stored next picker, empty when none.
	CurrentParticipantID string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// New returns a fresh PENDING draft positioned at the first pick.
func New(id, seasonID string, now time.Time) Draft {
	return Draft{
		ID:                id,
		SeasonID:          seasonID,
		Status:            StatusPending,
		CurrentPickNumber: 1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

type Pick struct {
	ID            string
	DraftID       string
	PickNumber    int
	ParticipantID string
	CastawayID    string
	PickedAt      time.Time
}
