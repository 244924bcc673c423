package season

import (
	"fmt"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
)

const (
	DefaultRosterSize       = 6
	DefaultPickTimerSeconds = 90
)

// Season is one run of the show played by a league.
type Season struct {
	ID                 string
	LeagueID           string
	Name               string
	RosterSize         int
	DraftStyle         draft.Style
	PickTimerSeconds   int
	CaptainEnabled     bool
	SpoilerLockEnabled bool
	ScoringOverride    scoring.Override
}

// WithDefaults fills unset settings with league defaults.
func (s Season) WithDefaults() Season {
	if s.RosterSize <= 0 {
		s.RosterSize = DefaultRosterSize
	}
	if s.DraftStyle == "" {
		s.DraftStyle = draft.StyleSnake
	}
	if s.PickTimerSeconds <= 0 {
		s.PickTimerSeconds = DefaultPickTimerSeconds
	}
	return s
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.LeagueID == "" {
		return fmt.Errorf("season league id is required")
	}
	if s.RosterSize <= 0 {
		return fmt.Errorf("season roster size must be > 0")
	}
	if _, err := draft.ParseStyle(string(s.DraftStyle)); err != nil {
		return err
	}
	return nil
}

// DraftSetup binds the season's draft settings to the ordered participants.
func (s Season) DraftSetup(participantIDs []string) draft.Setup {
	return draft.Setup{
		ParticipantIDs: participantIDs,
		RosterSize:     s.RosterSize,
		Style:          s.DraftStyle,
	}
}

func (s Season) Rules() scoring.Rules {
	return scoring.Resolve(s.ScoringOverride)
}
