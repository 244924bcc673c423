package draft

import (
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/castaway-league/internal/domain/roster"
)

// Setup is the season configuration a draft is evaluated against.
type Setup struct {
	ParticipantIDs []string
	RosterSize     int
	Style          Style
}

func (s Setup) TotalPicks() int {
	if s.RosterSize <= 0 {
		return 0
	}
	return len(s.ParticipantIDs) * s.RosterSize
}

// CurrentPicker returns the participant on the clock, or false when nobody is.
func CurrentPicker(d Draft, setup Setup) (string, bool) {
	return pickerAt(d.Status, d.CurrentPickNumber, setup)
}

func pickerAt(status Status, pickNumber int, setup Setup) (string, bool) {
	total := setup.TotalPicks()
	if status == StatusCompleted || pickNumber < 1 || pickNumber > total {
		return "", false
	}
	return Order(setup.ParticipantIDs, total, setup.Style)[pickNumber-1], true
}

// PickRequest carries a participant's selection plus the ids for new rows.
type PickRequest struct {
	ParticipantID string
	CastawayID    string
	PickID        string
	RosterEntryID string
	At            time.Time
}

// Transition is the full write set of one accepted pick.
type Transition struct {
	Pick  Pick
	Entry roster.Entry
	Draft Draft
}

func (t Transition) Completed() bool {
	return t.Draft.Status == StatusCompleted
}

// Apply validates req against the draft and its existing picks and returns
// the resulting writes. Checks run in a fixed order: completed, castaway
// taken, turn, roster size.
func Apply(d Draft, picks []Pick, setup Setup, req PickRequest) (Transition, error) {
	if d.Status == StatusCompleted {
		return Transition{}, crerr.Wrapf(ErrAlreadyCompleted, "draft %s", d.ID)
	}

	owned := 0
	for _, p := range picks {
		if p.CastawayID == req.CastawayID {
			return Transition{}, crerr.Wrapf(ErrEntityTaken, "castaway %s went at pick %d", req.CastawayID, p.PickNumber)
		}
		if p.ParticipantID == req.ParticipantID {
			owned++
		}
	}

	picker, ok := CurrentPicker(d, setup)
	if !ok || picker != req.ParticipantID {
		return Transition{}, crerr.Wrapf(ErrOutOfTurn, "pick %d", d.CurrentPickNumber)
	}

	if owned >= setup.RosterSize {
		return Transition{}, crerr.Wrapf(ErrRosterFull, "participant %s holds %d of %d", req.ParticipantID, owned, setup.RosterSize)
	}

	next := d
	next.CurrentPickNumber = d.CurrentPickNumber + 1
	next.UpdatedAt = req.At
	next.Status = StatusInProgress
	if next.CurrentPickNumber > setup.TotalPicks() {
		next.Status = StatusCompleted
	}
	next.CurrentParticipantID, _ = pickerAt(next.Status, next.CurrentPickNumber, setup)

	return Transition{
		Pick: Pick{
			ID:            req.PickID,
			DraftID:       d.ID,
			PickNumber:    d.CurrentPickNumber,
			ParticipantID: req.ParticipantID,
			CastawayID:    req.CastawayID,
			PickedAt:      req.At,
		},
		Entry: roster.Entry{
			ID:            req.RosterEntryID,
			SeasonID:      d.SeasonID,
			ParticipantID: req.ParticipantID,
			CastawayID:    req.CastawayID,
			AcquiredAt:    req.At,
		},
		Draft: next,
	}, nil
}
