package draft

import crerr "github.com/cockroachdb/errors"

var (
	ErrNotFound         = crerr.New("draft not found")
	ErrAlreadyCompleted = crerr.New("draft already completed")
	ErrEntityTaken      = crerr.New("castaway already drafted")
	ErrOutOfTurn        = crerr.New("not your turn to pick")
	ErrRosterFull       = crerr.New("roster is full")
)
