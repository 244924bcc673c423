package usecase

import (
	"errors"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// callerErrors are returned for requests the service refuses on purpose.
// They are not traced as failures.
var callerErrors = []error{
	ErrInvalidInput,
	ErrNotFound,
	ErrUnauthorized,
	ErrForbidden,
	draft.ErrNotFound,
	draft.ErrAlreadyCompleted,
	draft.ErrEntityTaken,
	draft.ErrOutOfTurn,
	draft.ErrRosterFull,
	period.ErrSpoilerLocked,
}
