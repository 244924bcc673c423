package period

import (
	"time"

	crerr "github.com/cockroachdb/errors"
)

var ErrSpoilerLocked = crerr.New("period is spoiler locked")

// IsLocked reports whether outcomes for p must wait until its release time.
func IsLocked(p Period, spoilerLockEnabled bool, now time.Time) bool {
	if p.LockOverride || !spoilerLockEnabled {
		return false
	}
	return p.ReleaseAt.After(now)
}

func ValidateNotLocked(p Period, spoilerLockEnabled bool, now time.Time) error {
	if IsLocked(p, spoilerLockEnabled, now) {
		return crerr.Wrapf(ErrSpoilerLocked, "period %d releases at %s", p.Number, p.ReleaseAt.UTC().Format(time.RFC3339))
	}
	return nil
}
