package period

import "time"

// Period is one scored episode of a season.
type Period struct {
	ID           string
	SeasonID     string
	Number       int
	Name         string
	ReleaseAt    time.Time
	LockOverride bool
}
