package scoring

import (
	"context"

	"github.com/riskibarqy/castaway-league/internal/domain/roster"
)

// ComputeFunc turns the locked period inputs into replacement score rows.
type ComputeFunc func(events []Event, entries []roster.Entry) ([]PeriodScore, error)

type Repository interface {
	CreateEvent(ctx context.Context, event Event) error
	GetEvent(ctx context.Context, eventID string) (Event, bool, error)
	DeleteEvent(ctx context.Context, eventID string) error
	ListEvents(ctx context.Context, seasonID, periodID string) ([]Event, error)

	// ReconcilePeriod holds the (season, period) lock, loads the period's
	// events and the season's roster entries, and upserts compute's rows in
	// one transaction.
	ReconcilePeriod(ctx context.Context, seasonID, periodID string, compute ComputeFunc) ([]PeriodScore, error)
	ListPeriodScores(ctx context.Context, seasonID, periodID string) ([]PeriodScore, error)
	ListSeasonScores(ctx context.Context, seasonID string) ([]PeriodScore, error)
}

// StandingsCache keeps derived standings between reconciliations.
type StandingsCache interface {
	Get(ctx context.Context, seasonID string) ([]Standing, bool, error)
	Set(ctx context.Context, seasonID string, standings []Standing) error
	Invalidate(ctx context.Context, seasonID string) error
}
