package period

import "context"

type Repository interface {
	GetByID(ctx context.Context, periodID string) (Period, bool, error)
	// ListBySeason returns periods ordered by number.
	ListBySeason(ctx context.Context, seasonID string) ([]Period, error)
}
