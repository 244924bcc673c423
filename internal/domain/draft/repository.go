package draft

import "context"

// ApplyFunc validates a pick against the locked draft state.
type ApplyFunc func(d Draft, picks []Pick) (Transition, error)

type Repository interface {
	// GetOrCreate stores candidate unless the season already has a draft and
	// returns whichever draft is persisted. Safe to call concurrently.
	GetOrCreate(ctx context.Context, candidate Draft) (Draft, error)
	GetByID(ctx context.Context, draftID string) (Draft, bool, error)
	GetBySeason(ctx context.Context, seasonID string) (Draft, bool, error)
	ListPicks(ctx context.Context, draftID string) ([]Pick, error)
	// ApplyPick holds the draft's lock across fn and commits the returned
	// transition atomically. Nothing is written when fn fails.
	ApplyPick(ctx context.Context, draftID string, fn ApplyFunc) (Transition, error)
}
