package roster

import "context"

// Repository exposes read access; entries are written with draft picks.
type Repository interface {
	ListBySeason(ctx context.Context, seasonID string) ([]Entry, error)
	ListByParticipant(ctx context.Context, seasonID, participantID string) ([]Entry, error)
}
