package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	// ListMembers returns memberships ordered by join time, then participant id.
	ListMembers(ctx context.Context, leagueID string) ([]Membership, error)
	GetMembership(ctx context.Context, leagueID, participantID string) (Membership, bool, error)
}
