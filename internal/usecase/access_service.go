package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
)

// AccessService resolves what a caller may do inside a season's league.
type AccessService struct {
	leagueRepo league.Repository
	seasonRepo season.Repository
	draftRepo  draft.Repository
}

func NewAccessService(leagueRepo league.Repository, seasonRepo season.Repository, draftRepo draft.Repository) *AccessService {
	return &AccessService{
		leagueRepo: leagueRepo,
		seasonRepo: seasonRepo,
		draftRepo:  draftRepo,
	}
}

// AuthorizeSeason checks that participantID holds at least required in the
// league that owns seasonID.
func (s *AccessService) AuthorizeSeason(ctx context.Context, seasonID, participantID string, required league.Role) (league.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccessService.AuthorizeSeason", seasonAttr(seasonID))
	defer span.End()

	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return league.Membership{}, fmt.Errorf("%w: participant is required", ErrUnauthorized)
	}
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return league.Membership{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	ss, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return league.Membership{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	membership, exists, err := s.leagueRepo.GetMembership(ctx, ss.LeagueID, participantID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("get league membership: %w", err)
	}
	if !exists {
		return league.Membership{}, fmt.Errorf("%w: participant=%s is not in league=%s", ErrForbidden, participantID, ss.LeagueID)
	}
	if !membership.Satisfies(required) {
		return league.Membership{}, fmt.Errorf("%w: %s role required", ErrForbidden, required)
	}

	return membership, nil
}

// AuthorizeDraft resolves the draft's season and delegates to AuthorizeSeason.
func (s *AccessService) AuthorizeDraft(ctx context.Context, draftID, participantID string, required league.Role) (league.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AccessService.AuthorizeDraft")
	defer span.End()

	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return league.Membership{}, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}

	d, exists, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		return league.Membership{}, fmt.Errorf("get draft: %w", err)
	}
	if !exists {
		return league.Membership{}, fmt.Errorf("%w: draft=%s", ErrNotFound, draftID)
	}

	return s.AuthorizeSeason(ctx, d.SeasonID, participantID, required)
}
