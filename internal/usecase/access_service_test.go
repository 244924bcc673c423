package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	draftmock "github.com/riskibarqy/castaway-league/internal/mocks/domain/draft"
	leaguemock "github.com/riskibarqy/castaway-league/internal/mocks/domain/league"
	seasonmock "github.com/riskibarqy/castaway-league/internal/mocks/domain/season"
)

func TestAccessService_AuthorizeSeason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		participant string
		required    league.Role
		membership  *league.Membership
		wantErr     error
	}{
		{
			name:        "member reads",
			participant: "p2",
			required:    league.RoleMember,
			membership:  &league.Membership{LeagueID: "l1", ParticipantID: "p2", Role: league.RoleMember},
		},
		{
			name:        "commissioner satisfies member",
			participant: "p1",
			required:    league.RoleMember,
			membership:  &league.Membership{LeagueID: "l1", ParticipantID: "p1", Role: league.RoleCommissioner},
		},
		{
			name:        "member cannot act as commissioner",
			participant: "p2",
			required:    league.RoleCommissioner,
			membership:  &league.Membership{LeagueID: "l1", ParticipantID: "p2", Role: league.RoleMember},
			wantErr:     ErrForbidden,
		},
		{
			name:        "outsider",
			participant: "p9",
			required:    league.RoleMember,
			wantErr:     ErrForbidden,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			leagueRepo := leaguemock.NewRepository(t)
			seasonRepo := seasonmock.NewRepository(t)
			service := NewAccessService(leagueRepo, seasonRepo, draftmock.NewRepository(t))

			seasonRepo.
				On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), "s1").
				Return(season.Season{ID: "s1", LeagueID: "l1"}, true, nil).
				Once()
			if tc.membership != nil {
				leagueRepo.On("GetMembership", mock.Anything, "l1", tc.participant).Return(*tc.membership, true, nil).Once()
			} else {
				leagueRepo.On("GetMembership", mock.Anything, "l1", tc.participant).Return(league.Membership{}, false, nil).Once()
			}

			_, err := service.AuthorizeSeason(ctx, "s1", tc.participant, tc.required)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("expected access, got %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAccessService_AuthorizeSeason_MissingCallerOrSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	service := NewAccessService(leaguemock.NewRepository(t), seasonRepo, draftmock.NewRepository(t))

	if _, err := service.AuthorizeSeason(ctx, "s1", " ", league.RoleMember); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	seasonRepo.On("GetByID", mock.Anything, "gone").Return(season.Season{}, false, nil).Once()
	if _, err := service.AuthorizeSeason(ctx, "gone", "p1", league.RoleMember); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccessService_AuthorizeDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	seasonRepo := seasonmock.NewRepository(t)
	draftRepo := draftmock.NewRepository(t)
	service := NewAccessService(leagueRepo, seasonRepo, draftRepo)

	draftRepo.On("GetByID", mock.Anything, "missing").Return(draft.Draft{}, false, nil).Once()
	if _, err := service.AuthorizeDraft(ctx, "missing", "p1", league.RoleMember); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	draftRepo.On("GetByID", mock.Anything, "d1").Return(draft.Draft{ID: "d1", SeasonID: "s1"}, true, nil).Once()
	seasonRepo.On("GetByID", mock.Anything, "s1").Return(season.Season{ID: "s1", LeagueID: "l1"}, true, nil).Once()
	leagueRepo.
		On("GetMembership", mock.Anything, "l1", "p2").
		Return(league.Membership{LeagueID: "l1", ParticipantID: "p2", Role: league.RoleMember}, true, nil).
		Once()

	membership, err := service.AuthorizeDraft(ctx, "d1", "p2", league.RoleMember)
	if err != nil {
		t.Fatalf("authorize draft: %v", err)
	}
	if membership.ParticipantID != "p2" {
		t.Fatalf("unexpected membership: %+v", membership)
	}
}

func TestAccessService_AuthorizeDraft_AgainstMemoryStore(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	board, err := f.draft.GetOrCreateDraft(ctx, "s1", "p2")
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	membership, err := f.access.AuthorizeDraft(ctx, board.Draft.ID, "p1", league.RoleCommissioner)
	if err != nil {
		t.Fatalf("commissioner should pass: %v", err)
	}
	if membership.ParticipantID != "p1" {
		t.Fatalf("unexpected membership: %+v", membership)
	}

	if _, err := f.access.AuthorizeDraft(ctx, board.Draft.ID, "p2", league.RoleCommissioner); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for member, got %v", err)
	}
	if _, err := f.access.AuthorizeDraft(ctx, board.Draft.ID, "p9", league.RoleMember); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for outsider, got %v", err)
	}
	if _, err := f.access.AuthorizeDraft(ctx, "missing", "p1", league.RoleMember); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
