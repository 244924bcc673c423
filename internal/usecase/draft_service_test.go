package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	castawaymock "github.com/riskibarqy/castaway-league/internal/mocks/domain/castaway"
	draftmock "github.com/riskibarqy/castaway-league/internal/mocks/domain/draft"
	leaguemock "github.com/riskibarqy/castaway-league/internal/mocks/domain/league"
	rostermock "github.com/riskibarqy/castaway-league/internal/mocks/domain/roster"
	seasonmock "github.com/riskibarqy/castaway-league/internal/mocks/domain/season"
	"github.com/riskibarqy/castaway-league/internal/platform/id"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

func TestDraftService_GetOrCreateDraft_LazilyCreatesOnce(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	board, err := f.draft.GetOrCreateDraft(ctx, "s1", "p1")
	require.NoError(t, err)
	require.Equal(t, draft.StatusPending, board.Draft.Status)
	require.Equal(t, 1, board.Draft.CurrentPickNumber)
	require.Equal(t, 6, board.TotalPicks)
	require.Equal(t, []string{"p1", "p2", "p3"}, board.ParticipantIDs)
	require.Equal(t, "p1", board.CurrentPickerID)
	require.True(t, board.IsMyTurn)
	require.Len(t, board.Available, 6)

	again, err := f.draft.GetOrCreateDraft(ctx, "s1", "p2")
	require.NoError(t, err)
	require.Equal(t, board.Draft.ID, again.Draft.ID)
	require.False(t, again.IsMyTurn)
}

func TestDraftService_GetOrCreateDraft_UnknownSeason(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.draft.GetOrCreateDraft(context.Background(), "missing", "p1")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = f.draft.GetOrCreateDraft(context.Background(), "  ", "p1")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDraftService_MakePick_FullSnakeDraft(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	board, err := f.draft.GetOrCreateDraft(ctx, "s1", "p1")
	require.NoError(t, err)

	sequence := []struct {
		participant string
		castaway    string
		next        string
	}{
		{"p1", "c1", "p2"},
		{"p2", "c2", "p3"},
		{"p3", "c3", "p3"},
		{"p3", "c4", "p2"},
		{"p2", "c5", "p1"},
		{"p1", "c6", ""},
	}
	for i, step := range sequence {
		picker, ok, err := f.draft.CurrentPicker(ctx, "s1")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, step.participant, picker)

		res, err := f.draft.MakePick(ctx, MakePickInput{
			DraftID:       board.Draft.ID,
			ParticipantID: step.participant,
			CastawayID:    step.castaway,
		})
		require.NoError(t, err, "pick %d", i+1)
		require.Equal(t, i+1, res.Pick.PickNumber)
		require.Equal(t, step.next, res.NextParticipantID)
		require.Equal(t, i == len(sequence)-1, res.Completed)
	}

	_, ok, err := f.draft.CurrentPicker(ctx, "s1")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = f.draft.MakePick(ctx, MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p1", CastawayID: "c2"})
	require.ErrorIs(t, err, draft.ErrAlreadyCompleted)

	mine, err := f.draft.ListRoster(ctx, "s1", "p3")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "c3", mine[0].CastawayID)
	require.Equal(t, "c4", mine[1].CastawayID)

	groups, err := f.draft.ListRosters(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, "p1", groups[0].ParticipantID)

	final, err := f.draft.GetOrCreateDraft(ctx, "s1", "p1")
	require.NoError(t, err)
	require.Equal(t, draft.StatusCompleted, final.Draft.Status)
	require.Equal(t, 7, final.Draft.CurrentPickNumber)
	require.Empty(t, final.Available)
	require.False(t, final.IsMyTurn)
}

func TestDraftService_MakePick_Rejections(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	board, err := f.draft.GetOrCreateDraft(ctx, "s1", "p1")
	require.NoError(t, err)
	_, err = f.draft.MakePick(ctx, MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p1", CastawayID: "c1"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		input   MakePickInput
		wantErr error
	}{
		{"missing draft", MakePickInput{DraftID: "nope", ParticipantID: "p2", CastawayID: "c2"}, ErrNotFound},
		{"blank castaway", MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p2", CastawayID: " "}, ErrInvalidInput},
		{"castaway from another season", MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p2", CastawayID: "x1"}, ErrNotFound},
		{"castaway already taken", MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p2", CastawayID: "c1"}, draft.ErrEntityTaken},
		{"taken wins over turn", MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p3", CastawayID: "c1"}, draft.ErrEntityTaken},
		{"out of turn", MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p3", CastawayID: "c2"}, draft.ErrOutOfTurn},
		{"not a league member", MakePickInput{DraftID: board.Draft.ID, ParticipantID: "p9", CastawayID: "c2"}, draft.ErrOutOfTurn},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.draft.MakePick(ctx, tc.input)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	picks, err := f.store.Drafts().ListPicks(ctx, board.Draft.ID)
	require.NoError(t, err)
	require.Len(t, picks, 1)
	entries, err := f.store.Rosters().ListBySeason(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDraftService_MakePick_UnknownCastawaySkipsLockUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	leagueRepo := leaguemock.NewRepository(t)
	castawayRepo := castawaymock.NewRepository(t)
	draftRepo := draftmock.NewRepository(t)
	rosterRepo := rostermock.NewRepository(t)

	service := NewDraftService(seasonRepo, leagueRepo, castawayRepo, draftRepo, rosterRepo, id.NewSequence("id"), logging.NewNop())

	draftRepo.
		On("GetByID", mock.Anything, "d1").
		Return(draft.Draft{ID: "d1", SeasonID: "s1", Status: draft.StatusPending, CurrentPickNumber: 1}, true, nil).
		Once()
	seasonRepo.
		On("GetByID", mock.Anything, "s1").
		Return(season.Season{ID: "s1", LeagueID: "l1", RosterSize: 2}, true, nil).
		Once()
	leagueRepo.
		On("ListMembers", mock.Anything, "l1").
		Return([]league.Membership{{LeagueID: "l1", ParticipantID: "p1"}}, nil).
		Once()
	castawayRepo.
		On("GetByID", mock.Anything, "ghost").
		Return(castaway.Castaway{}, false, nil).
		Once()

	_, err := service.MakePick(ctx, MakePickInput{DraftID: "d1", ParticipantID: "p1", CastawayID: "ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	draftRepo.AssertNotCalled(t, "ApplyPick", mock.Anything, mock.Anything, mock.Anything)
}

func TestDraftService_MakePick_MapsDraftVanishedUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	seasonRepo := seasonmock.NewRepository(t)
	leagueRepo := leaguemock.NewRepository(t)
	castawayRepo := castawaymock.NewRepository(t)
	draftRepo := draftmock.NewRepository(t)

	service := NewDraftService(seasonRepo, leagueRepo, castawayRepo, draftRepo, rostermock.NewRepository(t), id.NewSequence("id"), logging.NewNop())

	draftRepo.On("GetByID", mock.Anything, "d1").Return(draft.Draft{ID: "d1", SeasonID: "s1"}, true, nil).Once()
	seasonRepo.On("GetByID", mock.Anything, "s1").Return(season.Season{ID: "s1", LeagueID: "l1"}, true, nil).Once()
	leagueRepo.On("ListMembers", mock.Anything, "l1").Return([]league.Membership{{ParticipantID: "p1"}}, nil).Once()
	castawayRepo.On("GetByID", mock.Anything, "c1").Return(castaway.Castaway{ID: "c1", SeasonID: "s1"}, true, nil).Once()
	draftRepo.
		On("ApplyPick", mock.Anything, "d1", mock.AnythingOfType("draft.ApplyFunc")).
		Return(draft.Transition{}, draft.ErrNotFound).
		Once()

	_, err := service.MakePick(ctx, MakePickInput{DraftID: "d1", ParticipantID: "p1", CastawayID: "c1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
