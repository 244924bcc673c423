package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
)

// heldScores reads season scores, then parks the first caller until release
// is closed so a reconciliation can land in between.
type heldScores struct {
	scoring.Repository
	once    sync.Once
	read    chan struct{}
	release chan struct{}
}

func (h *heldScores) ListSeasonScores(ctx context.Context, seasonID string) ([]scoring.PeriodScore, error) {
	rows, err := h.Repository.ListSeasonScores(ctx, seasonID)
	h.once.Do(func() {
		close(h.read)
		<-h.release
	})
	return rows, err
}

// ctxScores fails season reads whose context is already done.
type ctxScores struct {
	scoring.Repository
}

func (c ctxScores) ListSeasonScores(ctx context.Context, seasonID string) ([]scoring.PeriodScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.Repository.ListSeasonScores(ctx, seasonID)
}

func totalOf(t *testing.T, standings []scoring.Standing, participantID string) int {
	t.Helper()
	for _, s := range standings {
		if s.ParticipantID == participantID {
			return s.Total
		}
	}
	t.Fatalf("participant %s has no standing", participantID)
	return 0
}

func TestScoringService_Standings_ReconcileDuringDeriveIsNotCached(t *testing.T) {
	f := newServiceFixture(t)
	seedRosters(f)
	ctx := context.Background()

	_, err := f.scoring.RecordOutcome(ctx, RecordOutcomeInput{SeasonID: "s1", PeriodID: "e1", CastawayID: "c3", Kind: "WINNER"})
	require.NoError(t, err)

	held := &heldScores{Repository: f.store.Scoring(), read: make(chan struct{}), release: make(chan struct{})}
	f.scoring.scoringRepo = held

	type result struct {
		standings []scoring.Standing
		err       error
	}
	done := make(chan result, 1)
	go func() {
		standings, err := f.scoring.Standings(ctx, "s1")
		done <- result{standings, err}
	}()

	<-held.read
	_, err = f.scoring.RecordOutcome(ctx, RecordOutcomeInput{SeasonID: "s1", PeriodID: "e1", CastawayID: "c1", Kind: "WINNER"})
	require.NoError(t, err)
	close(held.release)

	early := <-done
	require.NoError(t, early.err)
	assert.Equal(t, 0, totalOf(t, early.standings, "p1"))

	fresh, err := f.scoring.Standings(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 10, totalOf(t, fresh, "p1"))
	assert.Equal(t, 10, totalOf(t, fresh, "p2"))
	assert.Equal(t, 10, totalOf(t, fresh, "p3"))
}

func TestScoringService_Standings_CachedAfterQuietDerive(t *testing.T) {
	f := newServiceFixture(t)
	seedRosters(f)
	ctx := context.Background()

	_, err := f.scoring.RecordOutcome(ctx, RecordOutcomeInput{SeasonID: "s1", PeriodID: "e1", CastawayID: "c3", Kind: "WINNER"})
	require.NoError(t, err)

	_, err = f.scoring.Standings(ctx, "s1")
	require.NoError(t, err)

	cached, ok, err := f.scoring.standings.Get(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, totalOf(t, cached, "p2"))
}

func TestScoringService_Standings_SharedDeriveIgnoresCallerCancel(t *testing.T) {
	f := newServiceFixture(t)
	seedRosters(f)
	f.scoring.scoringRepo = ctxScores{Repository: f.store.Scoring()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	standings, err := f.scoring.Standings(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, standings, 3)
}
