package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
)

func TestScoringRepository_ReconcilePeriodReplacesScores(t *testing.T) {
	store := NewStore()
	repo := store.Scoring()
	ctx := context.Background()
	at := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	store.PutRosterEntries(
		roster.Entry{ID: "r1", SeasonID: "s1", ParticipantID: "p1", CastawayID: "c1"},
		roster.Entry{ID: "r2", SeasonID: "s1", ParticipantID: "p2", CastawayID: "c2"},
	)
	require.NoError(t, repo.CreateEvent(ctx, scoring.Event{ID: "o1", SeasonID: "s1", PeriodID: "e1", CastawayID: "c1", Kind: scoring.KindWinner}))
	require.NoError(t, repo.CreateEvent(ctx, scoring.Event{ID: "o2", SeasonID: "s1", PeriodID: "e2", CastawayID: "c2", Kind: scoring.KindWinner}))

	compute := func(events []scoring.Event, entries []roster.Entry) ([]scoring.PeriodScore, error) {
		return scoring.Reconcile("s1", "e1", events, entries, scoring.DefaultRules(), at), nil
	}

	scores, err := repo.ReconcilePeriod(ctx, "s1", "e1", compute)
	require.NoError(t, err)
	require.Len(t, scores, 2)

	require.NoError(t, repo.DeleteEvent(ctx, "o1"))
	_, err = repo.ReconcilePeriod(ctx, "s1", "e1", compute)
	require.NoError(t, err)

	stored, err := repo.ListPeriodScores(ctx, "s1", "e1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, s := range stored {
		require.Zero(t, s.Score)
	}
}

func TestScoringRepository_ReconcilePeriodDropsRowsForFormerOwners(t *testing.T) {
	store := NewStore()
	repo := store.Scoring()
	ctx := context.Background()
	at := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	rows := func(participantIDs ...string) scoring.ComputeFunc {
		return func([]scoring.Event, []roster.Entry) ([]scoring.PeriodScore, error) {
			out := make([]scoring.PeriodScore, 0, len(participantIDs))
			for _, id := range participantIDs {
				out = append(out, scoring.PeriodScore{ParticipantID: id, SeasonID: "s1", PeriodID: "e1", CalculatedAt: at})
			}
			return out, nil
		}
	}

	_, err := repo.ReconcilePeriod(ctx, "s1", "e1", rows("p1", "p2", "p3"))
	require.NoError(t, err)
	_, err = repo.ReconcilePeriod(ctx, "s1", "e2", func([]scoring.Event, []roster.Entry) ([]scoring.PeriodScore, error) {
		return []scoring.PeriodScore{{ParticipantID: "p3", SeasonID: "s1", PeriodID: "e2", Score: 4}}, nil
	})
	require.NoError(t, err)

	_, err = repo.ReconcilePeriod(ctx, "s1", "e1", rows("p1"))
	require.NoError(t, err)

	stored, err := repo.ListPeriodScores(ctx, "s1", "e1")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "p1", stored[0].ParticipantID)

	other, err := repo.ListPeriodScores(ctx, "s1", "e2")
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, 4, other[0].Score)
}

func TestScoringRepository_ReconcilePeriodSerializesPerPeriod(t *testing.T) {
	store := NewStore()
	repo := store.Scoring()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		active  int
		overlap bool
		wg      sync.WaitGroup
	)
	compute := func([]scoring.Event, []roster.Entry) ([]scoring.PeriodScore, error) {
		mu.Lock()
		active++
		if active > 1 {
			overlap = true
		}
		mu.Unlock()

		time.Sleep(5 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return nil, nil
	}

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.ReconcilePeriod(ctx, "s1", "e1", compute)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.False(t, overlap)
	require.Zero(t, store.periodLocks.Len())
}

func TestScoringRepository_EventsAreScopedToPeriod(t *testing.T) {
	store := NewStore()
	repo := store.Scoring()
	ctx := context.Background()
	base := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateEvent(ctx, scoring.Event{ID: "o2", SeasonID: "s1", PeriodID: "e1", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, repo.CreateEvent(ctx, scoring.Event{ID: "o1", SeasonID: "s1", PeriodID: "e1", CreatedAt: base}))
	require.NoError(t, repo.CreateEvent(ctx, scoring.Event{ID: "o3", SeasonID: "s1", PeriodID: "e2", CreatedAt: base}))
	require.Error(t, repo.CreateEvent(ctx, scoring.Event{ID: "o3", SeasonID: "s1", PeriodID: "e2"}))

	events, err := repo.ListEvents(ctx, "s1", "e1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "o1", events[0].ID)
	require.Equal(t, "o2", events[1].ID)
}
