package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/sync/singleflight"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	"github.com/riskibarqy/castaway-league/internal/platform/id"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

const defaultRecalculateWorkers = 4

type ScoringService struct {
	seasonRepo      season.Repository
	periodRepo      period.Repository
	castawayRepo    castaway.Repository
	scoringRepo     scoring.Repository
	standings       scoring.StandingsCache
	idGen           id.Generator
	logger          *logging.Logger
	now             func() time.Time
	workers         int
	standingsFlight singleflight.Group

	// standingsGen counts reconciliations per season; a derive only fills
	// the cache when no reconciliation landed while it was reading.
	genMu        sync.Mutex
	standingsGen map[string]uint64
}

type RecordOutcomeInput struct {
	SeasonID   string
	PeriodID   string
	CastawayID string
	Kind       string
	Note       string
	RecordedBy string
}

type OutcomeResult struct {
	Event  scoring.Event
	Scores []scoring.PeriodScore
}

const (
	recalcStatusSuccess = "success"
	recalcStatusFailed  = "failed"
)

type SeasonRecalcResult struct {
	SeasonID     string
	WorkerCount  int
	SuccessCount int
	FailedCount  int
	Periods      []PeriodRecalcResult
}

type PeriodRecalcResult struct {
	PeriodID     string
	PeriodNumber int
	Status       string
	Participants int
	DurationMs   int64
	Message      string
}

// RulesView explains how a season's scoring rules were resolved.
type RulesView struct {
	SeasonID string
	Defaults scoring.Rules
	Override scoring.Override
	Resolved scoring.Rules
}

type LockStatus struct {
	PeriodID           string
	PeriodNumber       int
	ReleaseAt          time.Time
	LockOverride       bool
	SpoilerLockEnabled bool
	Locked             bool
}

func NewScoringService(
	seasonRepo season.Repository,
	periodRepo period.Repository,
	castawayRepo castaway.Repository,
	scoringRepo scoring.Repository,
	standings scoring.StandingsCache,
	idGen id.Generator,
	logger *logging.Logger,
	workers int,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = defaultRecalculateWorkers
	}

	return &ScoringService{
		seasonRepo:   seasonRepo,
		periodRepo:   periodRepo,
		castawayRepo: castawayRepo,
		scoringRepo:  scoringRepo,
		standings:    standings,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
		workers:      workers,
		standingsGen: make(map[string]uint64),
	}
}

// RecordOutcome appends an outcome event and reconciles its period.
func (s *ScoringService) RecordOutcome(ctx context.Context, input RecordOutcomeInput) (_ OutcomeResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecordOutcome", seasonAttr(input.SeasonID), periodAttr(input.PeriodID))
	defer func() {
		recordSpanError(span, err)
		span.End()
	}()

	input.SeasonID = strings.TrimSpace(input.SeasonID)
	input.PeriodID = strings.TrimSpace(input.PeriodID)
	input.CastawayID = strings.TrimSpace(input.CastawayID)
	input.Note = strings.TrimSpace(input.Note)
	if input.SeasonID == "" || input.PeriodID == "" || input.CastawayID == "" {
		return OutcomeResult{}, fmt.Errorf("%w: season id, period id and castaway id are required", ErrInvalidInput)
	}
	kind, err := scoring.ParseKind(input.Kind)
	if err != nil {
		return OutcomeResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ss, p, err := s.loadSeasonPeriod(ctx, input.SeasonID, input.PeriodID)
	if err != nil {
		return OutcomeResult{}, err
	}

	c, exists, err := s.castawayRepo.GetByID(ctx, input.CastawayID)
	if err != nil {
		return OutcomeResult{}, fmt.Errorf("get castaway: %w", err)
	}
	if !exists || c.SeasonID != ss.ID {
		return OutcomeResult{}, fmt.Errorf("%w: castaway=%s season=%s", ErrNotFound, input.CastawayID, ss.ID)
	}

	now := s.now().UTC()
	if !p.LockOverride {
		if err := period.ValidateNotLocked(p, ss.SpoilerLockEnabled, now); err != nil {
			return OutcomeResult{}, fmt.Errorf("record outcome: %w", err)
		}
	}

	eventID, err := s.idGen.NewID()
	if err != nil {
		return OutcomeResult{}, fmt.Errorf("generate outcome id: %w", err)
	}
	event := scoring.Event{
		ID:         eventID,
		SeasonID:   ss.ID,
		PeriodID:   p.ID,
		CastawayID: c.ID,
		Kind:       kind,
		Note:       input.Note,
		RecordedBy: strings.TrimSpace(input.RecordedBy),
		CreatedAt:  now,
	}
	if err := s.scoringRepo.CreateEvent(ctx, event); err != nil {
		return OutcomeResult{}, fmt.Errorf("create outcome event: %w", err)
	}

	scores, err := s.reconcile(ctx, ss, p)
	if err != nil {
		return OutcomeResult{}, err
	}

	s.logger.InfoContext(ctx, "outcome recorded",
		"season_id", ss.ID,
		"period_id", p.ID,
		"castaway_id", c.ID,
		"kind", string(kind),
		"participants", len(scores),
	)

	return OutcomeResult{Event: event, Scores: scores}, nil
}

// DeleteOutcome removes an outcome event and reconciles its period.
func (s *ScoringService) DeleteOutcome(ctx context.Context, seasonID, eventID string) ([]scoring.PeriodScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.DeleteOutcome", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	eventID = strings.TrimSpace(eventID)
	if seasonID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: season id and outcome id are required", ErrInvalidInput)
	}

	event, exists, err := s.scoringRepo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get outcome event: %w", err)
	}
	if !exists || event.SeasonID != seasonID {
		return nil, fmt.Errorf("%w: outcome=%s season=%s", ErrNotFound, eventID, seasonID)
	}

	ss, p, err := s.loadSeasonPeriod(ctx, seasonID, event.PeriodID)
	if err != nil {
		return nil, err
	}

	if err := s.scoringRepo.DeleteEvent(ctx, eventID); err != nil {
		return nil, fmt.Errorf("delete outcome event: %w", err)
	}

	scores, err := s.reconcile(ctx, ss, p)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "outcome deleted",
		"season_id", ss.ID,
		"period_id", p.ID,
		"outcome_id", eventID,
	)
	return scores, nil
}

// Recalculate rebuilds every participant's score for one period.
func (s *ScoringService) Recalculate(ctx context.Context, seasonID, periodID string) (_ []scoring.PeriodScore, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.Recalculate", seasonAttr(seasonID), periodAttr(periodID))
	defer func() {
		recordSpanError(span, err)
		span.End()
	}()

	seasonID = strings.TrimSpace(seasonID)
	periodID = strings.TrimSpace(periodID)
	if seasonID == "" || periodID == "" {
		return nil, fmt.Errorf("%w: season id and period id are required", ErrInvalidInput)
	}

	ss, p, err := s.loadSeasonPeriod(ctx, seasonID, periodID)
	if err != nil {
		return nil, err
	}

	return s.reconcile(ctx, ss, p)
}

// RecalculateSeason reconciles every period of the season on a bounded
// worker pool. Failures are reported per period.
func (s *ScoringService) RecalculateSeason(ctx context.Context, seasonID string) (SeasonRecalcResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecalculateSeason", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return SeasonRecalcResult{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	ss, err := s.loadSeason(ctx, seasonID)
	if err != nil {
		return SeasonRecalcResult{}, err
	}

	periods, err := s.periodRepo.ListBySeason(ctx, ss.ID)
	if err != nil {
		return SeasonRecalcResult{}, fmt.Errorf("list periods: %w", err)
	}

	workerCount := s.workers
	if workerCount > len(periods) {
		workerCount = len(periods)
	}
	result := SeasonRecalcResult{
		SeasonID:    ss.ID,
		WorkerCount: workerCount,
		Periods:     make([]PeriodRecalcResult, 0, len(periods)),
	}
	if len(periods) == 0 {
		return result, nil
	}

	workerPool, err := ants.NewPool(workerCount)
	if err != nil {
		return SeasonRecalcResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	results := make(chan PeriodRecalcResult, len(periods))
	var workers sync.WaitGroup
	for _, p := range periods {
		p := p
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := PeriodRecalcResult{
				PeriodID:     p.ID,
				PeriodNumber: p.Number,
				Status:       recalcStatusSuccess,
			}
			scores, err := s.reconcile(ctx, ss, p)
			if err != nil {
				row.Status = recalcStatusFailed
				row.Message = err.Error()
			}
			row.Participants = len(scores)
			row.DurationMs = time.Since(start).Milliseconds()
			results <- row
		}); err != nil {
			workers.Done()
			return SeasonRecalcResult{}, fmt.Errorf("submit period to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		if row.Status == recalcStatusSuccess {
			result.SuccessCount++
		} else {
			result.FailedCount++
		}
		result.Periods = append(result.Periods, row)
	}
	sort.Slice(result.Periods, func(i, j int) bool {
		return result.Periods[i].PeriodNumber < result.Periods[j].PeriodNumber
	})

	s.logger.InfoContext(ctx, "season recalculated",
		"season_id", ss.ID,
		"periods", len(periods),
		"failed", result.FailedCount,
		"workers", workerCount,
	)
	return result, nil
}

// ListPeriodScores returns a period's scores, highest first.
func (s *ScoringService) ListPeriodScores(ctx context.Context, seasonID, periodID string) ([]scoring.PeriodScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ListPeriodScores", seasonAttr(seasonID), periodAttr(periodID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	periodID = strings.TrimSpace(periodID)
	if seasonID == "" || periodID == "" {
		return nil, fmt.Errorf("%w: season id and period id are required", ErrInvalidInput)
	}

	if _, _, err := s.loadSeasonPeriod(ctx, seasonID, periodID); err != nil {
		return nil, err
	}

	items, err := s.scoringRepo.ListPeriodScores(ctx, seasonID, periodID)
	if err != nil {
		return nil, fmt.Errorf("list period scores: %w", err)
	}
	scoring.SortPeriodScores(items)
	return items, nil
}

func (s *ScoringService) Standings(ctx context.Context, seasonID string) ([]scoring.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.Standings", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	if _, err := s.loadSeason(ctx, seasonID); err != nil {
		return nil, err
	}

	if s.standings != nil {
		cached, ok, err := s.standings.Get(ctx, seasonID)
		if err != nil {
			s.logger.WarnContext(ctx, "standings cache read failed", "season_id", seasonID, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	gen := s.standingsGeneration(seasonID)
	key := fmt.Sprintf("standings:%s:%d", seasonID, gen)
	value, err, _ := s.standingsFlight.Do(key, func() (any, error) {
		return s.deriveStandings(context.WithoutCancel(ctx), seasonID, gen)
	})
	if err != nil {
		return nil, err
	}
	return value.([]scoring.Standing), nil
}

// deriveStandings runs detached from any single caller's cancellation since
// its result is shared by every caller waiting on the same flight.
func (s *ScoringService) deriveStandings(ctx context.Context, seasonID string, gen uint64) ([]scoring.Standing, error) {
	scores, err := s.scoringRepo.ListSeasonScores(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list season scores: %w", err)
	}
	periods, err := s.periodRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list periods: %w", err)
	}

	numbers := make(map[string]int, len(periods))
	for _, p := range periods {
		numbers[p.ID] = p.Number
	}
	standings := scoring.DeriveStandings(scores, numbers)

	s.cacheStandings(ctx, seasonID, gen, standings)
	return standings, nil
}

// cacheStandings writes standings read at generation gen. Reconciliation
// bumps the generation before it invalidates, so a bump seen after the write
// means the write may have landed after that invalidation.
func (s *ScoringService) cacheStandings(ctx context.Context, seasonID string, gen uint64, standings []scoring.Standing) {
	if s.standings == nil {
		return
	}
	if s.standingsGeneration(seasonID) != gen {
		s.logger.DebugContext(ctx, "standings changed while deriving, not cached", "season_id", seasonID)
		return
	}
	if err := s.standings.Set(ctx, seasonID, standings); err != nil {
		s.logger.WarnContext(ctx, "standings cache write failed", "season_id", seasonID, "error", err)
		return
	}
	if s.standingsGeneration(seasonID) != gen {
		if err := s.standings.Invalidate(ctx, seasonID); err != nil {
			s.logger.WarnContext(ctx, "standings cache invalidate failed", "season_id", seasonID, "error", err)
		}
	}
}

func (s *ScoringService) standingsGeneration(seasonID string) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.standingsGen[seasonID]
}

func (s *ScoringService) bumpStandingsGeneration(seasonID string) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	if s.standingsGen == nil {
		s.standingsGen = make(map[string]uint64)
	}
	s.standingsGen[seasonID]++
}

func (s *ScoringService) ScoringRules(ctx context.Context, seasonID string) (RulesView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoringRules", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return RulesView{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	ss, err := s.loadSeason(ctx, seasonID)
	if err != nil {
		return RulesView{}, err
	}

	return RulesView{
		SeasonID: ss.ID,
		Defaults: scoring.DefaultRules(),
		Override: ss.ScoringOverride,
		Resolved: ss.Rules(),
	}, nil
}

func (s *ScoringService) PeriodLockStatus(ctx context.Context, seasonID, periodID string) (LockStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.PeriodLockStatus", seasonAttr(seasonID), periodAttr(periodID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	periodID = strings.TrimSpace(periodID)
	if seasonID == "" || periodID == "" {
		return LockStatus{}, fmt.Errorf("%w: season id and period id are required", ErrInvalidInput)
	}

	ss, p, err := s.loadSeasonPeriod(ctx, seasonID, periodID)
	if err != nil {
		return LockStatus{}, err
	}

	return LockStatus{
		PeriodID:           p.ID,
		PeriodNumber:       p.Number,
		ReleaseAt:          p.ReleaseAt,
		LockOverride:       p.LockOverride,
		SpoilerLockEnabled: ss.SpoilerLockEnabled,
		Locked:             period.IsLocked(p, ss.SpoilerLockEnabled, s.now().UTC()),
	}, nil
}

func (s *ScoringService) reconcile(ctx context.Context, ss season.Season, p period.Period) ([]scoring.PeriodScore, error) {
	rules := ss.Rules()
	at := s.now().UTC()

	scores, err := s.scoringRepo.ReconcilePeriod(ctx, ss.ID, p.ID, func(events []scoring.Event, entries []roster.Entry) ([]scoring.PeriodScore, error) {
		return scoring.Reconcile(ss.ID, p.ID, events, entries, rules, at), nil
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile period %s: %w", p.ID, err)
	}

	s.bumpStandingsGeneration(ss.ID)
	if s.standings != nil {
		if err := s.standings.Invalidate(ctx, ss.ID); err != nil {
			s.logger.WarnContext(ctx, "standings cache invalidate failed", "season_id", ss.ID, "error", err)
		}
	}
	return scores, nil
}

func (s *ScoringService) loadSeason(ctx context.Context, seasonID string) (season.Season, error) {
	ss, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	return ss.WithDefaults(), nil
}

func (s *ScoringService) loadSeasonPeriod(ctx context.Context, seasonID, periodID string) (season.Season, period.Period, error) {
	ss, err := s.loadSeason(ctx, seasonID)
	if err != nil {
		return season.Season{}, period.Period{}, err
	}

	p, exists, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return season.Season{}, period.Period{}, fmt.Errorf("get period: %w", err)
	}
	if !exists || p.SeasonID != ss.ID {
		return season.Season{}, period.Period{}, fmt.Errorf("%w: period=%s season=%s", ErrNotFound, periodID, ss.ID)
	}
	return ss, p, nil
}
