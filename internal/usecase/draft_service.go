package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	"github.com/riskibarqy/castaway-league/internal/platform/id"
	"github.com/riskibarqy/castaway-league/internal/platform/logging"
)

type DraftService struct {
	seasonRepo   season.Repository
	leagueRepo   league.Repository
	castawayRepo castaway.Repository
	draftRepo    draft.Repository
	rosterRepo   roster.Repository
	idGen        id.Generator
	logger       *logging.Logger
	now          func() time.Time
}

// DraftBoard is a season's draft as seen by one participant.
type DraftBoard struct {
	Draft           draft.Draft
	Style           draft.Style
	TotalPicks      int
	ParticipantIDs  []string
	Picks           []draft.Pick
	Available       []castaway.Castaway
	CurrentPickerID string
	IsMyTurn        bool
}

type MakePickInput struct {
	DraftID       string
	ParticipantID string
	CastawayID    string
}

type PickResult struct {
	Pick              draft.Pick
	Completed         bool
	NextParticipantID string
}

func NewDraftService(
	seasonRepo season.Repository,
	leagueRepo league.Repository,
	castawayRepo castaway.Repository,
	draftRepo draft.Repository,
	rosterRepo roster.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DraftService{
		seasonRepo:   seasonRepo,
		leagueRepo:   leagueRepo,
		castawayRepo: castawayRepo,
		draftRepo:    draftRepo,
		rosterRepo:   rosterRepo,
		idGen:        idGen,
		logger:       logger,
		now:          time.Now,
	}
}

// GetOrCreateDraft returns the season's draft board, creating the draft on
// first access.
func (s *DraftService) GetOrCreateDraft(ctx context.Context, seasonID, viewerID string) (DraftBoard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetOrCreateDraft", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return DraftBoard{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, setup, err := s.loadSetup(ctx, seasonID)
	if err != nil {
		return DraftBoard{}, err
	}

	d, err := s.ensureDraft(ctx, seasonID)
	if err != nil {
		return DraftBoard{}, err
	}

	var (
		picks     []draft.Pick
		castaways []castaway.Castaway
	)
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.draftRepo.ListPicks(ctx, d.ID)
		if err != nil {
			return fmt.Errorf("list draft picks: %w", err)
		}
		picks = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.castawayRepo.ListBySeason(ctx, seasonID)
		if err != nil {
			return fmt.Errorf("list castaways: %w", err)
		}
		castaways = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return DraftBoard{}, err
	}

	taken := make(map[string]struct{}, len(picks))
	for _, pick := range picks {
		taken[pick.CastawayID] = struct{}{}
	}
	available := make([]castaway.Castaway, 0, len(castaways))
	for _, c := range castaways {
		if _, ok := taken[c.ID]; !ok {
			available = append(available, c)
		}
	}

	picker, _ := draft.CurrentPicker(d, setup)
	viewerID = strings.TrimSpace(viewerID)
	return DraftBoard{
		Draft:           d,
		Style:           setup.Style,
		TotalPicks:      setup.TotalPicks(),
		ParticipantIDs:  setup.ParticipantIDs,
		Picks:           picks,
		Available:       available,
		CurrentPickerID: picker,
		IsMyTurn:        picker != "" && picker == viewerID,
	}, nil
}

// CurrentPicker reports who is on the clock for the season's draft. A season
// without a draft yet reports the first picker.
func (s *DraftService) CurrentPicker(ctx context.Context, seasonID string) (string, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.CurrentPicker", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return "", false, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	_, setup, err := s.loadSetup(ctx, seasonID)
	if err != nil {
		return "", false, err
	}

	d, exists, err := s.draftRepo.GetBySeason(ctx, seasonID)
	if err != nil {
		return "", false, fmt.Errorf("get draft by season: %w", err)
	}
	if !exists {
		d = draft.New("", seasonID, s.now().UTC())
	}

	picker, ok := draft.CurrentPicker(d, setup)
	return picker, ok, nil
}

func (s *DraftService) MakePick(ctx context.Context, input MakePickInput) (_ PickResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.MakePick")
	defer func() {
		recordSpanError(span, err)
		span.End()
	}()

	input.DraftID = strings.TrimSpace(input.DraftID)
	input.ParticipantID = strings.TrimSpace(input.ParticipantID)
	input.CastawayID = strings.TrimSpace(input.CastawayID)
	switch {
	case input.DraftID == "":
		return PickResult{}, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	case input.ParticipantID == "":
		return PickResult{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	case input.CastawayID == "":
		return PickResult{}, fmt.Errorf("%w: castaway id is required", ErrInvalidInput)
	}

	d, exists, err := s.draftRepo.GetByID(ctx, input.DraftID)
	if err != nil {
		return PickResult{}, fmt.Errorf("get draft: %w", err)
	}
	if !exists {
		return PickResult{}, fmt.Errorf("%w: draft=%s", ErrNotFound, input.DraftID)
	}

	_, setup, err := s.loadSetup(ctx, d.SeasonID)
	if err != nil {
		return PickResult{}, err
	}

	c, exists, err := s.castawayRepo.GetByID(ctx, input.CastawayID)
	if err != nil {
		return PickResult{}, fmt.Errorf("get castaway: %w", err)
	}
	if !exists || c.SeasonID != d.SeasonID {
		return PickResult{}, fmt.Errorf("%w: castaway=%s season=%s", ErrNotFound, input.CastawayID, d.SeasonID)
	}

	pickID, err := s.idGen.NewID()
	if err != nil {
		return PickResult{}, fmt.Errorf("generate pick id: %w", err)
	}
	entryID, err := s.idGen.NewID()
	if err != nil {
		return PickResult{}, fmt.Errorf("generate roster entry id: %w", err)
	}

	req := draft.PickRequest{
		ParticipantID: input.ParticipantID,
		CastawayID:    input.CastawayID,
		PickID:        pickID,
		RosterEntryID: entryID,
		At:            s.now().UTC(),
	}
	transition, err := s.draftRepo.ApplyPick(ctx, d.ID, func(current draft.Draft, picks []draft.Pick) (draft.Transition, error) {
		return draft.Apply(current, picks, setup, req)
	})
	if err != nil {
		if errors.Is(err, draft.ErrNotFound) {
			return PickResult{}, fmt.Errorf("%w: draft=%s", ErrNotFound, d.ID)
		}
		s.logger.InfoContext(ctx, "draft pick rejected",
			"draft_id", d.ID,
			"participant_id", input.ParticipantID,
			"castaway_id", input.CastawayID,
			"error", err,
		)
		return PickResult{}, fmt.Errorf("apply pick: %w", err)
	}

	s.logger.InfoContext(ctx, "draft pick applied",
		"draft_id", d.ID,
		"pick_number", transition.Pick.PickNumber,
		"participant_id", input.ParticipantID,
		"castaway_id", input.CastawayID,
		"completed", transition.Completed(),
	)

	return PickResult{
		Pick:              transition.Pick,
		Completed:         transition.Completed(),
		NextParticipantID: transition.Draft.CurrentParticipantID,
	}, nil
}

func (s *DraftService) ListRoster(ctx context.Context, seasonID, participantID string) ([]roster.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListRoster", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	participantID = strings.TrimSpace(participantID)
	if seasonID == "" || participantID == "" {
		return nil, fmt.Errorf("%w: season id and participant id are required", ErrInvalidInput)
	}

	items, err := s.rosterRepo.ListByParticipant(ctx, seasonID, participantID)
	if err != nil {
		return nil, fmt.Errorf("list roster by participant: %w", err)
	}
	return items, nil
}

func (s *DraftService) ListRosters(ctx context.Context, seasonID string) ([]roster.Group, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.ListRosters", seasonAttr(seasonID))
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	items, err := s.rosterRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list rosters by season: %w", err)
	}
	return roster.GroupByParticipant(items), nil
}

func (s *DraftService) ensureDraft(ctx context.Context, seasonID string) (draft.Draft, error) {
	d, exists, err := s.draftRepo.GetBySeason(ctx, seasonID)
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get draft by season: %w", err)
	}
	if exists {
		return d, nil
	}

	draftID, err := s.idGen.NewID()
	if err != nil {
		return draft.Draft{}, fmt.Errorf("generate draft id: %w", err)
	}
	d, err = s.draftRepo.GetOrCreate(ctx, draft.New(draftID, seasonID, s.now().UTC()))
	if err != nil {
		return draft.Draft{}, fmt.Errorf("get or create draft: %w", err)
	}
	return d, nil
}

func (s *DraftService) loadSetup(ctx context.Context, seasonID string) (season.Season, draft.Setup, error) {
	ss, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, draft.Setup{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return season.Season{}, draft.Setup{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}
	ss = ss.WithDefaults()

	members, err := s.leagueRepo.ListMembers(ctx, ss.LeagueID)
	if err != nil {
		return season.Season{}, draft.Setup{}, fmt.Errorf("list league members: %w", err)
	}

	return ss, ss.DraftSetup(league.ParticipantIDs(members)), nil
}
