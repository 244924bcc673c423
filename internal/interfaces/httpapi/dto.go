package httpapi

import (
	"time"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

type makePickRequest struct {
	CastawayID string `json:"castaway_id" validate:"required"`
}

type recordOutcomeRequest struct {
	CastawayID string `json:"castaway_id" validate:"required"`
	Kind       string `json:"kind" validate:"required"`
	Note       string `json:"note" validate:"max=500"`
}

type draftDTO struct {
	ID                   string    `json:"id"`
	SeasonID             string    `json:"season_id"`
	Status               string    `json:"status"`
	CurrentPickNumber    int       `json:"current_pick_number"`
	CurrentParticipantID string    `json:"current_participant_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type pickDTO struct {
	ID            string    `json:"id"`
	PickNumber    int       `json:"pick_number"`
	ParticipantID string    `json:"participant_id"`
	CastawayID    string    `json:"castaway_id"`
	PickedAt      time.Time `json:"picked_at"`
}

type castawayDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tribe string `json:"tribe,omitempty"`
}

type draftBoardDTO struct {
	Draft           draftDTO      `json:"draft"`
	Style           string        `json:"style"`
	TotalPicks      int           `json:"total_picks"`
	ParticipantIDs  []string      `json:"participant_ids"`
	Picks           []pickDTO     `json:"picks"`
	Available       []castawayDTO `json:"available"`
	CurrentPickerID string        `json:"current_picker_id,omitempty"`
	IsMyTurn        bool          `json:"is_my_turn"`
}

type pickResultDTO struct {
	Pick              pickDTO `json:"pick"`
	Completed         bool    `json:"completed"`
	NextParticipantID string  `json:"next_participant_id,omitempty"`
}

type rosterEntryDTO struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	CastawayID    string    `json:"castaway_id"`
	AcquiredAt    time.Time `json:"acquired_at"`
}

type rosterGroupDTO struct {
	ParticipantID string           `json:"participant_id"`
	Entries       []rosterEntryDTO `json:"entries"`
}

type eventDTO struct {
	ID         string    `json:"id"`
	PeriodID   string    `json:"period_id"`
	CastawayID string    `json:"castaway_id"`
	Kind       string    `json:"kind"`
	Note       string    `json:"note,omitempty"`
	RecordedBy string    `json:"recorded_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type periodScoreDTO struct {
	ParticipantID string    `json:"participant_id"`
	PeriodID      string    `json:"period_id"`
	Score         int       `json:"score"`
	CalculatedAt  time.Time `json:"calculated_at"`
}

type outcomeResultDTO struct {
	Event  eventDTO         `json:"event"`
	Scores []periodScoreDTO `json:"scores"`
}

type periodRecalcDTO struct {
	PeriodID     string `json:"period_id"`
	PeriodNumber int    `json:"period_number"`
	Status       string `json:"status"`
	Participants int    `json:"participants"`
	DurationMs   int64  `json:"duration_ms"`
	Message      string `json:"message,omitempty"`
}

type seasonRecalcDTO struct {
	SeasonID     string            `json:"season_id"`
	WorkerCount  int               `json:"worker_count"`
	SuccessCount int               `json:"success_count"`
	FailedCount  int               `json:"failed_count"`
	Periods      []periodRecalcDTO `json:"periods"`
}

type periodTotalDTO struct {
	PeriodID     string `json:"period_id"`
	PeriodNumber int    `json:"period_number"`
	Score        int    `json:"score"`
}

type standingDTO struct {
	Rank          int              `json:"rank"`
	ParticipantID string           `json:"participant_id"`
	Total         int              `json:"total"`
	Periods       []periodTotalDTO `json:"periods"`
}

type lockStatusDTO struct {
	PeriodID           string    `json:"period_id"`
	PeriodNumber       int       `json:"period_number"`
	ReleaseAt          time.Time `json:"release_at"`
	LockOverride       bool      `json:"lock_override"`
	SpoilerLockEnabled bool      `json:"spoiler_lock_enabled"`
	Locked             bool      `json:"locked"`
}

type scoringRulesDTO struct {
	SeasonID string         `json:"season_id"`
	Defaults map[string]int `json:"defaults"`
	Override map[string]int `json:"override,omitempty"`
	Resolved map[string]int `json:"resolved"`
}

func draftToDTO(d draft.Draft) draftDTO {
	return draftDTO{
		ID:                   d.ID,
		SeasonID:             d.SeasonID,
		Status:               string(d.Status),
		CurrentPickNumber:    d.CurrentPickNumber,
		CurrentParticipantID: d.CurrentParticipantID,
		CreatedAt:            d.CreatedAt.UTC(),
		UpdatedAt:            d.UpdatedAt.UTC(),
	}
}

func pickToDTO(p draft.Pick) pickDTO {
	return pickDTO{
		ID:            p.ID,
		PickNumber:    p.PickNumber,
		ParticipantID: p.ParticipantID,
		CastawayID:    p.CastawayID,
		PickedAt:      p.PickedAt.UTC(),
	}
}

func draftBoardToDTO(b usecase.DraftBoard) draftBoardDTO {
	picks := make([]pickDTO, 0, len(b.Picks))
	for _, p := range b.Picks {
		picks = append(picks, pickToDTO(p))
	}
	available := make([]castawayDTO, 0, len(b.Available))
	for _, c := range b.Available {
		available = append(available, castawayToDTO(c))
	}

	return draftBoardDTO{
		Draft:           draftToDTO(b.Draft),
		Style:           string(b.Style),
		TotalPicks:      b.TotalPicks,
		ParticipantIDs:  append([]string{}, b.ParticipantIDs...),
		Picks:           picks,
		Available:       available,
		CurrentPickerID: b.CurrentPickerID,
		IsMyTurn:        b.IsMyTurn,
	}
}

func castawayToDTO(c castaway.Castaway) castawayDTO {
	return castawayDTO{ID: c.ID, Name: c.Name, Tribe: c.Tribe}
}

func pickResultToDTO(r usecase.PickResult) pickResultDTO {
	return pickResultDTO{
		Pick:              pickToDTO(r.Pick),
		Completed:         r.Completed,
		NextParticipantID: r.NextParticipantID,
	}
}

func rosterEntriesToDTO(entries []roster.Entry) []rosterEntryDTO {
	out := make([]rosterEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, rosterEntryDTO{
			ID:            e.ID,
			ParticipantID: e.ParticipantID,
			CastawayID:    e.CastawayID,
			AcquiredAt:    e.AcquiredAt.UTC(),
		})
	}
	return out
}

func eventToDTO(e scoring.Event) eventDTO {
	return eventDTO{
		ID:         e.ID,
		PeriodID:   e.PeriodID,
		CastawayID: e.CastawayID,
		Kind:       string(e.Kind),
		Note:       e.Note,
		RecordedBy: e.RecordedBy,
		CreatedAt:  e.CreatedAt.UTC(),
	}
}

func periodScoresToDTO(scores []scoring.PeriodScore) []periodScoreDTO {
	out := make([]periodScoreDTO, 0, len(scores))
	for _, s := range scores {
		out = append(out, periodScoreDTO{
			ParticipantID: s.ParticipantID,
			PeriodID:      s.PeriodID,
			Score:         s.Score,
			CalculatedAt:  s.CalculatedAt.UTC(),
		})
	}
	return out
}

func seasonRecalcToDTO(r usecase.SeasonRecalcResult) seasonRecalcDTO {
	periods := make([]periodRecalcDTO, 0, len(r.Periods))
	for _, p := range r.Periods {
		periods = append(periods, periodRecalcDTO{
			PeriodID:     p.PeriodID,
			PeriodNumber: p.PeriodNumber,
			Status:       p.Status,
			Participants: p.Participants,
			DurationMs:   p.DurationMs,
			Message:      p.Message,
		})
	}
	return seasonRecalcDTO{
		SeasonID:     r.SeasonID,
		WorkerCount:  r.WorkerCount,
		SuccessCount: r.SuccessCount,
		FailedCount:  r.FailedCount,
		Periods:      periods,
	}
}

func standingsToDTO(items []scoring.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		periods := make([]periodTotalDTO, 0, len(s.Periods))
		for _, p := range s.Periods {
			periods = append(periods, periodTotalDTO{PeriodID: p.PeriodID, PeriodNumber: p.PeriodNumber, Score: p.Score})
		}
		out = append(out, standingDTO{
			Rank:          s.Rank,
			ParticipantID: s.ParticipantID,
			Total:         s.Total,
			Periods:       periods,
		})
	}
	return out
}

func rulesToMap(rules scoring.Rules) map[string]int {
	out := make(map[string]int, len(rules))
	for kind, points := range rules {
		out[string(kind)] = points
	}
	return out
}
