package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/observability"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

func (h *Handler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordOutcome")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	periodID := pathValue(r, "periodID")
	principal, err := h.authorizeSeason(ctx, seasonID, league.RoleCommissioner)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordOutcomeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scoringService.RecordOutcome(ctx, usecase.RecordOutcomeInput{
		SeasonID:   seasonID,
		PeriodID:   periodID,
		CastawayID: req.CastawayID,
		Kind:       req.Kind,
		Note:       req.Note,
		RecordedBy: principal.ParticipantID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record outcome failed", "season_id", seasonID, "period_id", periodID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, outcomeResultDTO{
		Event:  eventToDTO(result.Event),
		Scores: periodScoresToDTO(result.Scores),
	})
}

func (h *Handler) DeleteOutcome(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteOutcome")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	outcomeID := pathValue(r, "outcomeID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleCommissioner); err != nil {
		writeError(ctx, w, err)
		return
	}

	scores, err := h.scoringService.DeleteOutcome(ctx, seasonID, outcomeID)
	if err != nil {
		h.logger.WarnContext(ctx, "delete outcome failed", "season_id", seasonID, "outcome_id", outcomeID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, periodScoresToDTO(scores))
}

func (h *Handler) RecalculatePeriod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculatePeriod")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	periodID := pathValue(r, "periodID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleCommissioner); err != nil {
		writeError(ctx, w, err)
		return
	}

	scores, err := h.scoringService.Recalculate(ctx, seasonID, periodID)
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate period failed", "season_id", seasonID, "period_id", periodID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, periodScoresToDTO(scores))
}

func (h *Handler) RecalculateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateSeason")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleCommissioner); err != nil {
		writeError(ctx, w, err)
		return
	}

	var (
		result usecase.SeasonRecalcResult
		err    error
	)
	observability.ProfileSeason(ctx, seasonID, func(ctx context.Context) {
		result, err = h.scoringService.RecalculateSeason(ctx, seasonID)
	})
	if err != nil {
		h.logger.WarnContext(ctx, "recalculate season failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonRecalcToDTO(result))
}

func (h *Handler) ListPeriodScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPeriodScores")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	periodID := pathValue(r, "periodID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleMember); err != nil {
		writeError(ctx, w, err)
		return
	}

	scores, err := h.scoringService.ListPeriodScores(ctx, seasonID, periodID)
	if err != nil {
		h.logger.WarnContext(ctx, "list period scores failed", "season_id", seasonID, "period_id", periodID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, periodScoresToDTO(scores))
}

func (h *Handler) GetPeriodLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPeriodLock")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	periodID := pathValue(r, "periodID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleMember); err != nil {
		writeError(ctx, w, err)
		return
	}

	status, err := h.scoringService.PeriodLockStatus(ctx, seasonID, periodID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockStatusDTO{
		PeriodID:           status.PeriodID,
		PeriodNumber:       status.PeriodNumber,
		ReleaseAt:          status.ReleaseAt.UTC(),
		LockOverride:       status.LockOverride,
		SpoilerLockEnabled: status.SpoilerLockEnabled,
		Locked:             status.Locked,
	})
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleMember); err != nil {
		writeError(ctx, w, err)
		return
	}

	standings, err := h.scoringService.Standings(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings))
}

func (h *Handler) GetScoringRules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoringRules")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleMember); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.scoringService.ScoringRules(ctx, seasonID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoringRulesDTO{
		SeasonID: view.SeasonID,
		Defaults: rulesToMap(view.Defaults),
		Override: view.Override.Raw(),
		Resolved: rulesToMap(view.Resolved),
	})
}
