package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/castaway-league/internal/domain/league"
	"github.com/riskibarqy/castaway-league/internal/usecase"
)

func (h *Handler) GetDraftBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftBoard")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	principal, err := h.authorizeSeason(ctx, seasonID, league.RoleMember)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.draftService.GetOrCreateDraft(ctx, seasonID, principal.ParticipantID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft board failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftBoardToDTO(board))
}

func (h *Handler) MakePick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MakePick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	draftID := pathValue(r, "draftID")
	if _, err := h.accessService.AuthorizeDraft(ctx, draftID, principal.ParticipantID, league.RoleMember); err != nil {
		writeError(ctx, w, err)
		return
	}

	var req makePickRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.draftService.MakePick(ctx, usecase.MakePickInput{
		DraftID:       draftID,
		ParticipantID: principal.ParticipantID,
		CastawayID:    req.CastawayID,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, pickResultToDTO(result))
}

func (h *Handler) ListRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRosters")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	if _, err := h.authorizeSeason(ctx, seasonID, league.RoleMember); err != nil {
		writeError(ctx, w, err)
		return
	}

	groups, err := h.draftService.ListRosters(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list rosters failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]rosterGroupDTO, 0, len(groups))
	for _, g := range groups {
		items = append(items, rosterGroupDTO{
			ParticipantID: g.ParticipantID,
			Entries:       rosterEntriesToDTO(g.Entries),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMyRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyRoster")
	defer span.End()

	seasonID := pathValue(r, "seasonID")
	principal, err := h.authorizeSeason(ctx, seasonID, league.RoleMember)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.draftService.ListRoster(ctx, seasonID, principal.ParticipantID)
	if err != nil {
		h.logger.WarnContext(ctx, "list my roster failed", "season_id", seasonID, "participant_id", principal.ParticipantID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rosterEntriesToDTO(entries))
}
