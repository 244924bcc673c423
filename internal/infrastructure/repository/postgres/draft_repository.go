package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/roster"
	qb "github.com/riskibarqy/castaway-league/internal/platform/querybuilder"
)

const constraintDraftPickCastaway = "uq_draft_picks_castaway"

type DraftRepository struct {
	db *sqlx.DB
}

func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

func (r *DraftRepository) GetOrCreate(ctx context.Context, candidate draft.Draft) (draft.Draft, error) {
	insertModel := draftInsertModel{
		PublicID:          candidate.ID,
		SeasonID:          candidate.SeasonID,
		Status:            string(candidate.Status),
		CurrentPickNumber: candidate.CurrentPickNumber,
		CreatedAt:         candidate.CreatedAt,
		UpdatedAt:         candidate.UpdatedAt,
	}
	query, args, err := qb.InsertModel("drafts", insertModel).
		OnConflict(qb.OnConflict("season_public_id")).
		ToSQL()
	if err != nil {
		return draft.Draft{}, fmt.Errorf("build insert draft query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return draft.Draft{}, fmt.Errorf("insert draft season=%s: %w", candidate.SeasonID, err)
	}

	d, exists, err := r.GetBySeason(ctx, candidate.SeasonID)
	if err != nil {
		return draft.Draft{}, err
	}
	if !exists {
		return draft.Draft{}, fmt.Errorf("draft for season=%s missing after insert", candidate.SeasonID)
	}
	return d, nil
}

func (r *DraftRepository) GetByID(ctx context.Context, draftID string) (draft.Draft, bool, error) {
	return r.getOne(ctx, r.db, qb.Eq("public_id", draftID), false)
}

func (r *DraftRepository) GetBySeason(ctx context.Context, seasonID string) (draft.Draft, bool, error) {
	return r.getOne(ctx, r.db, qb.Eq("season_public_id", seasonID), false)
}

func (r *DraftRepository) ListPicks(ctx context.Context, draftID string) ([]draft.Pick, error) {
	return r.listPicks(ctx, r.db, draftID)
}

// ApplyPick row-locks the draft, hands the locked state to fn and writes the
// pick, the roster entry and the advanced draft in the same transaction.
func (r *DraftRepository) ApplyPick(ctx context.Context, draftID string, fn draft.ApplyFunc) (draft.Transition, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return draft.Transition{}, fmt.Errorf("begin tx apply pick: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, exists, err := r.getOne(ctx, tx, qb.Eq("public_id", draftID), true)
	if err != nil {
		return draft.Transition{}, err
	}
	if !exists {
		return draft.Transition{}, crerr.Wrapf(draft.ErrNotFound, "draft %s", draftID)
	}

	picks, err := r.listPicks(ctx, tx, draftID)
	if err != nil {
		return draft.Transition{}, err
	}

	transition, err := fn(current, picks)
	if err != nil {
		return draft.Transition{}, err
	}

	pickQuery, pickArgs, err := qb.InsertModel("draft_picks", draftPickInsertModel{
		PublicID:      transition.Pick.ID,
		DraftID:       transition.Pick.DraftID,
		PickNumber:    transition.Pick.PickNumber,
		ParticipantID: transition.Pick.ParticipantID,
		CastawayID:    transition.Pick.CastawayID,
		PickedAt:      transition.Pick.PickedAt,
	}).ToSQL()
	if err != nil {
		return draft.Transition{}, fmt.Errorf("build insert draft pick query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, pickQuery, pickArgs...); err != nil {
		if isUniqueViolation(err, constraintDraftPickCastaway) {
			return draft.Transition{}, crerr.Wrapf(draft.ErrEntityTaken, "castaway %s", transition.Pick.CastawayID)
		}
		return draft.Transition{}, fmt.Errorf("insert draft pick number=%d: %w", transition.Pick.PickNumber, err)
	}

	entryQuery, entryArgs, err := qb.InsertModel("roster_entries", rosterEntryInsertModel{
		PublicID:      transition.Entry.ID,
		SeasonID:      transition.Entry.SeasonID,
		ParticipantID: transition.Entry.ParticipantID,
		CastawayID:    transition.Entry.CastawayID,
		AcquiredAt:    transition.Entry.AcquiredAt,
	}).ToSQL()
	if err != nil {
		return draft.Transition{}, fmt.Errorf("build insert roster entry query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, entryQuery, entryArgs...); err != nil {
		return draft.Transition{}, fmt.Errorf("insert roster entry: %w", err)
	}

	next := transition.Draft
	updateQuery, updateArgs, err := qb.Update("drafts").
		Set("status", string(next.Status)).
		Set("current_pick_number", next.CurrentPickNumber).
		Set("current_participant_id", nullString(next.CurrentParticipantID)).
		Set("updated_at", next.UpdatedAt).
		Where(qb.Eq("public_id", draftID)).
		ToSQL()
	if err != nil {
		return draft.Transition{}, fmt.Errorf("build update draft query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
		return draft.Transition{}, fmt.Errorf("update draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return draft.Transition{}, fmt.Errorf("commit apply pick tx: %w", err)
	}
	return transition, nil
}

func (r *DraftRepository) getOne(ctx context.Context, q sqlx.QueryerContext, cond qb.Condition, forUpdate bool) (draft.Draft, bool, error) {
	builder := qb.Select("*").From("drafts").Where(cond)
	if forUpdate {
		builder = builder.ForUpdate()
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return draft.Draft{}, false, fmt.Errorf("build get draft query: %w", err)
	}

	var row draftTableModel
	if err := sqlx.GetContext(ctx, q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draft.Draft{}, false, nil
		}
		return draft.Draft{}, false, fmt.Errorf("get draft: %w", err)
	}

	return draft.Draft{
		ID:                   row.PublicID,
		SeasonID:             row.SeasonID,
		Status:               draft.Status(row.Status),
		CurrentPickNumber:    row.CurrentPickNumber,
		CurrentParticipantID: row.CurrentParticipantID.String,
		CreatedAt:            row.CreatedAt,
		UpdatedAt:            row.UpdatedAt,
	}, true, nil
}

func (r *DraftRepository) listPicks(ctx context.Context, q sqlx.QueryerContext, draftID string) ([]draft.Pick, error) {
	query, args, err := qb.Select("*").From("draft_picks").
		Where(qb.Eq("draft_public_id", draftID)).
		OrderBy("pick_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list draft picks query: %w", err)
	}

	var rows []draftPickTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select draft picks: %w", err)
	}

	out := make([]draft.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, draft.Pick{
			ID:            row.PublicID,
			DraftID:       row.DraftID,
			PickNumber:    row.PickNumber,
			ParticipantID: row.ParticipantID,
			CastawayID:    row.CastawayID,
			PickedAt:      row.PickedAt,
		})
	}
	return out, nil
}

type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListBySeason(ctx context.Context, seasonID string) ([]roster.Entry, error) {
	return listRosterEntries(ctx, r.db, qb.Eq("season_public_id", seasonID))
}

func (r *RosterRepository) ListByParticipant(ctx context.Context, seasonID, participantID string) ([]roster.Entry, error) {
	return listRosterEntries(ctx, r.db,
		qb.Eq("season_public_id", seasonID),
		qb.Eq("participant_id", participantID),
	)
}

func listRosterEntries(ctx context.Context, q sqlx.QueryerContext, conds ...qb.Condition) ([]roster.Entry, error) {
	query, args, err := qb.Select("*").From("roster_entries").
		Where(conds...).
		OrderBy("acquired_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list roster entries query: %w", err)
	}

	var rows []rosterEntryTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster entries: %w", err)
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Entry{
			ID:            row.PublicID,
			SeasonID:      row.SeasonID,
			ParticipantID: row.ParticipantID,
			CastawayID:    row.CastawayID,
			AcquiredAt:    row.AcquiredAt,
		})
	}
	return out, nil
}
