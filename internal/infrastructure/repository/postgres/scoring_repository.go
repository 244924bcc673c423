package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	qb "github.com/riskibarqy/castaway-league/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) CreateEvent(ctx context.Context, event scoring.Event) error {
	query, args, err := qb.InsertModel("outcome_events", outcomeEventInsertModel{
		PublicID:   event.ID,
		SeasonID:   event.SeasonID,
		PeriodID:   event.PeriodID,
		CastawayID: event.CastawayID,
		Kind:       string(event.Kind),
		Note:       event.Note,
		RecordedBy: event.RecordedBy,
		CreatedAt:  event.CreatedAt,
	}).ToSQL()
	if err != nil {
		return fmt.Errorf("build insert outcome event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert outcome event: %w", err)
	}
	return nil
}

func (r *ScoringRepository) GetEvent(ctx context.Context, eventID string) (scoring.Event, bool, error) {
	query, args, err := qb.Select("*").From("outcome_events").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return scoring.Event{}, false, fmt.Errorf("build get outcome event query: %w", err)
	}

	var row outcomeEventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.Event{}, false, nil
		}
		return scoring.Event{}, false, fmt.Errorf("get outcome event: %w", err)
	}
	return eventFromRow(row), true, nil
}

// DeleteEvent soft-deletes so the log keeps an audit trail.
func (r *ScoringRepository) DeleteEvent(ctx context.Context, eventID string) error {
	query, args, err := qb.Update("outcome_events").
		SetRaw("deleted_at", "NOW()").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete outcome event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete outcome event: %w", err)
	}
	return nil
}

func (r *ScoringRepository) ListEvents(ctx context.Context, seasonID, periodID string) ([]scoring.Event, error) {
	return listEvents(ctx, r.db, seasonID, periodID)
}

// ReconcilePeriod takes a transaction-scoped advisory lock on the period so
// concurrent reconciliations of it run one after another, then replaces the
// period's scores with compute's rows.
func (r *ScoringRepository) ReconcilePeriod(ctx context.Context, seasonID, periodID string, compute scoring.ComputeFunc) ([]scoring.PeriodScore, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx reconcile period: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, seasonID+":"+periodID); err != nil {
		return nil, fmt.Errorf("lock period %s: %w", periodID, err)
	}

	events, err := listEvents(ctx, tx, seasonID, periodID)
	if err != nil {
		return nil, err
	}
	entries, err := listRosterEntries(ctx, tx, qb.Eq("season_public_id", seasonID))
	if err != nil {
		return nil, err
	}

	scores, err := compute(events, entries)
	if err != nil {
		return nil, err
	}

	clearQuery, clearArgs, err := qb.Delete("period_scores").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("period_public_id", periodID),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build clear period scores query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return nil, fmt.Errorf("clear period scores: %w", err)
	}

	if len(scores) > 0 {
		rows := make([]periodScoreInsertModel, 0, len(scores))
		for _, s := range scores {
			rows = append(rows, periodScoreInsertModel{
				ParticipantID: s.ParticipantID,
				SeasonID:      s.SeasonID,
				PeriodID:      s.PeriodID,
				Score:         s.Score,
				CalculatedAt:  s.CalculatedAt,
			})
		}
		query, args, err := qb.InsertModels("period_scores", rows).
			OnConflict(qb.OnConflict("participant_id", "season_public_id", "period_public_id").DoUpdate("score", "calculated_at")).
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build upsert period scores query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("upsert period scores period=%s: %w", periodID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile period tx: %w", err)
	}
	return scores, nil
}

func (r *ScoringRepository) ListPeriodScores(ctx context.Context, seasonID, periodID string) ([]scoring.PeriodScore, error) {
	return r.listScores(ctx,
		qb.Eq("season_public_id", seasonID),
		qb.Eq("period_public_id", periodID),
	)
}

func (r *ScoringRepository) ListSeasonScores(ctx context.Context, seasonID string) ([]scoring.PeriodScore, error) {
	return r.listScores(ctx, qb.Eq("season_public_id", seasonID))
}

func (r *ScoringRepository) listScores(ctx context.Context, conds ...qb.Condition) ([]scoring.PeriodScore, error) {
	query, args, err := qb.Select("*").From("period_scores").
		Where(conds...).
		OrderBy("period_public_id", "participant_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list period scores query: %w", err)
	}

	var rows []periodScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select period scores: %w", err)
	}

	out := make([]scoring.PeriodScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.PeriodScore{
			ParticipantID: row.ParticipantID,
			SeasonID:      row.SeasonID,
			PeriodID:      row.PeriodID,
			Score:         row.Score,
			CalculatedAt:  row.CalculatedAt,
		})
	}
	return out, nil
}

func listEvents(ctx context.Context, q sqlx.QueryerContext, seasonID, periodID string) ([]scoring.Event, error) {
	query, args, err := qb.Select("*").From("outcome_events").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.Eq("period_public_id", periodID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list outcome events query: %w", err)
	}

	var rows []outcomeEventTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select outcome events: %w", err)
	}

	out := make([]scoring.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func eventFromRow(row outcomeEventTableModel) scoring.Event {
	return scoring.Event{
		ID:         row.PublicID,
		SeasonID:   row.SeasonID,
		PeriodID:   row.PeriodID,
		CastawayID: row.CastawayID,
		Kind:       scoring.OutcomeKind(row.Kind),
		Note:       row.Note,
		RecordedBy: row.RecordedBy,
		CreatedAt:  row.CreatedAt,
	}
}
