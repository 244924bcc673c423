package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/castaway-league/internal/domain/castaway"
	"github.com/riskibarqy/castaway-league/internal/domain/draft"
	"github.com/riskibarqy/castaway-league/internal/domain/period"
	"github.com/riskibarqy/castaway-league/internal/domain/scoring"
	"github.com/riskibarqy/castaway-league/internal/domain/season"
	qb "github.com/riskibarqy/castaway-league/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(
			qb.Eq("public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	override, err := decodeScoringOverride(row.ScoringOverride.String)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("decode scoring override season=%s: %w", seasonID, err)
	}

	return season.Season{
		ID:                 row.PublicID,
		LeagueID:           row.LeagueID,
		Name:               row.Name,
		RosterSize:         row.RosterSize,
		DraftStyle:         draft.Style(row.DraftStyle),
		PickTimerSeconds:   row.PickTimerSeconds,
		CaptainEnabled:     row.CaptainEnabled,
		SpoilerLockEnabled: row.SpoilerLockEnabled,
		ScoringOverride:    override,
	}, true, nil
}

// decodeScoringOverride reads the stored JSON object. Unknown kinds are
// dropped here and again by scoring.Resolve.
func decodeScoringOverride(raw string) (scoring.Override, error) {
	if raw == "" || raw == "null" {
		return nil, nil
	}

	var values map[string]int
	if err := sonic.UnmarshalString(raw, &values); err != nil {
		return nil, err
	}
	override, _ := scoring.ParseOverride(values)
	return override, nil
}

func encodeScoringOverride(override scoring.Override) (any, error) {
	raw := override.Raw()
	if raw == nil {
		return nil, nil
	}
	return sonic.MarshalString(raw)
}

type CastawayRepository struct {
	db *sqlx.DB
}

func NewCastawayRepository(db *sqlx.DB) *CastawayRepository {
	return &CastawayRepository{db: db}
}

func (r *CastawayRepository) GetByID(ctx context.Context, castawayID string) (castaway.Castaway, bool, error) {
	query, args, err := qb.Select("*").From("castaways").
		Where(
			qb.Eq("public_id", castawayID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return castaway.Castaway{}, false, fmt.Errorf("build get castaway by id query: %w", err)
	}

	var row castawayTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return castaway.Castaway{}, false, nil
		}
		return castaway.Castaway{}, false, fmt.Errorf("get castaway by id: %w", err)
	}

	return castawayFromRow(row), true, nil
}

func (r *CastawayRepository) ListBySeason(ctx context.Context, seasonID string) ([]castaway.Castaway, error) {
	query, args, err := qb.Select("*").From("castaways").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name", "public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list castaways query: %w", err)
	}

	var rows []castawayTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select castaways: %w", err)
	}

	out := make([]castaway.Castaway, 0, len(rows))
	for _, row := range rows {
		out = append(out, castawayFromRow(row))
	}
	return out, nil
}

func castawayFromRow(row castawayTableModel) castaway.Castaway {
	return castaway.Castaway{
		ID:       row.PublicID,
		SeasonID: row.SeasonID,
		Name:     row.Name,
		Tribe:    row.Tribe,
	}
}

type PeriodRepository struct {
	db *sqlx.DB
}

func NewPeriodRepository(db *sqlx.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

func (r *PeriodRepository) GetByID(ctx context.Context, periodID string) (period.Period, bool, error) {
	query, args, err := qb.Select("*").From("periods").
		Where(
			qb.Eq("public_id", periodID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return period.Period{}, false, fmt.Errorf("build get period by id query: %w", err)
	}

	var row periodTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return period.Period{}, false, nil
		}
		return period.Period{}, false, fmt.Errorf("get period by id: %w", err)
	}

	return periodFromRow(row), true, nil
}

func (r *PeriodRepository) ListBySeason(ctx context.Context, seasonID string) ([]period.Period, error) {
	query, args, err := qb.Select("*").From("periods").
		Where(
			qb.Eq("season_public_id", seasonID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list periods query: %w", err)
	}

	var rows []periodTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select periods: %w", err)
	}

	out := make([]period.Period, 0, len(rows))
	for _, row := range rows {
		out = append(out, periodFromRow(row))
	}
	return out, nil
}

func periodFromRow(row periodTableModel) period.Period {
	return period.Period{
		ID:           row.PublicID,
		SeasonID:     row.SeasonID,
		Number:       row.Number,
		Name:         row.Name,
		ReleaseAt:    row.ReleaseAt,
		LockOverride: row.LockOverride,
	}
}
