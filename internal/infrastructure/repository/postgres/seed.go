package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/castaway-league/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/castaway-league/internal/platform/querybuilder"
)

type seedStatement struct {
	label string
	query string
	args  []any
}

// BootstrapSeed loads data into an empty database. It is a no-op once any
// league exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, data memory.Dataset) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	statements, err := seedStatements(data)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("seed %s: %w", stmt.label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}

// seedStatements renders one batched insert per table, parents first.
func seedStatements(data memory.Dataset) ([]seedStatement, error) {
	override, err := encodeScoringOverride(data.Season.ScoringOverride)
	if err != nil {
		return nil, fmt.Errorf("encode scoring override: %w", err)
	}
	ss := data.Season.WithDefaults()

	members := make([]leagueMemberInsertModel, 0, len(data.Members))
	for _, m := range data.Members {
		members = append(members, leagueMemberInsertModel{
			LeagueID:      m.LeagueID,
			ParticipantID: m.ParticipantID,
			DisplayName:   m.DisplayName,
			Role:          string(m.Role),
			JoinedAt:      m.JoinedAt,
		})
	}
	castaways := make([]castawayInsertModel, 0, len(data.Castaways))
	for _, c := range data.Castaways {
		castaways = append(castaways, castawayInsertModel{
			PublicID: c.ID,
			SeasonID: c.SeasonID,
			Name:     c.Name,
			Tribe:    c.Tribe,
		})
	}
	periods := make([]periodInsertModel, 0, len(data.Periods))
	for _, p := range data.Periods {
		periods = append(periods, periodInsertModel{
			PublicID:     p.ID,
			SeasonID:     p.SeasonID,
			Number:       p.Number,
			Name:         p.Name,
			ReleaseAt:    p.ReleaseAt,
			LockOverride: p.LockOverride,
		})
	}

	byPublicID := qb.OnConflict("public_id")
	builders := []struct {
		label string
		rows  int
		b     *qb.InsertBuilder
	}{
		{"league", 1, qb.InsertModel("leagues", leagueInsertModel{
			PublicID: data.League.ID,
			Name:     data.League.Name,
		}).OnConflict(byPublicID)},
		// The members index is partial, so conflicts cannot be targeted here.
		{"members", len(members), qb.InsertModels("league_members", members)},
		{"season", 1, qb.InsertModel("seasons", seasonInsertModel{
			PublicID:           ss.ID,
			LeagueID:           ss.LeagueID,
			Name:               ss.Name,
			RosterSize:         ss.RosterSize,
			DraftStyle:         string(ss.DraftStyle),
			PickTimerSeconds:   ss.PickTimerSeconds,
			CaptainEnabled:     ss.CaptainEnabled,
			SpoilerLockEnabled: ss.SpoilerLockEnabled,
			ScoringOverride:    override,
		}).OnConflict(byPublicID)},
		{"castaways", len(castaways), qb.InsertModels("castaways", castaways).OnConflict(byPublicID)},
		{"periods", len(periods), qb.InsertModels("periods", periods).OnConflict(byPublicID)},
	}

	out := make([]seedStatement, 0, len(builders))
	for _, item := range builders {
		if item.rows == 0 {
			continue
		}
		query, args, err := item.b.ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build seed %s query: %w", item.label, err)
		}
		out = append(out, seedStatement{label: item.label, query: query, args: args})
	}
	return out, nil
}
