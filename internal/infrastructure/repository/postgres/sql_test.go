package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get draft: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(fakeErr("pq: relation drafts does not exist")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Run("matches constraint", func(t *testing.T) {
		err := fmt.Errorf("insert pick: %w", &pq.Error{Code: "23505", Constraint: "uq_draft_picks_castaway"})
		if !isUniqueViolation(err, "uq_draft_picks_castaway") {
			t.Fatalf("expected unique violation on castaway index")
		}
		if !isUniqueViolation(err, "") {
			t.Fatalf("expected unique violation without constraint filter")
		}
	})

	t.Run("ignores other constraints", func(t *testing.T) {
		err := &pq.Error{Code: "23505", Constraint: "uq_draft_picks_number"}
		if isUniqueViolation(err, "uq_draft_picks_castaway") {
			t.Fatalf("expected false for a different constraint")
		}
	})

	t.Run("ignores other codes", func(t *testing.T) {
		err := &pq.Error{Code: "23503", Constraint: "uq_draft_picks_castaway"}
		if isUniqueViolation(err, "uq_draft_picks_castaway") {
			t.Fatalf("expected false for a foreign key violation")
		}
	})
}

func TestNullString(t *testing.T) {
	if got := nullString(""); got.Valid {
		t.Fatalf("expected empty string to be NULL")
	}
	if got := nullString("p2"); !got.Valid || got.String != "p2" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
