package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestIsBadReference(t *testing.T) {
	t.Run("matches foreign key violation", func(t *testing.T) {
		if !isBadReference(&pq.Error{Code: "23503"}) {
			t.Fatalf("expected true for foreign key violation")
		}
	})

	t.Run("matches wrapped invalid uuid", func(t *testing.T) {
		err := fmt.Errorf("insert transfer: %w", &pq.Error{Code: "22P02"})
		if !isBadReference(err) {
			t.Fatalf("expected true for wrapped invalid text representation")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isBadReference(errors.New("pq: relation transfers does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestIsCheckViolation(t *testing.T) {
	if !isCheckViolation(&pq.Error{Code: "23514"}) {
		t.Fatalf("expected true for check violation")
	}
	if isCheckViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("expected false for foreign key violation")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get transfer: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
	}
}

func TestNullHelpers(t *testing.T) {
	if got := nullString(sql.NullString{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := nullString(sql.NullString{String: "Spain", Valid: true}); got != "Spain" {
		t.Fatalf("expected Spain, got %q", got)
	}
	if got := nullInt(sql.NullInt64{Int64: 25, Valid: true}); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := nullInt(sql.NullInt64{}); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
