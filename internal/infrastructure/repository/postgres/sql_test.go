package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches ErrNoRows", func(t *testing.T) {
		if !isNotFound(sql.ErrNoRows) {
			t.Fatalf("expected true for sql.ErrNoRows")
		}
	})

	t.Run("matches wrapped ErrNoRows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get match by id: %w", sql.ErrNoRows)) {
			t.Fatalf("expected true for wrapped sql.ErrNoRows")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation matches does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}
