package app

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func createTestDB(t *testing.T) (*sqlx.DB, func()) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "fatecord-temp.db"))
	if err != nil {
		t.Fatalf("failed to open test sqlite db: %v", err)
	}
	closer := func() {
		_ = db.Close()
	}
	return db, closer
}
