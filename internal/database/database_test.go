package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

var errBoom = errors.New("boom")

func TestMigrateIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "h.db")
	db, err := OpenMigrated(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM history_entries`).Scan(&n); err != nil {
		t.Fatalf("table missing: %v", err)
	}
	_ = db.Close()
}

func TestWithTxRollsBack(t *testing.T) {
	db, err := OpenMigrated(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO history_entries(id, session, seq, kind, path) VALUES ('a', 's', 1, 'push', '/')`); err != nil {
			return err
		}
		return errBoom
	})
	if err != errBoom {
		t.Fatalf("err = %v", err)
	}
	var n int
	_ = db.QueryRow(`SELECT COUNT(*) FROM history_entries`).Scan(&n)
	if n != 0 {
		t.Fatalf("rollback left %d rows", n)
	}
}
