package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

// HistoryRepo handles history_entries.
type HistoryRepo struct {
	db *sql.DB
}

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// NewSession returns a fresh session identifier.
func NewSession() string { return uuid.NewString() }

// Append stores e, assigning an ID and the next sequence number for its session.
func (r *HistoryRepo) Append(ctx context.Context, e HistoryEntry) (HistoryEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	row := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM history_entries WHERE session = ?`, e.Session)
	if err := row.Scan(&e.Seq); err != nil {
		return HistoryEntry{}, err
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO history_entries(id, session, seq, kind, path, raw_query)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.Session, e.Seq, e.Kind, e.Path, e.RawQuery)
	if err != nil {
		return HistoryEntry{}, err
	}
	return e, nil
}

// List returns entries newest first. An empty session lists every session.
func (r *HistoryRepo) List(ctx context.Context, session string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session, seq, kind, path, raw_query, created_at
	FROM history_entries
	WHERE (? = '' OR session = ?)
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, session, session, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Session, &e.Seq, &e.Kind, &e.Path, &e.RawQuery, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Last returns the most recent entry across all sessions, or nil when empty.
func (r *HistoryRepo) Last(ctx context.Context) (*HistoryEntry, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, session, seq, kind, path, raw_query, created_at
	FROM history_entries
	ORDER BY created_at DESC, rowid DESC
	LIMIT 1`)
	var e HistoryEntry
	if err := row.Scan(&e.ID, &e.Session, &e.Seq, &e.Kind, &e.Path, &e.RawQuery, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// Prune deletes all but the newest keep entries.
func (r *HistoryRepo) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	DELETE FROM history_entries WHERE rowid NOT IN (
		SELECT rowid FROM history_entries ORDER BY created_at DESC, rowid DESC LIMIT ?
	)`, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
