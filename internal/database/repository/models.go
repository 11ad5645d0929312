package repository

import "time"

// HistoryEntry is one recorded location change. Kind is "push" or "replace".
type HistoryEntry struct {
	ID        string
	Session   string
	Seq       int64
	Kind      string
	Path      string
	RawQuery  string
	CreatedAt time.Time
}
