package repositories

import (
	"database/sql"
	"time"
)

// ActivityRepository records per-session browsing history: searches and
// product detail views.
type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) RecordSearch(cid, sessionNo int, ts time.Time, query string) error {
	_, err := r.db.Exec(
		"INSERT INTO searches(cid, session_no, ts, query) VALUES (?, ?, ?, ?)",
		cid, sessionNo, toMillis(ts), query,
	)
	return err
}

func (r *ActivityRepository) RecordView(cid, sessionNo int, ts time.Time, pid int) error {
	_, err := r.db.Exec(
		"INSERT INTO viewed_products(cid, session_no, ts, pid) VALUES (?, ?, ?, ?)",
		cid, sessionNo, toMillis(ts), pid,
	)
	return err
}
