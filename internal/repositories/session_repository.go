package repositories

import (
	"database/sql"
	"math/rand/v2"
	"time"
)

const (
	sessionNoMin = 1000
	sessionNoMax = 999999
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Start opens a session for the customer at the given time, allocating a
// session number unique per customer, and returns it.
func (r *SessionRepository) Start(cid int, at time.Time) (int, error) {
	var sessionNo int
	for {
		sessionNo = sessionNoMin + rand.IntN(sessionNoMax-sessionNoMin+1)
		var exists bool
		err := r.db.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM sessions WHERE cid = ? AND session_no = ?)",
			cid, sessionNo,
		).Scan(&exists)
		if err != nil {
			return 0, err
		}
		if !exists {
			break
		}
	}

	_, err := r.db.Exec(
		"INSERT INTO sessions(cid, session_no, start_time, end_time) VALUES (?, ?, ?, NULL)",
		cid, sessionNo, toMillis(at),
	)
	if err != nil {
		return 0, err
	}
	return sessionNo, nil
}

// End records the session's end time.
func (r *SessionRepository) End(cid, sessionNo int, at time.Time) error {
	_, err := r.db.Exec(
		"UPDATE sessions SET end_time = ? WHERE cid = ? AND session_no = ?",
		toMillis(at), cid, sessionNo,
	)
	return err
}
