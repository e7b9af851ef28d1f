package models

import "time"

// Session matches the sessions table. A session is open while EndTime is
// nil; it is closed on logout or quit.
type Session struct {
	CID       int        `json:"cid"`
	SessionNo int        `json:"session_no"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}
