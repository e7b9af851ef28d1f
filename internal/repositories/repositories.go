// Package repositories contains the data access layer: one repository type
// per schema area, each holding the shared database handle and issuing
// parameterized SQL. Lookups return (nil, nil) when no row matches.
package repositories

import "time"

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}
