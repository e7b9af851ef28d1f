package repositories

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopterm/internal/database"
)

// newTestDB opens a migrated, seeded database in a temp dir.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "shop.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, database.RunMigrations(db, log))
	require.NoError(t, database.Seed(db, log, false))
	return db
}

// startSession opens a fresh session for a seeded customer.
func startSession(t *testing.T, db *sql.DB, cid int) int {
	t.Helper()
	sessionNo, err := NewSessionRepository(db).Start(cid, time.Now())
	require.NoError(t, err)
	return sessionNo
}
