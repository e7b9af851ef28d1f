package database

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*sql.DB, *slog.Logger) {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "shop.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, slog.New(slog.NewTextHandler(io.Discard, nil))
}

func count(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	db, log := openTestDB(t)

	require.NoError(t, RunMigrations(db, log))
	applied := count(t, db, "schema_migrations")
	assert.Greater(t, applied, 0)

	require.NoError(t, RunMigrations(db, log))
	assert.Equal(t, applied, count(t, db, "schema_migrations"))
}

func TestSeedPopulatesFixtures(t *testing.T) {
	db, log := openTestDB(t)
	require.NoError(t, RunMigrations(db, log))

	require.NoError(t, Seed(db, log, false))

	assert.Equal(t, len(seedUsers), count(t, db, "users"))
	assert.Equal(t, len(seedProducts), count(t, db, "products"))
	assert.Equal(t, 3, count(t, db, "customers"))
	assert.Equal(t, 3, count(t, db, "orders"))
	assert.Greater(t, count(t, db, "orderlines"), 0)
	assert.Greater(t, count(t, db, "sessions"), 0)
}

func TestSeedSkipsPopulatedDatabase(t *testing.T) {
	db, log := openTestDB(t)
	require.NoError(t, RunMigrations(db, log))
	require.NoError(t, Seed(db, log, false))

	_, err := db.Exec("DELETE FROM products WHERE pid = 12")
	require.NoError(t, err)

	require.NoError(t, Seed(db, log, false))
	assert.Equal(t, len(seedProducts)-1, count(t, db, "products"))
}

func TestSeedForceReplacesRows(t *testing.T) {
	db, log := openTestDB(t)
	require.NoError(t, RunMigrations(db, log))
	require.NoError(t, Seed(db, log, false))

	_, err := db.Exec("UPDATE products SET price = 1.0 WHERE pid = 1")
	require.NoError(t, err)

	require.NoError(t, Seed(db, log, true))

	var price float64
	require.NoError(t, db.QueryRow("SELECT price FROM products WHERE pid = 1").Scan(&price))
	assert.InDelta(t, 24.99, price, 1e-9)
	assert.Equal(t, len(seedUsers), count(t, db, "users"))
}

func TestForeignKeysEnforced(t *testing.T) {
	db, log := openTestDB(t)
	require.NoError(t, RunMigrations(db, log))

	_, err := db.Exec("INSERT INTO customers(cid, name, email) VALUES (42, 'Ghost', 'ghost@example.com')")
	assert.Error(t, err)
}
