package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{"0001_users", createUsersTable},
	{"0002_customers", createCustomersTable},
	{"0003_products", createProductsTable},
	{"0004_sessions", createSessionsTable},
	{"0005_viewed_products", createViewedProductsTable},
	{"0006_searches", createSearchesTable},
	{"0007_cart", createCartTable},
	{"0008_orders", createOrdersTable},
	{"0009_orderlines", createOrderlinesTable},
}

// RunMigrations applies every pending migration exactly once, recording
// applied names in schema_migrations.
func RunMigrations(db *sql.DB, log *slog.Logger) error {
	if _, err := db.Exec(createMigrationTable); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for i, m := range migrations {
		var applied bool
		err := db.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name = ?)", m.name,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("check migration %s: %w", m.name, err)
		}
		if applied {
			continue
		}

		log.Info("running migration", "step", i+1, "total", len(migrations), "name", m.name)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %s: %w", m.name, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO schema_migrations(name, applied_at) VALUES (?, ?)",
			m.name, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration %s: %w", m.name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %s: %w", m.name, err)
		}
	}

	return nil
}

const createMigrationTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  name TEXT PRIMARY KEY,
  applied_at INTEGER NOT NULL
);
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  uid INTEGER PRIMARY KEY,
  pwd TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('customer', 'sales'))
);
`

const createCustomersTable = `
CREATE TABLE IF NOT EXISTS customers (
  cid INTEGER PRIMARY KEY REFERENCES users(uid) ON DELETE CASCADE,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE
);

CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email);
`

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
  pid INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price REAL NOT NULL CHECK (price >= 0),
  stock_count INTEGER NOT NULL DEFAULT 0 CHECK (stock_count >= 0),
  descr TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
  cid INTEGER NOT NULL REFERENCES customers(cid) ON DELETE CASCADE,
  session_no INTEGER NOT NULL,
  start_time INTEGER NOT NULL,
  end_time INTEGER,
  PRIMARY KEY (cid, session_no)
);
`

const createViewedProductsTable = `
CREATE TABLE IF NOT EXISTS viewed_products (
  cid INTEGER NOT NULL,
  session_no INTEGER NOT NULL,
  ts INTEGER NOT NULL,
  pid INTEGER NOT NULL REFERENCES products(pid),
  FOREIGN KEY (cid, session_no) REFERENCES sessions(cid, session_no) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_viewed_products_pid ON viewed_products(pid);
`

const createSearchesTable = `
CREATE TABLE IF NOT EXISTS searches (
  cid INTEGER NOT NULL,
  session_no INTEGER NOT NULL,
  ts INTEGER NOT NULL,
  query TEXT NOT NULL,
  FOREIGN KEY (cid, session_no) REFERENCES sessions(cid, session_no) ON DELETE CASCADE
);
`

const createCartTable = `
CREATE TABLE IF NOT EXISTS cart (
  cid INTEGER NOT NULL,
  session_no INTEGER NOT NULL,
  pid INTEGER NOT NULL REFERENCES products(pid),
  qty INTEGER NOT NULL CHECK (qty > 0),
  PRIMARY KEY (cid, session_no, pid),
  FOREIGN KEY (cid, session_no) REFERENCES sessions(cid, session_no) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_cart_cid_pid ON cart(cid, pid);
`

const createOrdersTable = `
CREATE TABLE IF NOT EXISTS orders (
  ono INTEGER PRIMARY KEY,
  cid INTEGER NOT NULL REFERENCES customers(cid),
  session_no INTEGER NOT NULL,
  odate INTEGER NOT NULL,
  shipping_address TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_cid_odate ON orders(cid, odate);
`

const createOrderlinesTable = `
CREATE TABLE IF NOT EXISTS orderlines (
  ono INTEGER NOT NULL REFERENCES orders(ono) ON DELETE CASCADE,
  line_no INTEGER NOT NULL,
  pid INTEGER NOT NULL REFERENCES products(pid),
  qty INTEGER NOT NULL CHECK (qty > 0),
  uprice REAL NOT NULL,
  PRIMARY KEY (ono, line_no)
);

CREATE INDEX IF NOT EXISTS idx_orderlines_pid ON orderlines(pid);
`
