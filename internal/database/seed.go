package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"shopterm/internal/utils"
)

type seedUser struct {
	uid      int
	password string
	role     string
	name     string
	email    string
}

var seedUsers = []seedUser{
	{1001, "alice123", "customer", "Alice Chen", "alice@example.com"},
	{1002, "bob123", "customer", "Bob Martin", "bob@example.com"},
	{1003, "carol123", "customer", "Carol Diaz", "carol@example.com"},
	{9001, "sales123", "sales", "", ""},
}

type seedProduct struct {
	pid      int
	name     string
	category string
	price    float64
	stock    int
	descr    string
}

var seedProducts = []seedProduct{
	{1, "Wireless Mouse", "electronics", 24.99, 42, "2.4GHz wireless optical mouse with USB receiver"},
	{2, "Mechanical Keyboard", "electronics", 89.99, 15, "Tenkeyless mechanical keyboard, brown switches"},
	{3, "USB-C Hub", "electronics", 39.50, 30, "7-in-1 USB-C hub with HDMI and card reader"},
	{4, "Noise Cancelling Headphones", "electronics", 199.00, 8, "Over-ear wireless headphones with ANC"},
	{5, "The Go Programming Language", "books", 44.95, 25, "Donovan and Kernighan's reference on Go"},
	{6, "Designing Data-Intensive Applications", "books", 54.99, 12, "Kleppmann on storage, replication and stream processing"},
	{7, "Espresso Maker", "home", 129.00, 6, "Stovetop espresso maker, 6 cup"},
	{8, "French Press", "home", 29.99, 20, "Borosilicate glass french press, 1L"},
	{9, "Desk Lamp", "home", 34.00, 18, "LED desk lamp with adjustable color temperature"},
	{10, "Standing Desk Mat", "home", 49.00, 10, "Anti-fatigue mat for standing desks"},
	{11, "Water Bottle", "outdoors", 19.99, 50, "Insulated stainless steel bottle, 750ml"},
	{12, "Trail Backpack", "outdoors", 74.50, 9, "25L daypack with rain cover"},
}

// Seed loads fixture data. It is a no-op when users already exist unless
// force is set, in which case all rows are replaced.
func Seed(db *sql.DB, log *slog.Logger, force bool) error {
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&userCount); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 && !force {
		log.Info("seed skipped, database already populated", "users", userCount)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if force {
		for _, table := range []string{"orderlines", "orders", "cart", "searches", "viewed_products", "sessions", "customers", "users", "products"} {
			if _, err := tx.Exec("DELETE FROM " + table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
	}

	for _, u := range seedUsers {
		hash, err := utils.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		if _, err := tx.Exec(
			"INSERT INTO users(uid, pwd, role) VALUES (?, ?, ?)", u.uid, hash, u.role,
		); err != nil {
			return fmt.Errorf("seed user %d: %w", u.uid, err)
		}
		if u.role == "customer" {
			if _, err := tx.Exec(
				"INSERT INTO customers(cid, name, email) VALUES (?, ?, ?)", u.uid, u.name, u.email,
			); err != nil {
				return fmt.Errorf("seed customer %d: %w", u.uid, err)
			}
		}
	}

	for _, p := range seedProducts {
		if _, err := tx.Exec(
			"INSERT INTO products(pid, name, category, price, stock_count, descr) VALUES (?, ?, ?, ?, ?, ?)",
			p.pid, p.name, p.category, p.price, p.stock, p.descr,
		); err != nil {
			return fmt.Errorf("seed product %d: %w", p.pid, err)
		}
	}

	if err := seedActivity(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	log.Info("seed complete", "users", len(seedUsers), "products", len(seedProducts))
	return nil
}

// seedActivity creates closed sessions with browsing history and a few
// recent orders so the sales report renders non-empty out of the box.
func seedActivity(tx *sql.Tx) error {
	now := time.Now()

	type pastOrder struct {
		ono       int
		cid       int
		sessionNo int
		daysAgo   int
		address   string
		lines     [][2]int // pid, qty
	}
	orders := []pastOrder{
		{100001, 1001, 500001, 2, "12 Elm Street, Springfield", [][2]int{{1, 1}, {5, 2}}},
		{100002, 1002, 500002, 4, "77 Oak Avenue, Shelbyville", [][2]int{{1, 1}, {8, 1}, {11, 2}}},
		{100003, 1001, 500003, 6, "12 Elm Street, Springfield", [][2]int{{6, 1}}},
	}

	for _, o := range orders {
		start := now.AddDate(0, 0, -o.daysAgo).Add(-time.Hour)
		end := start.Add(45 * time.Minute)
		if _, err := tx.Exec(
			"INSERT INTO sessions(cid, session_no, start_time, end_time) VALUES (?, ?, ?, ?)",
			o.cid, o.sessionNo, start.UTC().UnixMilli(), end.UTC().UnixMilli(),
		); err != nil {
			return fmt.Errorf("seed session %d/%d: %w", o.cid, o.sessionNo, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO searches(cid, session_no, ts, query) VALUES (?, ?, ?, ?)",
			o.cid, o.sessionNo, start.Add(time.Minute).UTC().UnixMilli(), "coffee",
		); err != nil {
			return fmt.Errorf("seed search: %w", err)
		}

		odate := start.Add(30 * time.Minute)
		if _, err := tx.Exec(
			"INSERT INTO orders(ono, cid, session_no, odate, shipping_address) VALUES (?, ?, ?, ?, ?)",
			o.ono, o.cid, o.sessionNo, odate.UTC().UnixMilli(), o.address,
		); err != nil {
			return fmt.Errorf("seed order %d: %w", o.ono, err)
		}
		for i, line := range o.lines {
			pid, qty := line[0], line[1]
			var price float64
			if err := tx.QueryRow("SELECT price FROM products WHERE pid = ?", pid).Scan(&price); err != nil {
				return fmt.Errorf("seed order line price pid=%d: %w", pid, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO orderlines(ono, line_no, pid, qty, uprice) VALUES (?, ?, ?, ?, ?)",
				o.ono, i+1, pid, qty, price,
			); err != nil {
				return fmt.Errorf("seed order line %d/%d: %w", o.ono, i+1, err)
			}
			if _, err := tx.Exec(
				"INSERT INTO viewed_products(cid, session_no, ts, pid) VALUES (?, ?, ?, ?)",
				o.cid, o.sessionNo, start.Add(time.Duration(5+i)*time.Minute).UTC().UnixMilli(), pid,
			); err != nil {
				return fmt.Errorf("seed view: %w", err)
			}
		}
	}

	return nil
}
