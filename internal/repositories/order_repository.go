package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"shopterm/internal/models"
)

const (
	onoMin = 100000
	onoMax = 999999
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateFromCart turns the customer's aggregated cart into an order in a
// single transaction: order lines are numbered from 1 in pid order with
// quantities clamped to current stock and the current price snapshotted,
// stock is decremented, and the cart is cleared. Returns the order number.
func (r *OrderRepository) CreateFromCart(cid, sessionNo int, shippingAddress string, odate time.Time) (int, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.Query(
		"SELECT pid, SUM(qty) FROM cart WHERE cid = ? GROUP BY pid ORDER BY pid",
		cid,
	)
	if err != nil {
		return 0, err
	}
	type cartLine struct{ pid, qty int }
	var lines []cartLine
	for rows.Next() {
		var l cartLine
		if err := rows.Scan(&l.pid, &l.qty); err != nil {
			rows.Close()
			return 0, err
		}
		lines = append(lines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	var ono int
	for {
		ono = onoMin + rand.IntN(onoMax-onoMin+1)
		var exists bool
		if err := tx.QueryRow(
			"SELECT EXISTS(SELECT 1 FROM orders WHERE ono = ?)", ono,
		).Scan(&exists); err != nil {
			return 0, err
		}
		if !exists {
			break
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO orders(ono, cid, session_no, odate, shipping_address) VALUES (?, ?, ?, ?, ?)",
		ono, cid, sessionNo, toMillis(odate), shippingAddress,
	); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	lineNo := 1
	for _, l := range lines {
		var price float64
		var stock int
		err := tx.QueryRow(
			"SELECT price, stock_count FROM products WHERE pid = ?", l.pid,
		).Scan(&price, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return 0, err
		}

		useQty := l.qty
		if useQty > stock {
			useQty = stock
		}
		if useQty <= 0 {
			continue
		}

		if _, err := tx.Exec(
			"INSERT INTO orderlines(ono, line_no, pid, qty, uprice) VALUES (?, ?, ?, ?, ?)",
			ono, lineNo, l.pid, useQty, price,
		); err != nil {
			return 0, fmt.Errorf("insert order line %d: %w", lineNo, err)
		}
		if _, err := tx.Exec(
			"UPDATE products SET stock_count = stock_count - ? WHERE pid = ?",
			useQty, l.pid,
		); err != nil {
			return 0, fmt.Errorf("decrement stock pid=%d: %w", l.pid, err)
		}
		lineNo++
	}

	if _, err := tx.Exec("DELETE FROM cart WHERE cid = ?", cid); err != nil {
		return 0, fmt.Errorf("clear cart: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return ono, nil
}

// ListByCustomer returns one page of the customer's orders in reverse
// chronological order together with the total count.
func (r *OrderRepository) ListByCustomer(cid, page, pageSize int) ([]models.Order, int, error) {
	var total int
	if err := r.db.QueryRow(
		"SELECT COUNT(*) FROM orders WHERE cid = ?", cid,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * pageSize
	}
	rows, err := r.db.Query(
		"SELECT ono, cid, session_no, odate, shipping_address FROM orders WHERE cid = ? ORDER BY odate DESC LIMIT ? OFFSET ?",
		cid, pageSize, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var odate int64
		if err := rows.Scan(&o.Ono, &o.CID, &o.SessionNo, &odate, &o.ShippingAddress); err != nil {
			return nil, 0, err
		}
		o.Odate = fromMillis(odate)
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}

func (r *OrderRepository) FindByOno(ono int) (*models.Order, error) {
	var o models.Order
	var odate int64
	err := r.db.QueryRow(
		"SELECT ono, cid, session_no, odate, shipping_address FROM orders WHERE ono = ?", ono,
	).Scan(&o.Ono, &o.CID, &o.SessionNo, &odate, &o.ShippingAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	o.Odate = fromMillis(odate)
	return &o, nil
}

// Lines returns an order's lines ordered by line number.
func (r *OrderRepository) Lines(ono int) ([]models.OrderLine, error) {
	rows, err := r.db.Query(
		"SELECT ono, line_no, pid, qty, uprice FROM orderlines WHERE ono = ? ORDER BY line_no",
		ono,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var l models.OrderLine
		if err := rows.Scan(&l.Ono, &l.LineNo, &l.PID, &l.Qty, &l.UPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Total returns the grand total for an order, 0 for an unknown ono.
func (r *OrderRepository) Total(ono int) (float64, error) {
	var total float64
	err := r.db.QueryRow(
		"SELECT COALESCE(SUM(qty * uprice), 0.0) FROM orderlines WHERE ono = ?", ono,
	).Scan(&total)
	return total, err
}
