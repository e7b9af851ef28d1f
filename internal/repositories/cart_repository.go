package repositories

import (
	"database/sql"

	"shopterm/internal/models"
)

// CartRepository manages the persistent per-customer cart. Rows carry the
// session that last touched them, but all reads aggregate across sessions
// and writes consolidate (cid, pid) into a single row.
type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// ListAggregated returns the customer's cart summed per product; the
// returned items report the provided sessionNo.
func (r *CartRepository) ListAggregated(cid, sessionNo int) ([]models.CartItem, error) {
	rows, err := r.db.Query(
		"SELECT cid, pid, SUM(qty) FROM cart WHERE cid = ? GROUP BY cid, pid ORDER BY pid",
		cid,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		item := models.CartItem{SessionNo: sessionNo}
		if err := rows.Scan(&item.CID, &item.PID, &item.Qty); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// TotalQty returns the customer's total quantity for a product across all
// sessions.
func (r *CartRepository) TotalQty(cid, pid int) (int, error) {
	var total int
	err := r.db.QueryRow(
		"SELECT COALESCE(SUM(qty), 0) FROM cart WHERE cid = ? AND pid = ?",
		cid, pid,
	).Scan(&total)
	return total, err
}

// Replace removes every row for (cid, pid) and inserts one row with qty
// under the given session.
func (r *CartRepository) Replace(cid, sessionNo, pid, qty int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM cart WHERE cid = ? AND pid = ?", cid, pid); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO cart(cid, session_no, pid, qty) VALUES (?, ?, ?, ?)",
		cid, sessionNo, pid, qty,
	); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a product from the customer's cart across all sessions.
func (r *CartRepository) Delete(cid, pid int) error {
	_, err := r.db.Exec("DELETE FROM cart WHERE cid = ? AND pid = ?", cid, pid)
	return err
}

// Clear empties the customer's cart across all sessions.
func (r *CartRepository) Clear(cid int) error {
	_, err := r.db.Exec("DELETE FROM cart WHERE cid = ?", cid)
	return err
}
