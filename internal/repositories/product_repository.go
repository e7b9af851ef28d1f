package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"shopterm/internal/models"
)

const productColumns = "pid, name, category, price, stock_count, descr"

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindByPID(pid int) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(
		"SELECT "+productColumns+" FROM products WHERE pid = ?", pid,
	).Scan(&p.PID, &p.Name, &p.Category, &p.Price, &p.StockCount, &p.Descr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Exists(pid int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM products WHERE pid = ?)", pid,
	).Scan(&exists)
	return exists, err
}

// Stock returns a product's stock count, or 0 for an unknown pid.
func (r *ProductRepository) Stock(pid int) (int, error) {
	var stock int
	err := r.db.QueryRow(
		"SELECT stock_count FROM products WHERE pid = ?", pid,
	).Scan(&stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return stock, nil
}

// AllOrdered returns every product ordered by pid.
func (r *ProductRepository) AllOrdered() ([]models.Product, error) {
	rows, err := r.db.Query("SELECT " + productColumns + " FROM products ORDER BY pid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchKeyword returns products whose name or description contains the
// term, case-insensitively, ordered by pid.
func (r *ProductRepository) SearchKeyword(term string) ([]models.Product, error) {
	like := "%" + strings.ToLower(term) + "%"
	rows, err := r.db.Query(
		"SELECT "+productColumns+" FROM products WHERE LOWER(name) LIKE ? OR LOWER(descr) LIKE ? ORDER BY pid",
		like, like,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SearchTermsPaged matches products against any of the terms (name or
// description, case-insensitive) and returns one page ordered by pid
// together with the total match count. No terms matches nothing.
func (r *ProductRepository) SearchTermsPaged(terms []string, page, pageSize int) ([]models.Product, int, error) {
	whereClause := "1 = 0"
	var params []any
	if len(terms) > 0 {
		conds := make([]string, 0, len(terms))
		for _, t := range terms {
			like := "%" + strings.ToLower(t) + "%"
			conds = append(conds, "(LOWER(name) LIKE ? OR LOWER(descr) LIKE ?)")
			params = append(params, like, like)
		}
		whereClause = strings.Join(conds, " OR ")
	}

	var total int
	if err := r.db.QueryRow(
		"SELECT COUNT(*) FROM products WHERE "+whereClause, params...,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := 0
	if page > 1 {
		offset = (page - 1) * pageSize
	}
	rows, err := r.db.Query(
		"SELECT "+productColumns+" FROM products WHERE "+whereClause+" ORDER BY pid LIMIT ? OFFSET ?",
		append(params, pageSize, offset)...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// UpdatePriceStock sets both columns; callers merge unchanged values in
// first. Returns whether a row was updated.
func (r *ProductRepository) UpdatePriceStock(pid int, price float64, stock int) (bool, error) {
	res, err := r.db.Exec(
		"UPDATE products SET price = ?, stock_count = ? WHERE pid = ?",
		price, stock, pid,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.PID, &p.Name, &p.Category, &p.Price, &p.StockCount, &p.Descr); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
