package repositories

import (
	"database/sql"
	"time"

	"shopterm/internal/models"
)

// ReportRepository runs the sales-side aggregate queries.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SummaryBetween aggregates orders with odate in [start, end].
// AvgAmountPerCustomer is left for the caller to derive.
func (r *ReportRepository) SummaryBetween(start, end time.Time) (*models.SalesSummary, error) {
	query := `
		SELECT
			COUNT(DISTINCT o.ono),
			COUNT(DISTINCT ol.pid),
			COUNT(DISTINCT o.cid),
			COALESCE(SUM(ol.qty * ol.uprice), 0.0)
		FROM orders o
		JOIN orderlines ol ON ol.ono = o.ono
		WHERE o.odate >= ? AND o.odate <= ?
	`

	var s models.SalesSummary
	err := r.db.QueryRow(query, toMillis(start), toMillis(end)).Scan(
		&s.DistinctOrders,
		&s.DistinctProductsSold,
		&s.DistinctCustomers,
		&s.TotalSalesAmount,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ProductOrderCounts ranks products by the number of distinct orders they
// appear in, descending, ties broken by pid.
func (r *ReportRepository) ProductOrderCounts() ([]models.ProductCount, error) {
	rows, err := r.db.Query(
		"SELECT pid, COUNT(DISTINCT ono) AS order_count FROM orderlines GROUP BY pid ORDER BY order_count DESC, pid",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductCounts(rows)
}

// ProductViewCounts ranks products by total detail views, descending,
// ties broken by pid.
func (r *ReportRepository) ProductViewCounts() ([]models.ProductCount, error) {
	rows, err := r.db.Query(
		"SELECT pid, COUNT(*) AS view_count FROM viewed_products GROUP BY pid ORDER BY view_count DESC, pid",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductCounts(rows)
}

func scanProductCounts(rows *sql.Rows) ([]models.ProductCount, error) {
	var counts []models.ProductCount
	for rows.Next() {
		var c models.ProductCount
		if err := rows.Scan(&c.PID, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
