package services

import (
	"time"

	"shopterm/internal/models"
	"shopterm/internal/repositories"
)

type ReportService struct {
	reportRepo *repositories.ReportRepository
}

func NewReportService(reportRepo *repositories.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// WeeklySummary aggregates orders dated within the seven calendar days up
// to and including asOf.
func (s *ReportService) WeeklySummary(asOf time.Time) (*models.SalesSummary, error) {
	day := asOf.UTC().Truncate(24 * time.Hour)
	start := day.AddDate(0, 0, -7)
	end := day.Add(24*time.Hour - time.Millisecond)

	summary, err := s.reportRepo.SummaryBetween(start, end)
	if err != nil {
		return nil, err
	}
	if summary.DistinctCustomers > 0 {
		summary.AvgAmountPerCustomer = summary.TotalSalesAmount / float64(summary.DistinctCustomers)
	}
	return summary, nil
}

// TopProductsByOrders ranks products by the number of distinct orders
// they appear in. With includeTies, every product tied with the k-th
// entry is included.
func (s *ReportService) TopProductsByOrders(k int, includeTies bool) ([]models.ProductCount, error) {
	counts, err := s.reportRepo.ProductOrderCounts()
	if err != nil {
		return nil, err
	}
	return topK(counts, k, includeTies), nil
}

// TopProductsByViews ranks products by total detail views.
func (s *ReportService) TopProductsByViews(k int, includeTies bool) ([]models.ProductCount, error) {
	counts, err := s.reportRepo.ProductViewCounts()
	if err != nil {
		return nil, err
	}
	return topK(counts, k, includeTies), nil
}

// topK truncates a descending ranking to k entries, optionally keeping
// everything tied with the k-th entry.
func topK(counts []models.ProductCount, k int, includeTies bool) []models.ProductCount {
	if len(counts) == 0 || k < 1 {
		return nil
	}
	if !includeTies {
		if k > len(counts) {
			k = len(counts)
		}
		return counts[:k]
	}

	idx := k
	if idx > len(counts) {
		idx = len(counts)
	}
	threshold := counts[idx-1].Count

	var top []models.ProductCount
	for _, c := range counts {
		if c.Count >= threshold {
			top = append(top, c)
		}
	}
	return top
}
