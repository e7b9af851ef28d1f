package services

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"shopterm/internal/models"
	"shopterm/internal/repositories"
)

// DefaultPageSize is the number of rows per page on paginated screens.
const DefaultPageSize = 5

type CatalogService struct {
	productRepo  *repositories.ProductRepository
	activityRepo *repositories.ActivityRepository
	pageSize     int
}

func NewCatalogService(
	productRepo *repositories.ProductRepository,
	activityRepo *repositories.ActivityRepository,
	pageSize int,
) *CatalogService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogService{
		productRepo:  productRepo,
		activityRepo: activityRepo,
		pageSize:     pageSize,
	}
}

func (s *CatalogService) PageSize() int {
	return s.pageSize
}

// Search runs a customer product search and records the query. The input
// is matched case-insensitively against name and description; multi-word
// input matches the whole phrase or any individual word. Returns one page
// ordered by pid and the total match count.
func (s *CatalogService) Search(keyword string, cid, sessionNo int, when time.Time, page int) ([]models.Product, int, error) {
	terms := searchTerms(keyword)

	products, total, err := s.productRepo.SearchTermsPaged(terms, page, s.pageSize)
	if err != nil {
		return nil, 0, err
	}

	// record the query as typed, even when it matched nothing
	if err := s.activityRepo.RecordSearch(cid, sessionNo, when, keyword); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// searchTerms normalizes a keyword into match terms: the whole phrase
// first, then each distinct word. Empty input yields no terms.
func searchTerms(keyword string) []string {
	phrase := strings.ToLower(strings.TrimSpace(keyword))
	if phrase == "" {
		return nil
	}
	words := strings.Fields(phrase)
	if len(words) <= 1 {
		return []string{phrase}
	}

	terms := []string{phrase}
	seen := map[string]bool{phrase: true}
	for _, w := range words {
		if !seen[w] {
			terms = append(terms, w)
			seen[w] = true
		}
	}
	return terms
}

// SalesSearch is the sales-side mixed search; it never records queries.
// Empty input lists everything; all-digit input tries an exact pid match
// before falling back to keyword search; multi-word input returns
// exact-phrase matches ahead of per-word matches.
func (s *CatalogService) SalesSearch(query string) ([]models.Product, error) {
	phrase := strings.ToLower(strings.TrimSpace(query))

	if phrase == "" {
		return s.productRepo.AllOrdered()
	}

	if isDigits(phrase) {
		pid, _ := strconv.Atoi(phrase)
		product, err := s.productRepo.FindByPID(pid)
		if err != nil {
			return nil, err
		}
		if product != nil {
			return []models.Product{*product}, nil
		}
		return s.productRepo.SearchKeyword(phrase)
	}

	words := strings.Fields(phrase)
	if len(words) > 1 {
		var results []models.Product
		seen := map[int]bool{}
		appendNew := func(products []models.Product) {
			for _, p := range products {
				if !seen[p.PID] {
					seen[p.PID] = true
					results = append(results, p)
				}
			}
		}

		exact, err := s.productRepo.SearchKeyword(phrase)
		if err != nil {
			return nil, err
		}
		appendNew(exact)

		seenWords := map[string]bool{}
		for _, w := range words {
			if seenWords[w] {
				continue
			}
			seenWords[w] = true
			matches, err := s.productRepo.SearchKeyword(w)
			if err != nil {
				return nil, err
			}
			appendNew(matches)
		}
		return results, nil
	}

	return s.productRepo.SearchKeyword(phrase)
}

// RecordView logs that a product detail was shown to the customer.
func (s *CatalogService) RecordView(cid, sessionNo, pid int, ts time.Time) error {
	return s.activityRepo.RecordView(cid, sessionNo, ts, pid)
}

func (s *CatalogService) GetProduct(pid int) (*models.Product, error) {
	return s.productRepo.FindByPID(pid)
}

func (s *CatalogService) ProductExists(pid int) (bool, error) {
	return s.productRepo.Exists(pid)
}

func (s *CatalogService) ProductStock(pid int) (int, error) {
	return s.productRepo.Stock(pid)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
