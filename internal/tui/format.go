package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// parseInt parses a trimmed integer field, rejecting empty input.
func parseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// totalPages returns the page count for a paginated listing, at least 1.
func totalPages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	return pages
}
