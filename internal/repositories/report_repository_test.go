package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopterm/internal/models"
)

func TestSummaryBetweenCoversSeededOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	now := time.Now()
	summary, err := repo.SummaryBetween(now.AddDate(0, 0, -7), now)
	require.NoError(t, err)

	// seeded orders are 2, 4 and 6 days old
	assert.Equal(t, 3, summary.DistinctOrders)
	assert.Equal(t, 5, summary.DistinctProductsSold)
	assert.Equal(t, 2, summary.DistinctCustomers)
	want := (24.99 + 2*44.95) + (24.99 + 29.99 + 2*19.99) + 54.99
	assert.InDelta(t, want, summary.TotalSalesAmount, 1e-6)
}

func TestSummaryBetweenEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	start := time.Now().AddDate(-1, 0, 0)
	summary, err := repo.SummaryBetween(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, summary.DistinctOrders)
	assert.Zero(t, summary.TotalSalesAmount)
}

func TestProductOrderCountsRanking(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	counts, err := repo.ProductOrderCounts()
	require.NoError(t, err)
	require.Len(t, counts, 5)

	// pid 1 appears in two seeded orders, the rest in one each
	assert.Equal(t, models.ProductCount{PID: 1, Count: 2}, counts[0])
	for _, c := range counts[1:] {
		assert.Equal(t, 1, c.Count)
	}
	assert.Equal(t, 5, counts[1].PID, "ties break by pid")
}

func TestProductViewCountsRanking(t *testing.T) {
	db := newTestDB(t)
	repo := NewReportRepository(db)

	sessionNo := startSession(t, db, 1003)
	activity := NewActivityRepository(db)
	for i := 0; i < 3; i++ {
		require.NoError(t, activity.RecordView(1003, sessionNo, time.Now(), 9))
	}

	counts, err := repo.ProductViewCounts()
	require.NoError(t, err)
	require.NotEmpty(t, counts)
	assert.Equal(t, models.ProductCount{PID: 9, Count: 3}, counts[0])
}
