package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopterm/internal/models"
)

func TestWeeklySummarySeeded(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.reports.WeeklySummary(time.Now())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.DistinctOrders)
	assert.Equal(t, 5, summary.DistinctProductsSold)
	assert.Equal(t, 2, summary.DistinctCustomers)

	want := (24.99 + 2*44.95) + (24.99 + 29.99 + 2*19.99) + 54.99
	assert.InDelta(t, want, summary.TotalSalesAmount, 1e-6)
	assert.InDelta(t, want/2, summary.AvgAmountPerCustomer, 1e-6)
}

func TestWeeklySummaryOutsideWindow(t *testing.T) {
	env := newTestEnv(t)

	summary, err := env.reports.WeeklySummary(time.Now().AddDate(0, -1, 0))
	require.NoError(t, err)
	assert.Zero(t, summary.DistinctOrders)
	assert.Zero(t, summary.AvgAmountPerCustomer)
}

func TestTopProductsByOrdersIncludesTies(t *testing.T) {
	env := newTestEnv(t)

	// pid 1 leads with two orders, four products tie at one order each
	top, err := env.reports.TopProductsByOrders(3, true)
	require.NoError(t, err)
	require.Len(t, top, 5)
	assert.Equal(t, models.ProductCount{PID: 1, Count: 2}, top[0])

	top, err = env.reports.TopProductsByOrders(3, false)
	require.NoError(t, err)
	assert.Len(t, top, 3)
}

func TestTopKBehavior(t *testing.T) {
	counts := []models.ProductCount{
		{PID: 1, Count: 5},
		{PID: 2, Count: 3},
		{PID: 3, Count: 3},
		{PID: 4, Count: 3},
		{PID: 5, Count: 1},
	}

	assert.Nil(t, topK(counts, 0, true))
	assert.Nil(t, topK(nil, 3, true))

	assert.Len(t, topK(counts, 2, false), 2)
	assert.Len(t, topK(counts, 2, true), 4, "everything tied with the k-th entry stays")
	assert.Len(t, topK(counts, 10, false), 5)
	assert.Len(t, topK(counts, 5, true), 5)
}
