package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchTerms(t *testing.T) {
	assert.Nil(t, searchTerms(""))
	assert.Nil(t, searchTerms("   "))
	assert.Equal(t, []string{"mouse"}, searchTerms(" Mouse "))
	assert.Equal(t, []string{"desk lamp", "desk", "lamp"}, searchTerms("Desk Lamp"))
	assert.Equal(t, []string{"go go", "go"}, searchTerms("go go"))
}

func TestSearchMatchesPhraseOrWords(t *testing.T) {
	env := newTestEnv(t)
	sessionNo := env.startSession(t, 1001)

	// "desk lamp" is pid 9's name; "desk" alone also hits the desk mat
	products, total, err := env.catalog.Search("desk lamp", 1001, sessionNo, time.Now(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, products, 2)
	assert.Equal(t, 9, products[0].PID)
	assert.Equal(t, 10, products[1].PID)
}

func TestSearchRecordsQueryEvenWithoutMatches(t *testing.T) {
	env := newTestEnv(t)
	sessionNo := env.startSession(t, 1001)

	products, total, err := env.catalog.Search("zzzznomatch", 1001, sessionNo, time.Now(), 1)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, products)

	var query string
	require.NoError(t, env.db.QueryRow(
		"SELECT query FROM searches WHERE cid = 1001 AND session_no = ?", sessionNo,
	).Scan(&query))
	assert.Equal(t, "zzzznomatch", query)
}

func TestSearchPaging(t *testing.T) {
	env := newTestEnv(t)
	sessionNo := env.startSession(t, 1002)

	// "a" matches every seeded product
	first, total, err := env.catalog.Search("a", 1002, sessionNo, time.Now(), 1)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, first, DefaultPageSize)
	assert.Equal(t, 1, first[0].PID)
	assert.Equal(t, 5, first[4].PID)

	second, _, err := env.catalog.Search("a", 1002, sessionNo, time.Now(), 2)
	require.NoError(t, err)
	require.Len(t, second, DefaultPageSize)
	assert.Equal(t, 6, second[0].PID)
}

func TestSalesSearchEmptyListsEverything(t *testing.T) {
	env := newTestEnv(t)

	products, err := env.catalog.SalesSearch("")
	require.NoError(t, err)
	require.Len(t, products, 12)
	assert.Equal(t, 1, products[0].PID)
	assert.Equal(t, 12, products[11].PID)
}

func TestSalesSearchNumericPidFirst(t *testing.T) {
	env := newTestEnv(t)

	products, err := env.catalog.SalesSearch("7")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Espresso Maker", products[0].Name)
}

func TestSalesSearchNumericFallsBackToKeyword(t *testing.T) {
	env := newTestEnv(t)

	// no pid 750, but "750ml" appears in the water bottle description
	products, err := env.catalog.SalesSearch("750")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 11, products[0].PID)
}

func TestSalesSearchMultiWordPhraseFirst(t *testing.T) {
	env := newTestEnv(t)

	products, err := env.catalog.SalesSearch("wireless mouse")
	require.NoError(t, err)
	require.Len(t, products, 2)
	// exact phrase match leads, then remaining per-word matches
	assert.Equal(t, 1, products[0].PID)
	assert.Equal(t, 4, products[1].PID)
}

func TestSalesSearchDoesNotRecordQueries(t *testing.T) {
	env := newTestEnv(t)

	before := searchCount(t, env)
	_, err := env.catalog.SalesSearch("mouse")
	require.NoError(t, err)
	assert.Equal(t, before, searchCount(t, env))
}

func searchCount(t *testing.T, env *testEnv) int {
	t.Helper()
	var n int
	require.NoError(t, env.db.QueryRow("SELECT COUNT(*) FROM searches").Scan(&n))
	return n
}

func TestRecordView(t *testing.T) {
	env := newTestEnv(t)
	sessionNo := env.startSession(t, 1003)

	require.NoError(t, env.catalog.RecordView(1003, sessionNo, 2, time.Now()))

	var pid int
	require.NoError(t, env.db.QueryRow(
		"SELECT pid FROM viewed_products WHERE cid = 1003 AND session_no = ?", sessionNo,
	).Scan(&pid))
	assert.Equal(t, 2, pid)
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("123"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("12a"))
	assert.False(t, isDigits("-1"))
}
