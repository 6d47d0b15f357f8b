package pgsql

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTrialBalanceQuery_NoBounds(t *testing.T) {
	query, args := buildTrialBalanceQuery(nil, nil)

	assert.Empty(t, args)
	assert.NotContains(t, query, "$1")
	assert.Contains(t, query, "WHERE e.posted = TRUE")
	assert.Contains(t, query, "COALESCE(SUM(l.debit), 0)")
	assert.Contains(t, query, "COALESCE(SUM(l.credit), 0)")
	assert.Contains(t, query, "GROUP BY a.account_id, a.code, a.name, a.account_type")
	assert.Contains(t, query, "ORDER BY a.code")
}

func TestBuildTrialBalanceQuery_StartOnly(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args := buildTrialBalanceQuery(&start, nil)

	require.Len(t, args, 1)
	assert.Equal(t, start, args[0])
	assert.Contains(t, query, "AND e.entry_date >= $1")
	assert.NotContains(t, query, "e.entry_date <=")
	assert.Contains(t, query, "WHERE e.posted = TRUE")
}

func TestBuildTrialBalanceQuery_EndOnly(t *testing.T) {
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildTrialBalanceQuery(nil, &end)

	require.Len(t, args, 1)
	assert.Equal(t, end, args[0])
	assert.Contains(t, query, "AND e.entry_date <= $1")
	assert.NotContains(t, query, "e.entry_date >=")
}

func TestBuildTrialBalanceQuery_BothBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildTrialBalanceQuery(&start, &end)

	require.Len(t, args, 2)
	assert.Equal(t, start, args[0])
	assert.Equal(t, end, args[1])
	assert.Contains(t, query, "AND e.entry_date >= $1")
	assert.Contains(t, query, "AND e.entry_date <= $2")

	// The posted filter must precede the date bounds so it applies regardless
	// of which bounds are supplied.
	postedAt := strings.Index(query, "e.posted = TRUE")
	startAt := strings.Index(query, "e.entry_date >= $1")
	require.Greater(t, startAt, postedAt)

	// Ordering by code is what makes the report deterministic for callers.
	assert.Greater(t, strings.Index(query, "ORDER BY a.code"), strings.Index(query, "GROUP BY"))
}
