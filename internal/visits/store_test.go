package visits

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIP(t *testing.T) {
	s := openTestStore(t)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203.0.113.7")

	other := openTestStore(t)
	assert.NotEqual(t, h, other.HashIP("203.0.113.7"), "salt differs per store")
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	visits := []Visit{
		{HashedIP: "a", Section: "projects", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Section: "projects", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Section: "home", Timestamp: now.Add(-48 * time.Hour)},
		{HashedIP: "c", Section: "skills"},
		{HashedIP: "c", Section: "home"},
	}
	for _, v := range visits {
		require.NoError(t, s.Record(ctx, v))
	}

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalViews)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(4), stats.ViewsToday)
	assert.Equal(t, []SectionCount{
		{Section: "home", Views: 2},
		{Section: "projects", Views: 2},
		{Section: "skills", Views: 1},
	}, stats.BySection)
}

func TestStats_Empty(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.NotNil(t, stats.BySection)
	assert.Empty(t, stats.BySection)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Record(ctx, Visit{HashedIP: "old", Section: "home", Timestamp: now.AddDate(-2, 0, 0)}))
	require.NoError(t, s.Record(ctx, Visit{HashedIP: "new", Section: "home", Timestamp: now.AddDate(0, -1, 0)}))

	n, err := s.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalViews)
}
