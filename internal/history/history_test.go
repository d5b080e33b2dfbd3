package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 7, 0, 0, 0, time.UTC)
	entries := []Entry{
		{ID: "a1", Activity: "bike", ImagePath: "/tmp/1.jpg", Status: "RECOGNIZED", Matched: true, Confidence: 0.92, CreatedAt: base},
		{ID: "a2", Activity: "ev", ImagePath: "/tmp/2.jpg", Status: "FAILED", Missing: "start_time, end_time", CreatedAt: base.Add(time.Minute)},
		{ID: "a3", Activity: "z", ImagePath: "/tmp/3.jpg", Status: "SUCCEEDED", Category: "zero", Matched: true, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		require.NoError(t, s.Append(ctx, e))
	}

	got, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// newest first
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "zero", got[0].Category)
	assert.True(t, got[0].Matched)

	assert.Equal(t, "a2", got[1].ID)
	assert.False(t, got[1].Matched)
	assert.Equal(t, "start_time, end_time", got[1].Missing)

	assert.Equal(t, "a1", got[2].ID)
	assert.InDelta(t, 0.92, got[2].Confidence, 0.0001)
	assert.True(t, got[2].CreatedAt.Equal(base))
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 7, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(ctx, Entry{
			ID:        string(rune('a' + i)),
			Activity:  "bike",
			ImagePath: "/tmp/r.jpg",
			Status:    "RECOGNIZED",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	got, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
}

func TestAppendFillsCreatedAt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, Entry{ID: "x", Activity: "bike", ImagePath: "/tmp/r.jpg", Status: "QUEUED"}))

	got, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].CreatedAt.IsZero())
}
