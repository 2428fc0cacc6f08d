package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/nebula-runner/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	runs := []struct {
		outcome core.Outcome
		elapsed float64
		frames  int
	}{
		{core.OutcomeLost, 0.859375, 55},
		{core.OutcomeWon, 12.484375, 799},
		{core.OutcomeLost, 3.5, 210},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r.outcome, r.elapsed, r.frames, "tui")
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first
	assert.Equal(t, 210, recent[0].Frames)
	assert.Equal(t, 55, recent[2].Frames)
	assert.Equal(t, core.OutcomeWon, recent[1].Outcome)
	assert.Equal(t, 12.484375, recent[1].ElapsedSecs)
	assert.Equal(t, "tui", recent[0].Backend)
	assert.False(t, recent[0].CreatedAt.IsZero(), "CreatedAt was not parsed")
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := store.SaveRun(core.OutcomeLost, float64(i), i, "window")
		require.NoError(t, err)
	}

	recent, err := store.RecentRuns(3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 4, recent[0].Frames, "latest run first")
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(core.OutcomeWon, 14, 840, "window")
	store.SaveRun(core.OutcomeLost, 1, 60, "window")
	store.SaveRun(core.OutcomeWon, 12.5, 750, "tui")
	store.SaveRun(core.OutcomeWon, 13, 780, "tui")

	top, err := store.TopRuns(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 12.5, top[0].ElapsedSecs)
	assert.Equal(t, 13.0, top[1].ElapsedSecs)
	for _, r := range top {
		assert.Equal(t, core.OutcomeWon, r.Outcome)
	}
}

func TestStoreUpdateRunOutcome(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(core.OutcomeWon, 12.5, 800, "tui")
	require.NoError(t, err)

	require.NoError(t, store.UpdateRunOutcome(id, core.OutcomeLost))

	recent, err := store.RecentRuns(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, core.OutcomeLost, recent[0].Outcome)
	assert.Equal(t, 12.5, recent[0].ElapsedSecs)

	top, err := store.TopRuns(10)
	require.NoError(t, err)
	assert.Empty(t, top, "a revised win is no longer a win")

	assert.ErrorContains(t, store.UpdateRunOutcome(id+100, core.OutcomeLost), "not found")
}

func TestStoreUnknownOutcome(t *testing.T) {
	store := openTestStore(t)

	_, err := store.db.Exec(
		"INSERT INTO runs (outcome, elapsed_secs, frames, backend) VALUES ('draw', 1, 64, 'tui')",
	)
	require.NoError(t, err)

	_, err = store.RecentRuns(10)
	assert.ErrorContains(t, err, `unknown outcome "draw"`)
}

func TestStoreBestWin(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestWin()
	require.NoError(t, err)
	assert.False(t, ok, "no best win on an empty store")

	store.SaveRun(core.OutcomeLost, 0.5, 30, "tui")
	_, ok, _ = store.BestWin()
	assert.False(t, ok, "losses must not count as wins")

	store.SaveRun(core.OutcomeWon, 13, 780, "tui")
	store.SaveRun(core.OutcomeWon, 12.5, 750, "tui")

	best, ok, err := store.BestWin()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 12.5, best)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Runs)
	assert.True(t, stats.LastPlayed.IsZero())

	store.SaveRun(core.OutcomeWon, 12, 768, "tui")
	store.SaveRun(core.OutcomeLost, 2, 128, "tui")
	store.SaveRun(core.OutcomeLost, 4, 256, "window")

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Runs)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 2, stats.Losses)
	assert.Equal(t, 12.0, stats.BestWin)
	assert.Equal(t, 6.0, stats.AvgElapsed)
	assert.False(t, stats.LastPlayed.IsZero(), "LastPlayed was not set")
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(core.OutcomeWon, 12, 768, "tui")
	store.SaveRun(core.OutcomeLost, 2, 128, "tui")

	require.NoError(t, store.ClearRuns())

	recent, err := store.RecentRuns(10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err, "Open() with nested path")
	defer store.Close()

	assert.FileExists(t, dbPath)
}
