package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "config.json"), clockwork.NewFakeClock(), nil)

	state, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultEarliestTime, state.SearchDefaults.EarliestTime)
	require.Empty(t, state.Profiles)
}

func TestStoreSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	store := NewStore(path, clockwork.NewFakeClock(), nil)

	state := DefaultState()
	state.Theme = "solarized"
	state.UpsertProfile(&Profile{Name: "prod", BaseURL: "https://splunk:8089"})
	state.UpsertProfile(&Profile{Name: "staging", BaseURL: "https://staging:8089"})

	require.NoError(t, store.Save(state))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "solarized", loaded.Theme)
	require.Equal(t, []string{"prod", "staging"}, loaded.ProfileNames())
}

func TestStoreSaveWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	store := NewStore(path, clockwork.NewFakeClock(), nil)

	require.NoError(t, store.Save(DefaultState()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no leftover temp file after a successful save")
	require.Equal(t, "config.json", entries[0].Name())
}

func TestStoreLoadQuarantinesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o600))

	clock := clockwork.NewFakeClockAt(time.Unix(1700000000, 0))
	store := NewStore(path, clock, nil)

	state, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultEarliestTime, state.SearchDefaults.EarliestTime, "falls back to defaults")

	quarantined := filepath.Join(dir, "config.corrupt.1700000000")
	_, statErr := os.Stat(quarantined)
	require.NoError(t, statErr, "corrupt file renamed aside rather than deleted")
	_, origErr := os.Stat(path)
	require.True(t, os.IsNotExist(origErr), "original path no longer holds the corrupt data")
}

func TestPersistedStatePushSearchHistoryBounded(t *testing.T) {
	state := DefaultState()
	now := time.Unix(0, 0)
	for i := 0; i < searchHistoryCapacity+10; i++ {
		state.PushSearchHistory("query", now)
	}
	require.Len(t, state.SearchHistory, searchHistoryCapacity)
}

func TestPersistedStateDeleteProfile(t *testing.T) {
	state := DefaultState()
	state.UpsertProfile(&Profile{Name: "a"})
	state.UpsertProfile(&Profile{Name: "b"})
	state.DeleteProfile("a")
	require.Equal(t, []string{"b"}, state.ProfileNames())
}
