package bbolt

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a temporary history store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func makeRecord(ts time.Time, preset string) Record {
	return Record{
		Time:     ts,
		Preset:   preset,
		Database: "/repo/out/build/" + preset + "/compile_commands.json",
		Config:   "/repo/.clangd",
		SHA256:   "deadbeef",
	}
}

func TestStore_LastEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	last, err := store.Last()
	require.NoError(t, err)
	assert.Nil(t, last)

	recs, err := store.History(10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_AppendAndLast(t *testing.T) {
	store, _ := newTestStore(t)

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Append(makeRecord(base, "macos-debug")))
	require.NoError(t, store.Append(makeRecord(base.Add(time.Minute), "macos-debug")))
	require.NoError(t, store.Append(makeRecord(base.Add(2*time.Minute), "macos-debug")))

	last, err := store.Last()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Time.Equal(base.Add(2*time.Minute)))
}

func TestStore_HistoryNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)

	base := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(makeRecord(base.Add(time.Duration(i)*time.Second), "macos-debug")))
	}

	recs, err := store.History(3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.True(t, recs[0].Time.After(recs[1].Time))
	assert.True(t, recs[1].Time.After(recs[2].Time))

	all, err := store.History(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := NewStore(path)
	require.NoError(t, err)
	rec := makeRecord(time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC), "macos-debug")
	require.NoError(t, store.Append(rec))
	require.NoError(t, store.Close())

	reopened, err := NewStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	last, err := reopened.Last()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, rec.Preset, last.Preset)
	assert.Equal(t, rec.Database, last.Database)
	assert.Equal(t, rec.SHA256, last.SHA256)
	assert.True(t, last.Time.Equal(rec.Time))
}
