package uploads

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type referenceSet map[string]bool

func (r referenceSet) ReferencesAudio(_ context.Context, audioURL string) (bool, error) {
	return r[audioURL], nil
}

func TestOrphanSweeperRemovesOnlyStaleUnreferencedFiles(t *testing.T) {
	clock := newManualClock()
	store, err := NewDiskStore(DiskStoreConfig{Directory: t.TempDir(), URLPrefix: "/uploads", Clock: clock.Now})
	require.NoError(t, err)

	save := func(name string) StoredFile {
		stored, saveErr := store.Save(context.Background(), name, bytes.NewReader([]byte("ID3")), 1024)
		require.NoError(t, saveErr)
		return stored
	}
	orphan := save("orphan.mp3")
	owned := save("owned.mp3")
	recent := save("recent.mp3")

	old := clock.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(orphan.Path, old, old))
	require.NoError(t, os.Chtimes(owned.Path, old, old))
	require.NoError(t, os.Chtimes(recent.Path, clock.Now(), clock.Now()))

	sweeper, err := NewOrphanSweeper(store, referenceSet{owned.URL: true}, time.Hour, clock.Now, nil)
	require.NoError(t, err)

	removed, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, orphan.Path)
	assert.FileExists(t, owned.Path)
	assert.FileExists(t, recent.Path)
}

func TestDiskStoreRemoveURL(t *testing.T) {
	store, err := NewDiskStore(DiskStoreConfig{Directory: t.TempDir(), URLPrefix: "uploads/"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads", store.URLPrefix())

	stored, err := store.Save(context.Background(), "fatiha.mp3", bytes.NewReader([]byte("ID3")), 1024)
	require.NoError(t, err)

	require.NoError(t, store.RemoveURL(stored.URL))
	assert.NoFileExists(t, stored.Path)
	assert.NoError(t, store.RemoveURL(stored.URL))
	assert.Error(t, store.RemoveURL("/elsewhere/"+stored.Name))
}
