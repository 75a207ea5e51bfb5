package uploads

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	testCases := map[string]string{
		"../../etc/passwd.mp3":     "etc_passwd.mp3",
		"my recitation (1).mp3":    "my_recitation_1_.mp3",
		"..\\..\\windows\\win.ini": "windows_win.ini",
		"__hidden__.ogg":           "hidden_.ogg",
		".mp3":                     "mp3",
		"سورة الفاتحة.mp3":         "mp3",
		"...":                      fallbackFileName,
		"":                         fallbackFileName,
	}
	for input, want := range testCases {
		got := SanitizeFilename(input)
		assert.Equal(t, want, got, "SanitizeFilename(%q)", input)
		assert.False(t, strings.ContainsAny(got, `/\`), "separator in %q", got)
		assert.False(t, strings.HasPrefix(got, "."), "leading dot in %q", got)
	}
}

func TestSanitizedNameStaysInsideUploadsDirectory(t *testing.T) {
	directory := t.TempDir()
	store, err := NewDiskStore(DiskStoreConfig{Directory: directory, URLPrefix: "/uploads"})
	require.NoError(t, err)

	stored, err := store.Save(context.Background(), SanitizeFilename("../../etc/passwd.mp3"), bytes.NewReader([]byte("ID3")), 1024)
	require.NoError(t, err)

	absolute, err := filepath.Abs(directory)
	require.NoError(t, err)
	assert.Equal(t, absolute, filepath.Dir(stored.Path))
	assert.True(t, strings.HasSuffix(stored.Name, "_etc_passwd.mp3"))
	assert.True(t, strings.HasPrefix(stored.URL, "/uploads/"))
}
