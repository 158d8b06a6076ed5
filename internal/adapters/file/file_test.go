package file

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{
			name:    "success",
			content: []byte("test\n"),
		},
		{
			name:    "empty file",
			content: []byte{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			afs := afero.NewMemMapFs()
			require.NoError(t, afs.MkdirAll("/thumb", 0o755))

			err := WriteAtomic(afs, "/thumb/out.jpg", tc.content)
			require.NoError(t, err)

			got, err := afero.ReadFile(afs, "/thumb/out.jpg")
			require.NoError(t, err)
			assert.Equal(t, len(tc.content), len(got))

			entries, err := afero.ReadDir(afs, "/thumb")
			require.NoError(t, err)
			require.Len(t, entries, 1, "temp file must not survive")
			assert.Equal(t, "out.jpg", entries[0].Name())
		})
	}
}

func TestWriteAtomicOverwrites(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/thumb/out.jpg", []byte("old"), 0o644))

	require.NoError(t, WriteAtomic(afs, "/thumb/out.jpg", []byte("new")))

	got, err := afero.ReadFile(afs, "/thumb/out.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestWriteAtomicFailureLeavesNothing(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/thumb", 0o755))
	afs := afero.NewReadOnlyFs(base)

	err := WriteAtomic(afs, "/thumb/out.jpg", []byte("data"))
	require.Error(t, err)

	entries, err := afero.ReadDir(base, "/thumb")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteAtomicOnDisk(t *testing.T) {
	dir := t.TempDir()
	afs := afero.NewOsFs()
	path := filepath.Join(dir, "out.jpg")

	require.NoError(t, WriteAtomic(afs, path, []byte("disk")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("disk"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), tempSuffix))
	}
}

func TestExists(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/full/a.jpg", []byte("a"), 0o644))

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "file", path: "/full/a.jpg", want: true},
		{name: "missing", path: "/full/b.jpg", want: false},
		{name: "directory", path: "/full", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Exists(afs, tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadable(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/full/a.jpg", []byte("a"), 0o644))

	assert.NoError(t, Readable(afs, "/full/a.jpg"))
	assert.Error(t, Readable(afs, "/full/missing.jpg"))
	assert.Error(t, Readable(afs, "/full"))
}

func TestRemove(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/thumb/a.jpg", []byte("a"), 0o644))

	Remove(afs, "/thumb/a.jpg")
	Remove(afs, "/thumb/a.jpg")

	ok, err := afero.Exists(afs, "/thumb/a.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}
