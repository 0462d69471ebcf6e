// ABOUTME: Tests for path resolution and the UTF-8 read step
// ABOUTME: Uses temp dirs; covers @ prefix, NFD/NFC names, curly quotes, and binary content

package fileagent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c d", normalizeSpaces("a\u00A0b\u2009c\u3000d"))
	assert.Equal(t, "plain", normalizeSpaces("plain"))
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "notes.txt", expandPath("@notes.txt"))
	assert.Equal(t, filepath.Join(home, "x.md"), filepath.Clean(expandPath("~/x.md")))
	assert.Equal(t, "~user/x", expandPath("~user/x"))
	assert.Equal(t, "a b.txt", expandPath("  a b.txt "))
}

func TestReadText(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "it's.txt"), []byte("quote"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, norm.NFD.String("café.txt")), []byte("nfd"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bin.dat"), []byte{0xff, 0xfe, 0x00}, 0o600))

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{name: "relative", path: "plain.txt", want: "hello"},
		{name: "at prefix", path: "@plain.txt", want: "hello"},
		{name: "absolute", path: filepath.Join(dir, "plain.txt"), want: "hello"},
		{name: "curly quote", path: "it\u2019s.txt", want: "quote"},
		{name: "nfc name finds nfd file", path: norm.NFC.String("café.txt"), want: "nfd"},
		{name: "missing", path: "nope.txt", wantErr: "no such file"},
		{name: "directory", path: ".", wantErr: "is a directory"},
		{name: "binary", path: "bin.dat", wantErr: "not valid UTF-8"},
		{name: "blank", path: "  ", wantErr: "empty path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := readText(tt.path, dir)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
