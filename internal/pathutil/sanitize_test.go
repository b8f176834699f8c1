package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "petstore.ir.json")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o600))

	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(realDir, 0o755))
	require.NoError(t, os.Symlink(existing, filepath.Join(dir, "file-link.json")))
	require.NoError(t, os.Symlink(realDir, filepath.Join(dir, "dir-link")))

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{"existing file", existing, existing, ""},
		{"new file", filepath.Join(dir, "new.json"), filepath.Join(dir, "new.json"), ""},
		{"dot segments cleaned", filepath.Join(dir, "real", "..", "new.json"), filepath.Join(dir, "new.json"), ""},
		{"file symlink", filepath.Join(dir, "file-link.json"), "", "symlink"},
		{"directory symlink", filepath.Join(dir, "dir-link"), "", "symlink"},
		{"directory", realDir, "", "is a directory"},
		{"missing parent", filepath.Join(dir, "nope", "out.json"), "", "output directory"},
		{"parent is a file", filepath.Join(existing, "out.json"), "", "not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeOutputPath(tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relative path made absolute", func(t *testing.T) {
		got, err := SanitizeOutputPath("out.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
	})
}
