package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.rs", "")
	writeFile(t, root, "sub/b.rs", "")
	writeFile(t, root, "sub/c.txt", "")
	writeFile(t, root, "target/d.rs", "")
	writeFile(t, root, ".git/e.rs", "")
	writeFile(t, root, "node_modules/f.rs", "")
	writeFile(t, root, "sub/target/g.rs", "")

	files, err := Files(root, ".rs")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.rs", "sub/b.rs"}, files)
}

func TestFilesMissingRoot(t *testing.T) {
	files, err := Files(filepath.Join(t.TempDir(), "nope"), ".rs")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"z.rs", "m/a.rs", "a.rs", "m/z.rs"} {
		writeFile(t, root, rel, "")
	}

	first, err := Files(root, ".rs")
	require.NoError(t, err)
	second, err := Files(root, ".rs")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a.rs", "m/a.rs", "m/z.rs", "z.rs"}, first)
}

func TestReadFileLossy(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "bad.rs")
	require.NoError(t, os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, '!'}, 0o644))

	text, ok := ReadFileLossy(path)
	require.True(t, ok)
	assert.Contains(t, text, "ok")
	assert.Contains(t, text, "!")
	assert.Contains(t, text, "�")

	_, ok = ReadFileLossy(filepath.Join(root, "missing.rs"))
	assert.False(t, ok)
}
