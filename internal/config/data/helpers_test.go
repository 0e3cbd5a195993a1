package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "storefront-address", SanitizeFileName("storefront/address"))
	assert.Equal(t, "a-b", SanitizeFileName("a::/b"))
}

func TestEnsureDirPath(t *testing.T) {
	root := t.TempDir()
	a, b := filepath.Join(root, "a", "b"), filepath.Join(root, "c")

	require.NoError(t, EnsureDirPath(a, "", b))
	assert.DirExists(t, a)
	assert.DirExists(t, b)

	require.NoError(t, EnsureFullPath(filepath.Join(root, "d", "e.yaml")))
	assert.DirExists(t, filepath.Join(root, "d"))
	assert.NoFileExists(t, filepath.Join(root, "d", "e.yaml"))
}

func TestMustLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "v.yaml")
	var v struct {
		Name string `yaml:"name"`
	}

	assert.ErrorIs(t, MustLoadYAML(path, &v), ErrMissingFile)

	v.Name = "b3t"
	require.NoError(t, SaveYAML(path, v))
	v.Name = ""
	require.NoError(t, MustLoadYAML(path, &v))
	assert.Equal(t, "b3t", v.Name)
}
