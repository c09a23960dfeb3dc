package lemma

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemma.toml")
	require.NoError(t, os.WriteFile(path, []byte("[eval]\nmax-depth = 64\n"), 0644))

	config, err := LoadProjectConfig(path)
	require.NoError(t, err)
	require.Equal(t, 64, config.Eval.MaxDepth)
}

func TestLoadProjectConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemma.toml")
	require.NoError(t, os.WriteFile(path, []byte("[eval\n"), 0644))

	_, err := LoadProjectConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "lemma.toml")
}

func TestFindProjectConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "lemma.toml"), []byte("[eval]\nmax-depth = 16\n"), 0644))

	path, config, err := FindProjectConfig(nested)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "lemma.toml"), path)
	require.Equal(t, 16, config.Eval.MaxDepth)
}

func TestFindProjectConfigMissing(t *testing.T) {
	path, config, err := FindProjectConfig(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, path)
	require.Nil(t, config)
}
