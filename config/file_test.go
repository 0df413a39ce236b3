package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFileName)
	content := "api: https://api.lagoon.example.com/graphql\nproject: my-site\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pf, err := LoadProjectFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "https://api.lagoon.example.com/graphql", pf.API)
	assert.Equal(t, "my-site", pf.Project)
}

func TestLoadProjectFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFileName)
	assert.NoError(t, os.WriteFile(path, []byte("api: [unterminated"), 0o644))

	_, err := LoadProjectFile(path)
	assert.Error(t, err)
}

func TestFindProjectFile(t *testing.T) {
	t.Run("found in parent directory", func(t *testing.T) {
		root := t.TempDir()
		nested := filepath.Join(root, "services", "web")
		assert.NoError(t, os.MkdirAll(nested, 0o755))
		want := filepath.Join(root, ProjectFileName)
		assert.NoError(t, os.WriteFile(want, []byte("project: x\n"), 0o644))

		got, err := FindProjectFile(nested)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindProjectFile(t.TempDir())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
