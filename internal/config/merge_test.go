package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/virtuallist/internal/config"
)

// writeConfig is a test helper that writes YAML content to a temp file
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_PartialSectionKeepsDefaults(t *testing.T) {
	target := config.New()
	path := writeConfig(t, `
list:
  columns: 2
`)

	require.NoError(t, config.ShallowMergeYAML(target, path))

	assert.Equal(t, 2, target.List.Columns)
	// Fields absent from the section keep their defaults.
	assert.Equal(t, 3, target.List.ItemHeight)
	assert.Equal(t, 1, target.List.Gap)
	assert.True(t, target.List.Scrollbar)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_MultipleSections(t *testing.T) {
	target := config.New()
	path := writeConfig(t, `
schema_version: "1.2.0"
list:
  item_height: 5
  scrollbar: false
logging:
  level: debug
demo:
  page_size: 25
unknown_section:
  anything: true
`)

	require.NoError(t, config.ShallowMergeYAML(target, path))

	assert.Equal(t, "1.2.0", target.SchemaVersion)
	assert.Equal(t, 5, target.List.ItemHeight)
	assert.False(t, target.List.Scrollbar)
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, 25, target.Demo.PageSize)
	assert.Equal(t, 1000, target.Demo.InitialItems)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.New()
	path := writeConfig(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, path))
	assert.Equal(t, config.New(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		err := config.ShallowMergeYAML(nil, "unused")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), writeConfig(t, "list: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config YAML")
	})

	t.Run("type mismatch", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), writeConfig(t, "list:\n  columns: many\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `section "list"`)
	})
}
