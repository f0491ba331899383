package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFiltersTo_CreatesNewFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artfactory.yaml")

	err := saveFiltersTo(configPath, map[string]string{"provider": "fal.ai"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "filters:")
	assert.Contains(t, string(data), "provider: fal.ai")
}

func TestSaveFiltersTo_PreservesOtherConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artfactory.yaml")

	initial := `# my settings
api:
  base_url: http://localhost:9000
ui:
  grid_columns: 4
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	err := saveFiltersTo(configPath, map[string]string{"favorite": "true"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "# my settings")
	assert.Contains(t, content, "base_url: http://localhost:9000")
	assert.Contains(t, content, "grid_columns: 4")
	assert.Contains(t, content, "favorite: \"true\"")
}

func TestSaveFiltersTo_ReplacesExistingFilters(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artfactory.yaml")

	initial := `filters:
  provider: replicate
  model: sdxl
`
	require.NoError(t, os.WriteFile(configPath, []byte(initial), 0o600))

	err := saveFiltersTo(configPath, map[string]string{"provider": "fal.ai"})
	require.NoError(t, err)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "provider: fal.ai")
	assert.NotContains(t, content, "replicate")
	assert.NotContains(t, content, "sdxl")
}

func TestSaveFiltersTo_Roundtrip(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artfactory.yaml")

	original := map[string]string{
		"provider": "fal.ai",
		"favorite": "true",
		"title":    "dunes",
	}
	require.NoError(t, saveFiltersTo(configPath, original))

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	loaded := v.GetStringMapString("filters")
	assert.Equal(t, original, loaded)
}

func TestSaveFiltersTo_DeterministicOrder(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artfactory.yaml")

	filters := map[string]string{"b": "2", "a": "1", "c": "3"}
	require.NoError(t, saveFiltersTo(configPath, filters))
	first, err := os.ReadFile(configPath)
	require.NoError(t, err)

	require.NoError(t, saveFiltersTo(configPath, filters))
	second, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "repeated saves must be byte-stable")
}

func TestSaveFilters_NoConfigFileIsNoop(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, SaveFilters(map[string]string{"provider": "fal.ai"}))
}
