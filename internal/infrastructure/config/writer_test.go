package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	created, err := WriteDefaultConfig(path)
	require.NoError(t, err)
	assert.True(t, created)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[server]")
	assert.Contains(t, string(content), "[google]")

	// Sections are written in alphabetical order.
	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "[") {
			sections = append(sections, line)
		}
	}
	for i := 1; i < len(sections); i++ {
		assert.Less(t, sections[i-1], sections[i])
	}

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	t.Setenv("WEBFONTS_DATABASE_PATH", filepath.Join(t.TempDir(), "db.sqlite"))
	require.NoError(t, mgr.Load())
	assert.Equal(t, DefaultConfig().Google.CacheTTL, mgr.Get().Google.CacheTTL)
}

func TestWriteDefaultConfig_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0o600))

	created, err := WriteDefaultConfig(path)
	require.NoError(t, err)
	assert.False(t, created)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(content))
}

func TestWriteConfig_Nil(t *testing.T) {
	assert.Error(t, WriteConfig(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "webfonts configuration", doc["title"])
	assert.Contains(t, string(data), "cache_ttl")
}
