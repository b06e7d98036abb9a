package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "127.0.0.1:8090", mgr.viper.GetString("server.listen"))
	assert.Equal(t, "gwfc_remote_fonts", mgr.viper.GetString("google.cache_key"))
	assert.Equal(t, 24*time.Hour, mgr.viper.GetDuration("google.cache_ttl"))
}

func TestManager_LoadFile(t *testing.T) {
	path := writeFile(t, `
[server]
listen = "0.0.0.0:9000"

[google]
cache_ttl = "2h"

[logging]
level = "WARNING"
format = "json"

[database]
path = "/tmp/webfonts-test.sqlite"
`)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
	assert.Equal(t, 2*time.Hour, cfg.Google.CacheTTL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "/tmp/webfonts-test.sqlite", cfg.Database.Path)
	assert.Equal(t, "https://www.googleapis.com", cfg.Google.APIBase)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "[server]\nlisten = \"127.0.0.1:1\"\n[database]\npath = \"/tmp/x.sqlite\"\n")
	t.Setenv("WEBFONTS_SERVER_LISTEN", "127.0.0.1:2")
	t.Setenv("WEBFONTS_LOG_LEVEL", "debug")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.Equal(t, "127.0.0.1:2", mgr.Get().Server.Listen)
	assert.Equal(t, "debug", mgr.Get().Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, `
[server]
listen = "nope"

[logging]
level = "loud"

[database]
path = "/tmp/x.sqlite"
`)

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.listen must be host:port")
	assert.Contains(t, err.Error(), "logging.level must be one of")
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr, err := NewManagerForFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().Server.Listen, mgr.Get().Server.Listen)
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig_Google(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Google.APIBase = "/relative"
	cfg.Google.CacheKey = " "
	cfg.Locale.Language = "not a tag!"

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "google.api_base must be an absolute URL")
	assert.Contains(t, err.Error(), "google.cache_key cannot be empty")
	assert.Contains(t, err.Error(), "locale.language is not a valid language tag")
}

func TestOnConfigChange_NotifiesCopies(t *testing.T) {
	mgr := &Manager{viper: viper.New(), config: DefaultConfig()}

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	mgr.mu.Lock()
	mgr.notifyCallbacksLocked()

	require.NotNil(t, got)
	got.Server.Listen = "changed:1"
	assert.Equal(t, DefaultConfig().Server.Listen, mgr.Get().Server.Listen)
}
