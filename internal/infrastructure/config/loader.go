package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading config.toml from the XDG
// config directory and the current directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configDir, ".")
}

// NewManagerForFile creates a manager reading exactly the given file.
func NewManagerForFile(path string) (*Manager, error) {
	m, err := newManager()
	if err != nil {
		return nil, err
	}
	m.viper.SetConfigFile(path)
	return m, nil
}

func newManager(paths ...string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// WEBFONTS_SERVER_LISTEN, WEBFONTS_DATABASE_PATH, ...
	v.SetEnvPrefix("WEBFONTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "WEBFONTS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBFONTS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "WEBFONTS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind WEBFONTS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults and environment apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file %s: %w\nCheck the file format (must be valid TOML) and permissions", m.viper.ConfigFileUsed(), err)
		}
	}

	return m.reload()
}

// reload rebuilds the config from viper (internal method, must be called with lock held for write).
func (m *Manager) reload() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "warning" {
		config.Logging.Level = "warn"
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Locale.Language = strings.TrimSpace(config.Locale.Language)
	config.Google.APIBase = strings.TrimRight(config.Google.APIBase, "/")
	config.Catalog.Path = strings.TrimSpace(config.Catalog.Path)
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("admin.username", defaults.Admin.Username)
	m.viper.SetDefault("admin.password_hash", defaults.Admin.PasswordHash)
	m.viper.SetDefault("catalog.path", defaults.Catalog.Path)
	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("google.api_base", defaults.Google.APIBase)
	m.viper.SetDefault("google.css_base", defaults.Google.CSSBase)
	m.viper.SetDefault("google.request_timeout", defaults.Google.RequestTimeout)
	m.viper.SetDefault("google.cache_ttl", defaults.Google.CacheTTL)
	m.viper.SetDefault("google.cache_key", defaults.Google.CacheKey)

	m.viper.SetDefault("locale.language", defaults.Locale.Language)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("server.listen", defaults.Server.Listen)
	m.viper.SetDefault("server.read_timeout", defaults.Server.ReadTimeout)
	m.viper.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
