package config

import "time"

// Config represents the complete configuration for webfonts.
type Config struct {
	// Admin holds the credentials allowed to manage options.
	Admin AdminConfig `mapstructure:"admin" toml:"admin" json:"admin"`
	// Catalog locates the font catalog file.
	Catalog CatalogConfig `mapstructure:"catalog" toml:"catalog" json:"catalog"`
	// Database controls the SQLite store for options and transients.
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Google configures the remote font service.
	Google GoogleConfig `mapstructure:"google" toml:"google" json:"google"`
	// Locale selects the language of the admin page.
	Locale LocaleConfig `mapstructure:"locale" toml:"locale" json:"locale"`
	// Logging controls log level and format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Server configures the HTTP admin surface.
	Server ServerConfig `mapstructure:"server" toml:"server" json:"server"`
}

// AdminConfig holds the single administrator account.
type AdminConfig struct {
	Username string `mapstructure:"username" toml:"username" json:"username" jsonschema:"description=Administrator user name for HTTP basic auth"`
	// PasswordHash is a bcrypt hash. An empty hash denies every request.
	PasswordHash string `mapstructure:"password_hash" toml:"password_hash" json:"password_hash" jsonschema:"description=bcrypt hash of the administrator password"`
}

// CatalogConfig locates the font catalog.
type CatalogConfig struct {
	// Path to a TOML catalog. Empty uses the embedded default catalog.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=Font catalog TOML file (empty for built-in catalog)"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite database file"`
}

// GoogleConfig configures the Google Fonts endpoints and the remote list cache.
type GoogleConfig struct {
	APIBase        string        `mapstructure:"api_base" toml:"api_base" json:"api_base" jsonschema:"description=Base URL of the Google Web Fonts Developer API"`
	CSSBase        string        `mapstructure:"css_base" toml:"css_base" json:"css_base" jsonschema:"description=Base URL of the Google Fonts CSS API"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" toml:"request_timeout" json:"request_timeout" jsonschema:"type=string,description=Timeout of a remote font list request"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl" toml:"cache_ttl" json:"cache_ttl" jsonschema:"type=string,description=How long the remote font list stays cached"`
	CacheKey       string        `mapstructure:"cache_key" toml:"cache_key" json:"cache_key" jsonschema:"description=Transient name of the cached remote font list"`
}

// LocaleConfig selects the admin page language.
type LocaleConfig struct {
	Language string `mapstructure:"language" toml:"language" json:"language" jsonschema:"description=BCP 47 language tag,enum=en,enum=fr"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Listen          string        `mapstructure:"listen" toml:"listen" json:"listen" jsonschema:"description=Listen address of the admin server"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" toml:"read_timeout" json:"read_timeout" jsonschema:"type=string"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" toml:"shutdown_timeout" json:"shutdown_timeout" jsonschema:"type=string"`
}
