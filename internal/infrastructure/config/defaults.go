package config

import "time"

const (
	defaultListen          = "127.0.0.1:8090"
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second

	defaultGoogleAPIBase     = "https://www.googleapis.com"
	defaultGoogleCSSBase     = "https://fonts.googleapis.com/css"
	defaultRequestTimeout    = 15 * time.Second
	defaultCacheTTL          = 24 * time.Hour
	defaultRemoteFontsCacheK = "gwfc_remote_fonts"

	defaultAdminUsername = "admin"
	defaultLanguage      = "en"
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"

	dirPerm  = 0o755
	filePerm = 0o644
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Admin: AdminConfig{
			Username: defaultAdminUsername,
		},
		Google: GoogleConfig{
			APIBase:        defaultGoogleAPIBase,
			CSSBase:        defaultGoogleCSSBase,
			RequestTimeout: defaultRequestTimeout,
			CacheTTL:       defaultCacheTTL,
			CacheKey:       defaultRemoteFontsCacheK,
		},
		Locale: LocaleConfig{
			Language: defaultLanguage,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Server: ServerConfig{
			Listen:          defaultListen,
			ReadTimeout:     defaultReadTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
	}
}
