package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateGoogle(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLocale(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateServer(config *Config) []string {
	var errs []string
	if _, _, err := net.SplitHostPort(config.Server.Listen); err != nil {
		errs = append(errs, fmt.Sprintf("server.listen must be host:port (got: %s)", config.Server.Listen))
	}
	if config.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if config.Server.ShutdownTimeout < 0 {
		errs = append(errs, "server.shutdown_timeout must be non-negative")
	}
	return errs
}

func validateGoogle(config *Config) []string {
	var errs []string
	for _, f := range []struct{ field, raw string }{
		{"google.api_base", config.Google.APIBase},
		{"google.css_base", config.Google.CSSBase},
	} {
		u, err := url.Parse(f.raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("%s must be an absolute URL (got: %s)", f.field, f.raw))
		}
	}
	if config.Google.RequestTimeout <= 0 {
		errs = append(errs, "google.request_timeout must be positive")
	}
	if config.Google.CacheTTL < 0 {
		errs = append(errs, "google.cache_ttl must be non-negative")
	}
	if strings.TrimSpace(config.Google.CacheKey) == "" {
		errs = append(errs, "google.cache_key cannot be empty")
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return errs
}

func validateLocale(config *Config) []string {
	if _, err := language.Parse(config.Locale.Language); err != nil {
		return []string{fmt.Sprintf("locale.language is not a valid language tag (got: %s)", config.Locale.Language)}
	}
	return nil
}
