package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/killallgit/podcast-gateway/pkg/errors"
)

// EnvPrefix is prepended to every environment override, e.g. GATEWAY_SERVER_PORT
const EnvPrefix = "GATEWAY"

// legacyEnv maps config keys to the plain variable names the gateway has always read
var legacyEnv = map[string]string{
	"upstream.api_url": "PODCHASER_API_URL",
	"upstream.api_key": "PODCHASER_API_KEY",
	"server.port":      "PORT",
}

// placeholders are API key values that must not reach production
var placeholders = []string{
	"",
	"YOUR_KEY_HERE",
	"YOUR_API_KEY",
	"changeme",
	"CHANGEME",
}

// Load builds the configuration from defaults, an optional YAML file, a .env
// file in the working directory and the environment, in increasing priority.
// A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	// .env is optional; existing environment variables win over it
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	if configPath != "" {
		configPath = filepath.Clean(configPath)
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in defaults without reading files or the environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// defaults are static and always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate checks the configuration and fills in auto-correctable values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return apperrors.ConfigError("server.port", fmt.Sprintf("must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Upstream.APIURL == "" {
		return apperrors.ConfigRequired("upstream.api_url")
	}
	u, err := url.Parse(c.Upstream.APIURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return apperrors.ConfigError("upstream.api_url", fmt.Sprintf("must be an absolute http(s) URL, got %q", c.Upstream.APIURL))
	}

	if c.Upstream.Timeout < 0 {
		return apperrors.ConfigError("upstream.timeout", fmt.Sprintf("must not be negative, got %s", c.Upstream.Timeout))
	}

	if c.IsProduction() && c.HasPlaceholderAPIKey() {
		return apperrors.ConfigError("upstream.api_key", "cannot use placeholder values in production")
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		c.Logging.Format = "json"
	}

	if c.Security.MaxRequestBytes <= 0 {
		c.Security.MaxRequestBytes = 1 << 20
	}

	if c.Monitoring.MetricsPath == "" {
		c.Monitoring.MetricsPath = "/metrics"
	}

	return nil
}

// HasPlaceholderAPIKey reports whether the upstream API key is unset or a placeholder
func (c *Config) HasPlaceholderAPIKey() bool {
	for _, placeholder := range placeholders {
		if c.Upstream.APIKey == placeholder {
			return true
		}
	}
	return false
}

// Warnings returns non-fatal configuration problems worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.HasPlaceholderAPIKey() {
		warnings = append(warnings, "upstream API key is empty or a placeholder value; searches will be rejected upstream")
	}
	return warnings
}

// Address returns the host:port the server listens on
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Environment defaults
	v.SetDefault("environment", "development")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_header_bytes", 1048576)
	v.SetDefault("server.pretty_json", false)

	// Upstream defaults
	v.SetDefault("upstream.api_url", "https://api.podchaser.com/graphql")
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("upstream.timeout", time.Duration(0))
	v.SetDefault("upstream.user_agent", "PodcastGateway/1.0")
	v.SetDefault("upstream.verbose_errors", false)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Security defaults
	v.SetDefault("security.enable_cors", true)
	v.SetDefault("security.cors_origins", []string{"*"})
	v.SetDefault("security.max_request_bytes", 1048576)

	// Monitoring defaults
	v.SetDefault("monitoring.metrics_enabled", true)
	v.SetDefault("monitoring.metrics_path", "/metrics")

	// Docs defaults
	v.SetDefault("docs.enabled", true)
}
