package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Upstream    UpstreamConfig   `mapstructure:"upstream"`
	Logging     LoggingConfig    `mapstructure:"logging"`
	Security    SecurityConfig   `mapstructure:"security"`
	Monitoring  MonitoringConfig `mapstructure:"monitoring"`
	Docs        DocsConfig       `mapstructure:"docs"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	PrettyJSON      bool          `mapstructure:"pretty_json"`
}

// UpstreamConfig contains the podcast directory API settings
type UpstreamConfig struct {
	APIURL        string        `mapstructure:"api_url"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	UserAgent     string        `mapstructure:"user_agent"`
	VerboseErrors bool          `mapstructure:"verbose_errors"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool     `mapstructure:"enable_cors"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	MaxRequestBytes int64    `mapstructure:"max_request_bytes"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsPath    string `mapstructure:"metrics_path"`
}

// DocsConfig controls the swagger UI
type DocsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
