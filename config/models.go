package config

import "time"

// Config holds the configuration of the application
// Use config.LoadConfig to create a new instance
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    yaml:"server"`
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	Layout    LayoutConfig    `mapstructure:"layout"    yaml:"layout"`
	Session   SessionConfig   `mapstructure:"session"   yaml:"session"`
	Log       LogConfig       `mapstructure:"log"       yaml:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" yaml:"telemetry"`
}

type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
}

// APIConfig configures access to the upstream Changes REST API
type APIConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	// Timeout bounds each upstream request. A negative value disables it.
	Timeout  time.Duration `mapstructure:"timeout"   yaml:"timeout"`
	RetryMax int           `mapstructure:"retry_max" yaml:"retry_max" validate:"gte=0"`
	// BreakerThreshold is the number of consecutive upstream failures that
	// open the circuit breaker. 0 disables it.
	BreakerThreshold int `mapstructure:"breaker_threshold" yaml:"breaker_threshold" validate:"gte=0"`
	// BreakerDelay is how long an open breaker rejects calls before probing
	BreakerDelay time.Duration `mapstructure:"breaker_delay" yaml:"breaker_delay"`
	// AuthSecret is used to sign the service token sent upstream. Loaded from ENV.
	AuthSecret string `mapstructure:"auth_secret" yaml:"-" json:"-"`
}

type LayoutConfig struct {
	PageTitle string `mapstructure:"page_title" yaml:"page_title"`
	// NavigationErrorPolicy is either "propagate" or "suppress"
	NavigationErrorPolicy string `mapstructure:"navigation_error_policy" yaml:"navigation_error_policy" validate:"omitempty,oneof=propagate suppress"`
}

type SessionConfig struct {
	CookieSecure bool `mapstructure:"cookie_secure" yaml:"cookie_secure"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=text json"`
}

type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"       yaml:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
	ServiceName  string `mapstructure:"service_name"  yaml:"service_name"`
}
