package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/changesci/changes-web/internal"
)

const (
	EnvPrefix = "CHANGES"

	NavigationErrorPropagate = "propagate"
	NavigationErrorSuppress  = "suppress"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

var validate = validator.New()

// envKeys are bound explicitly so that viper.Unmarshal picks them up even
// when they are absent from the config file.
var envKeys = []string{
	"server.host",
	"server.port",
	"api.base_url",
	"api.timeout",
	"api.retry_max",
	"api.breaker_threshold",
	"api.breaker_delay",
	"api.auth_secret",
	"layout.page_title",
	"layout.navigation_error_policy",
	"session.cookie_secure",
	"log.level",
	"log.format",
	"telemetry.enabled",
	"telemetry.otlp_endpoint",
	"telemetry.service_name",
}

// Defaults returns the configuration used for any value not set in the
// config file or environment.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port: 8000,
		},
		API: APIConfig{
			BaseURL:      "http://localhost:5000",
			Timeout:      10 * time.Second,
			BreakerDelay: 30 * time.Second,
		},
		Layout: LayoutConfig{
			PageTitle:             "Changes",
			NavigationErrorPolicy: NavigationErrorPropagate,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: "localhost:4318",
			ServiceName:  "changes-web",
		},
	}
}

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing config file is not an error unless configFile was given explicitly.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Debug("no config file found, using defaults and environment")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a loaded configuration against its struct constraints
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) error {
	if err := mergo.Merge(cfg, Defaults()); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	return nil
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel sets the log level based on the config file. Defaults to INFO if not set or invalid
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}

// SetLogFormat applies the configured log output format
func SetLogFormat(cfg *Config) {
	internal.SetLogFormat(cfg.Log.Format)
}
