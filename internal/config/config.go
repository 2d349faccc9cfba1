// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/themohitbharti/joblens/internal/types"
)

// EnvPrefix prefixes every environment override, e.g. JOBLENS_SERVER_PORT.
const EnvPrefix = "JOBLENS"

// Config is the merged configuration from defaults, config file, environment
// and bound CLI flags, in increasing precedence.
type Config struct {
	Log     LogConfig         `mapstructure:"log"`
	Server  ServerConfig      `mapstructure:"server"`
	Scoring ScoringConfig     `mapstructure:"scoring"`
	Profile types.RoleProfile `mapstructure:"profile"` // Default role profile when a request omits one
}

// LogConfig controls the zap logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port          int             `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout   time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration   `mapstructure:"write_timeout"`
	AllowedOrigin string          `mapstructure:"allowed_origin"`
	RateLimit     RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig controls the per-client token bucket in front of the API.
// Burst defaults to Limit when zero.
type RateLimitConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Limit     int           `mapstructure:"limit" validate:"omitempty,min=1"`
	Window    time.Duration `mapstructure:"window"`
	Burst     int           `mapstructure:"burst" validate:"min=0"`
	Whitelist []string      `mapstructure:"whitelist" validate:"omitempty,dive,ip"`
}

// ScoringConfig selects the scoring domain and batch behavior.
type ScoringConfig struct {
	Domain           string `mapstructure:"domain" validate:"oneof=resume profile"`
	BatchConcurrency int    `mapstructure:"batch_concurrency" validate:"min=1,max=64"`
}

// New returns a viper instance with defaults and environment binding applied.
// Callers may bind CLI flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.allowed_origin", "*")
	v.SetDefault("server.rate_limit.enabled", true)
	v.SetDefault("server.rate_limit.limit", 120)
	v.SetDefault("server.rate_limit.window", time.Minute)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("server.rate_limit.whitelist", []string{})
	v.SetDefault("scoring.domain", "resume")
	v.SetDefault("scoring.batch_concurrency", 4)
	v.SetDefault("profile.job_title", "")
	v.SetDefault("profile.experience_level", "")
	v.SetDefault("profile.industry", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file into v, unmarshals and validates the
// result. With an empty path, joblens.{yaml,json,toml} is looked up in the
// working directory and $HOME/.config/joblens; a missing file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("joblens")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/joblens")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("'%s' failed '%s'", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.Profile.ExperienceLevel != "" {
		if _, ok := types.ParseExperienceLevel(c.Profile.ExperienceLevel); !ok {
			return fmt.Errorf("config error: unknown experience level %q", c.Profile.ExperienceLevel)
		}
	}
	return nil
}
