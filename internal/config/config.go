// Package config loads and validates the process configuration:
// environment variables read through viper, validated with
// go-playground/validator against struct tags.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the fully resolved process configuration.
type Config struct {
	GraphQLToken string `mapstructure:"graphql_token" validate:"required"`
	Org          string `mapstructure:"org" validate:"required"`
	Repo         string `mapstructure:"repo"`

	CacheDir string `mapstructure:"cache_dir" validate:"required"`

	OuterConcurrency int `mapstructure:"outer_concurrency" validate:"min=1"`
	InnerConcurrency int `mapstructure:"inner_concurrency" validate:"min=1"`

	ProbeCacheBackend string `mapstructure:"probe_cache_backend" validate:"oneof=memory redis"`
	RedisAddr         string `mapstructure:"redis_addr"`

	NotifyDryRun      bool `mapstructure:"notify_dry_run"`
	StrictTagPattern  bool `mapstructure:"strict_tag_pattern"`

	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`
	LogFile   string `mapstructure:"log_file"`
}

// Load reads configuration from the environment on top of the defaults
// set below, then validates it.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("cache_dir", "./cache")
	v.SetDefault("outer_concurrency", 20)
	v.SetDefault("inner_concurrency", 100)
	v.SetDefault("probe_cache_backend", "memory")
	v.SetDefault("notify_dry_run", false)
	v.SetDefault("strict_tag_pattern", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	bindEnv(v, "graphql_token", "GRAPHQL_TOKEN")
	bindEnv(v, "org", "ORG")
	bindEnv(v, "repo", "REPO")
	bindEnv(v, "cache_dir", "CACHE_DIR")
	bindEnv(v, "outer_concurrency", "OUTER_CONCURRENCY")
	bindEnv(v, "inner_concurrency", "INNER_CONCURRENCY")
	bindEnv(v, "probe_cache_backend", "PROBE_CACHE_BACKEND")
	bindEnv(v, "redis_addr", "REDIS_ADDR")
	bindEnv(v, "notify_dry_run", "NOTIFY_DRY_RUN")
	bindEnv(v, "strict_tag_pattern", "STRICT_TAG_PATTERN")
	bindEnv(v, "log_level", "LOG_LEVEL")
	bindEnv(v, "log_format", "LOG_FORMAT")
	bindEnv(v, "log_file", "LOG_FILE")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindEnv(v *viper.Viper, key, env string) {
	_ = v.BindEnv(key, env)
}

// Validate runs struct-tag validation over cfg, returning a fatal
// configuration error on failure.
func Validate(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	if cfg.ProbeCacheBackend == "redis" && cfg.RedisAddr == "" {
		return fmt.Errorf("config: redis_addr is required when probe_cache_backend=redis")
	}
	return nil
}
