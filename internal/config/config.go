// Package config loads CLI settings from defaults and GOSKEMA4J_*
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GOSKEMA4J_"

// Config holds the CLI settings. Flags override the loaded values.
type Config struct {
	Lang     string `koanf:"lang"      validate:"oneof=en ja"`
	Format   string `koanf:"format"    validate:"oneof=text json"`
	FailFast bool   `koanf:"fail_fast"`
	MaxBytes int64  `koanf:"max_bytes" validate:"gte=0"`
	Log      Log    `koanf:"log"`
}

// Log configures internal/logger.
type Log struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lang:   "en",
		Format: "text",
		Log:    Log{Level: "warn"},
	}
}

// envPaths maps environment keys, without EnvPrefix and lowercased, to
// config paths whose names contain an underscore.
var envPaths = map[string]string{
	"log_level": "log.level",
	"log_json":  "log.json",
	"fail_fast": "fail_fast",
	"max_bytes": "max_bytes",
}

func transformEnvKey(key, value string) (string, any) {
	k := strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if p, ok := envPaths[k]; ok {
		return p, value
	}
	return strings.ReplaceAll(k, "_", "."), value
}

// Load merges Default with the environment and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &cfg,
			TagName:          "koanf",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}
