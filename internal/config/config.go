// Package config loads blockd configuration with viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the block daemon
type Config struct {
	// Server configuration
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Redis       string `mapstructure:"redis"`

	// Default block parameters, used when a create request omits them
	Model          string `mapstructure:"model"`
	ObservationDim int    `mapstructure:"observation_dim"`
	ActionDim      int    `mapstructure:"action_dim"`

	// OpenTelemetry configuration
	OTELEnabled  bool   `mapstructure:"otel_enabled"`
	OTELEndpoint string `mapstructure:"otel_endpoint"`

	// Feature flags
	UseMockInference bool `mapstructure:"use_mock_inference"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 50061)
	v.SetDefault("metrics_port", 9101)
	v.SetDefault("redis", "")
	v.SetDefault("model", "policy.onnx")
	v.SetDefault("observation_dim", 0)
	v.SetDefault("action_dim", 0)
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_endpoint", "")
	v.SetDefault("use_mock_inference", false)
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("POLICY_BLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("port", "POLICY_BLOCK_PORT")
	v.BindEnv("metrics_port", "POLICY_BLOCK_METRICS_PORT")
	v.BindEnv("redis", "POLICY_BLOCK_REDIS")
	v.BindEnv("model", "POLICY_BLOCK_MODEL")
	v.BindEnv("observation_dim", "POLICY_BLOCK_OBSERVATION_DIM")
	v.BindEnv("action_dim", "POLICY_BLOCK_ACTION_DIM")
	v.BindEnv("otel_enabled", "POLICY_BLOCK_OTEL_ENABLED")
	v.BindEnv("otel_endpoint", "POLICY_BLOCK_OTEL_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("use_mock_inference", "POLICY_BLOCK_USE_MOCK")
}

// Load loads configuration from environment variables and an optional
// config file. Priority (highest to lowest): env vars > config file >
// defaults.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/policy-block/")
	v.AddConfigPath("$HOME/.policy-block")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; ignore
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// LoadWithConfigFile loads configuration from a specific config file
func LoadWithConfigFile(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the daemon configuration. Width positivity for a
// concrete block instance is enforced at Configure time, not here; the
// daemon defaults may legitimately be zero when every create request
// supplies its own dimensions.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.MetricsPort <= 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", c.MetricsPort)
	}
	if c.Port == c.MetricsPort {
		return fmt.Errorf("port and metrics_port must be different")
	}
	if c.Model == "" && !c.UseMockInference {
		return fmt.Errorf("model path is required when not using mock inference")
	}
	if c.ObservationDim < 0 || c.ActionDim < 0 {
		return fmt.Errorf("default dimensions must not be negative")
	}
	return nil
}
