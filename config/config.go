package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ServerConfig configures the skip metadata API
type ServerConfig struct {
	Port    int    `mapstructure:"PORT" validate:"min=1,max=65535"`
	DataDir string `mapstructure:"SKIP_DATA_DIR" validate:"required"`
}

// Addr returns the listen address for the configured port
func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoadServerConfig reads the server configuration from the environment
func LoadServerConfig(logger *slog.Logger) (*ServerConfig, error) {
	v := viper.New()
	for _, key := range []string{"PORT", "SKIP_DATA_DIR"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", 3000)
	v.SetDefault("SKIP_DATA_DIR", "skip")

	cfg := ServerConfig{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if logger != nil {
		logger.Debug("Loaded configuration", "port", cfg.Port, "data_dir", cfg.DataDir)
	}
	return &cfg, nil
}
