package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Settings are the server-side knobs, loaded from a config file with env
// overrides. Everything has a usable default so a bare file works.
type Settings struct {
	Addr             string        `mapstructure:"addr"`
	DbPath           string        `mapstructure:"db_path"`
	ShutdownTimeout  time.Duration `mapstructure:"shutdown_timeout"`
	CustomerPageSize int           `mapstructure:"customer_page_size"`
}

func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "receipt-atlas.db")
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("customer_page_size", 1000)

	v.SetEnvPrefix("RECEIPT_ATLAS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
