// Package config provides parsing functionality for environment variables.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"time"
)

// Config stores all configuration of the server.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress string        `mapstructure:"SERVER_ADDRESS"`
	RatesFile     string        `mapstructure:"RATES_FILE"`
	RatesRefresh  time.Duration `mapstructure:"RATES_REFRESH"`
	StrictRates   bool          `mapstructure:"STRICT_RATES"`
}

// Load reads app.env from path, overridden by environment variables
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("RATES_FILE", "configs/rates.yaml")
	v.SetDefault("RATES_REFRESH", time.Minute)
	v.SetDefault("STRICT_RATES", false)

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return c, errors.Wrap(err, "reading config")
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, errors.Wrap(err, "decoding config")
	}

	if c.RatesRefresh <= 0 {
		return c, errors.Errorf("RATES_REFRESH must be positive, got %v", c.RatesRefresh)
	}

	return c, nil
}
