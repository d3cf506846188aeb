package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Generate GenerateConfig `mapstructure:"generate"`
	Store    StoreConfig    `mapstructure:"store"`
	Seed     int64          `mapstructure:"seed"`
}

type GenerateConfig struct {
	Users            int `mapstructure:"users"`
	Products         int `mapstructure:"products"`
	Orders           int `mapstructure:"orders"`
	MaxItemsPerOrder int `mapstructure:"max_items_per_order"`
	Reviews          int `mapstructure:"reviews"`
}

type StoreConfig struct {
	CSVDir string `mapstructure:"csv_dir"`
	DBPath string `mapstructure:"db_path"`
}

// Load loads configuration from compiled-in defaults, an optional
// config.yaml, and STORESEED_-prefixed environment variables. A missing
// config file is not an error; the defaults stand on their own.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("$HOME/.storeseed/")

	v.SetEnvPrefix("STORESEED")
	v.AutomaticEnv()

	v.SetDefault("generate.users", 50)
	v.SetDefault("generate.products", 30)
	v.SetDefault("generate.orders", 80)
	v.SetDefault("generate.max_items_per_order", 5)
	v.SetDefault("generate.reviews", 60)
	v.SetDefault("store.csv_dir", "data/csv")
	v.SetDefault("store.db_path", "db/ecommerce.db")
	// Seed 0 means seed from the current time; any other value makes
	// the generated dataset reproducible.
	v.SetDefault("seed", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
