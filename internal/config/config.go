package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Static   StaticConfig   `mapstructure:"static"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// StaticConfig points at the directory holding the landing page.
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	viper.AutomaticEnv()
	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Set default values ---
	viper.SetDefault("server.address", ":3000")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "exercise_tracker")
	viper.SetDefault("static.dir", "./public")

	// --- Read Config File ---
	err = viper.ReadInConfig()
	// Missing config file is fine; defaults and env vars carry the load.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
