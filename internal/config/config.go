package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the server. Values come from
// environment variables, with defaults matching the historical hard-coded
// values so behavior is unchanged when nothing is set.
type Config struct {
	AppPort       string `validate:"required"`
	MongoURI      string `validate:"required"`
	MongoDatabase string `validate:"required"`
	JWTSecret     string `validate:"required"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":4000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "hometrack")
	viper.SetDefault("JWT_SECRET", "YOUR_SECRET_KEY")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:       viper.GetString("APP_PORT"),
		MongoURI:      viper.GetString("MONGO_URI"),
		MongoDatabase: viper.GetString("MONGO_DATABASE"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
