package config

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values. It is passed explicitly into the
// components that need it rather than read from globals.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Ticketmaster Discovery API credential.
	TicketmasterAPIKey string `mapstructure:"TICKETMASTER_API_KEY"`

	// Phone number of the reseller receiving compiled requests.
	ResellerPhone string `mapstructure:"RESELLER_PHONE"`

	// Search tunables.
	SuggestionPerformerLimit int           `mapstructure:"SUGGESTION_PERFORMER_LIMIT"`
	SuggestionVenueLimit     int           `mapstructure:"SUGGESTION_VENUE_LIMIT"`
	EventPageSize            int           `mapstructure:"EVENT_PAGE_SIZE"`
	SearchDebounce           time.Duration `mapstructure:"SEARCH_DEBOUNCE"`
}

// LoadConfig reads configuration from an optional config.yaml and the
// environment. Missing credentials do not fail the load: their absence is
// detected at call time so each path can degrade the way it requires
// (silent for suggestions, surfaced for event search).
func LoadConfig() (*Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TICKETMASTER_API_KEY", "")
	viper.SetDefault("RESELLER_PHONE", "")
	viper.SetDefault("SUGGESTION_PERFORMER_LIMIT", 4)
	viper.SetDefault("SUGGESTION_VENUE_LIMIT", 3)
	viper.SetDefault("EVENT_PAGE_SIZE", 50)
	viper.SetDefault("SEARCH_DEBOUNCE", "300ms")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Validate reports missing required collaborator credentials. Hosts that
// want a hard failure at bootstrap call this after LoadConfig.
func (c *Config) Validate() error {
	if c.TicketmasterAPIKey == "" {
		return fmt.Errorf("config: TICKETMASTER_API_KEY is required")
	}
	if c.ResellerPhone == "" {
		return fmt.Errorf("config: RESELLER_PHONE is required")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
