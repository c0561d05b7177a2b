package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Events   *EventsConfig   `mapstructure:"events"`
	Claim    *ClaimConfig    `mapstructure:"claim"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

// EventsConfig is the static event catalog. It is read once at startup and
// never written back by the API.
type EventsConfig struct {
	ActiveID uint          `mapstructure:"active_id"`
	Catalog  []EventConfig `mapstructure:"catalog"`
}

type EventConfig struct {
	ID               uint   `mapstructure:"id"`
	Name             string `mapstructure:"name"`
	EventName        string `mapstructure:"event_name"`
	Date             string `mapstructure:"date"`
	Time             string `mapstructure:"time"`
	Location         string `mapstructure:"location"`
	MaxTickets       int    `mapstructure:"max_tickets"`
	MaxFemaleTickets int    `mapstructure:"max_female_tickets"`
	MaxTicketsPerIP  int    `mapstructure:"max_tickets_per_ip"`
}

// ClaimConfig selects which purchased ticket types may claim add-on tickets.
// The after-party and closing-party deployments ship different allow-lists
// over the same flow.
type ClaimConfig struct {
	FlowName      string   `mapstructure:"flow_name"`
	EligibleETIDs []string `mapstructure:"eligible_etids"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return conf, nil
}
