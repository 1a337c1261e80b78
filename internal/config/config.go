package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// SeedRoom describes a voice room provisioned at startup.
type SeedRoom struct {
	ID    string `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Limit int    `mapstructure:"limit"`
}

type Config struct {
	Mode       string        `mapstructure:"mode"`
	Port       int           `mapstructure:"port"`
	StaticPath string        `mapstructure:"static_path"`
	ReadLimit  int64         `mapstructure:"read_limit"`
	Secret     string        `mapstructure:"secret"`

	// History cap per conversation; 0 keeps everything (the default —
	// the relay is expected to be short lived).
	HistoryMaxMessages int `mapstructure:"history_max_messages"`

	Rooms []SeedRoom `mapstructure:"rooms"`

	// Optional collaborators; empty disables the feature.
	RedisURL     string `mapstructure:"redis_url"`
	RedisChannel string `mapstructure:"redis_channel"`
	DatabaseDSN  string `mapstructure:"database_dsn"`

	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTTTL    time.Duration `mapstructure:"jwt_ttl"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	fileName := fmt.Sprintf("config/config.%s.yaml", env)

	v.SetConfigFile(fileName)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("static_path", "./web")
	v.SetDefault("read_limit", 65536)
	v.SetDefault("history_max_messages", 0)
	v.SetDefault("redis_channel", "abyss:events")
	v.SetDefault("jwt_ttl", "24h")

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("config file not found (%s), using defaults\n", fileName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Secret == "" {
		if cfg.Mode == "release" {
			return nil, fmt.Errorf("secret must be configured in release mode")
		}
		cfg.Secret = "dev-insecure-cookie-secret"
	}
	if len(cfg.Rooms) == 0 {
		cfg.Rooms = []SeedRoom{
			{ID: "general", Name: "General", Limit: 0},
			{ID: "gaming", Name: "Gaming", Limit: 0},
			{ID: "music", Name: "Music", Limit: 0},
		}
	}
	return &cfg, nil
}
