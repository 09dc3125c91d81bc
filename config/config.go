package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Storage     StorageConfig
	Scheduler   SchedulerConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StorageConfig struct {
	Path string
}

type SchedulerConfig struct {
	TickInterval time.Duration
	UndoDelay    time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/daynix/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/daynix/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Storage.Path = viper.GetString("storage.path")
	if dbPath := viper.GetString("daynix_db"); dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	cfg.Scheduler.TickInterval = viper.GetDuration("scheduler.tick_interval")
	cfg.Scheduler.UndoDelay = viper.GetDuration("scheduler.undo_delay")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.path", "daynix.db")
	viper.SetDefault("scheduler.tick_interval", "60s")
	viper.SetDefault("scheduler.undo_delay", "5s")
	viper.SetDefault("rate_limit.requests_per_min", 120)
}
