package main

import (
	"errors"
	"strings"
	"time"

	"growth_decay/internal/logger"
	"growth_decay/internal/server"
	"growth_decay/internal/service"

	"github.com/spf13/viper"
)

const envPrefix = "GROWTH"

// Configuration keys. Environment overrides use the prefix and underscores,
// e.g. GROWTH_LOG_LEVEL.
const (
	keyPort            = "port"
	keyLogLevel        = "log.level"
	keyMaxTablePoints  = "table.max_points"
	keyStreamInterval  = "ws.default_interval"
	keyShutdownTimeout = "server.shutdown_timeout"
)

// settings is the resolved configuration.
type settings struct {
	Port            string
	LogLevel        string
	MaxTablePoints  int
	StreamInterval  time.Duration
	ShutdownTimeout time.Duration
}

func setDefaults() {
	viper.SetDefault(keyPort, server.DefaultPort)
	viper.SetDefault(keyLogLevel, logger.InfoLevel)
	viper.SetDefault(keyMaxTablePoints, service.DefaultMaxTablePoints)
	viper.SetDefault(keyStreamInterval, 100*time.Millisecond)
	viper.SetDefault(keyShutdownTimeout, 10*time.Second)
}

// loadConfig reads path, or configs/config.yml when path is empty, plus
// environment overrides. Only the default file may be missing.
func loadConfig(path string) error {
	setDefaults()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		return viper.ReadInConfig()
	}

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

func currentSettings() settings {
	return settings{
		Port:            viper.GetString(keyPort),
		LogLevel:        viper.GetString(keyLogLevel),
		MaxTablePoints:  viper.GetInt(keyMaxTablePoints),
		StreamInterval:  viper.GetDuration(keyStreamInterval),
		ShutdownTimeout: viper.GetDuration(keyShutdownTimeout),
	}
}

func (s settings) limits() service.Limits {
	return service.Limits{MaxTablePoints: s.MaxTablePoints}
}
