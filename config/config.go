package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort     string        `envconfig:"HTTP_PORT"     default:":8080"`
	DataDir      string        `envconfig:"DATA_DIR"      default:"./data"`
	LogLevel     string        `envconfig:"LOG_LEVEL"     default:"info"`
	LoginLatency time.Duration `envconfig:"LOGIN_LATENCY" default:"500ms"` // simulated auth round-trip
	AuthScheme   string        `envconfig:"AUTH_SCHEME"   default:"plain"` // plain or bcrypt
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: HTTP Port=%s, DataDir=%s, LogLevel=%s, AuthScheme=%s",
			config.HTTPPort, config.DataDir, config.LogLevel, config.AuthScheme)
	})
	return &config
}
