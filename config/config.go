package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Environment string `required:"true" envconfig:"APP_ENV"`
	Port        string `required:"true" envconfig:"PORT"`

	Storage
	MongoDb
	Metrics
}

// Storage points at the graph analytics backend the dashboard proxies.
type Storage struct {
	StorageUrl     string        `required:"true" envconfig:"STORAGE_URL"`
	StorageTimeout time.Duration `default:"10s" envconfig:"STORAGE_TIMEOUT"`
	Currencies     []string      `default:"btc,bch,ltc,zec" envconfig:"CURRENCIES"`
}

// MongoDb is optional, user tags are disabled without it.
type MongoDb struct {
	MongoDbName string `default:"dashboard" envconfig:"MONGO_DB_NAME"`
	MongoDbUrl  string `envconfig:"MONGO_DB_URL"`
}

type Metrics struct {
	MetricsEnabled bool `default:"true" envconfig:"METRICS_ENABLED"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() (*Config, error) {
	var err error
	once.Do(func() {
		var cfg Config
		_ = godotenv.Load(".env")

		if err = envconfig.Process("", &cfg); err != nil {
			return
		}

		config = &cfg
	})

	return config, err
}

// UserTagsEnabled reports whether a mongo url was configured.
func (c *Config) UserTagsEnabled() bool {
	return c.MongoDbUrl != ""
}
