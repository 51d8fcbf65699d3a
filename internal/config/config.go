package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Database *dbConfig
	Service  *svcConfig
}

type dbConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"pgsql"`
	Hostname string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"integral"`
	User     string `envconfig:"DB_USER" default:"admin"`
	Password string `envconfig:"DB_PASS" default:"adminpass"`
}

type svcConfig struct {
	Address        string `envconfig:"INTEGRAL_CALCULATOR_ADDRESS" default:":3443"`
	MetricsAddress string `envconfig:"INTEGRAL_CALCULATOR_METRICS_ADDRESS" default:":8080"`
	LogLevel       string `envconfig:"INTEGRAL_CALCULATOR_LOG_LEVEL" default:"info"`
	EventTopic     string `envconfig:"INTEGRAL_CALCULATOR_EVENT_TOPIC" default:"integral.calculator.events"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// NewDefault returns a configuration for local runs and tests: a sqlite
// database under the system temp folder instead of a postgres server.
func NewDefault() *Config {
	return &Config{
		Database: &dbConfig{
			Type: "sqlite",
			Name: filepath.Join(os.TempDir(), "integral.db"),
		},
		Service: &svcConfig{
			Address:        ":3443",
			MetricsAddress: ":8080",
			LogLevel:       "info",
			EventTopic:     "integral.calculator.events",
		},
	}
}
