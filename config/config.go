// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr        string `env:"BIND_ADDR"            flag:"bind-addr"            flagDesc:"Bind address"`
	Collection      string `env:"MONGODB_COLLECTION"   flag:"mongodb-collection"   flagDesc:"MongoDB collection for invoice data"`
	Database        string `env:"MONGODB_DATABASE"     flag:"mongodb-database"     flagDesc:"MongoDB database for invoice data"`
	MongoDBURL      string `env:"MONGODB_URL"          flag:"mongodb-url"          flagDesc:"MongoDB server URL"`
	ExchangeRateURL string `env:"EXCHANGE_RATE_URL"    flag:"exchange-rate-url"    flagDesc:"URL used to fetch currency exchange rates"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:   "invoices",
		Collection: "invoices",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
