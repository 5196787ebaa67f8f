package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/betbot/gosea/pkg/logger"
	"github.com/betbot/gosea/sea/client"
	"github.com/betbot/gosea/sea/types"
)

// EnvPrefix prefixes every environment override, e.g. GOSEA_API_KEY.
const EnvPrefix = "GOSEA"

// Config is the file and environment configuration of the SDK tools.
type Config struct {
	Network    string `yaml:"network" envconfig:"NETWORK"`
	APIBaseURL string `yaml:"api_base_url" envconfig:"API_BASE_URL"`
	APIKey     string `yaml:"api_key" envconfig:"API_KEY"`
	PageSize   int    `yaml:"page_size" envconfig:"PAGE_SIZE"`
	// OrderbookVersion is a pointer so that an explicit 0 (legacy) survives defaults.
	OrderbookVersion *int `yaml:"orderbook_version" envconfig:"ORDERBOOK_VERSION"`

	Log logger.Config `yaml:"log" envconfig:"LOG"`
}

// Load reads .env files, then the YAML file at path (optional), then applies
// GOSEA_* environment overrides, defaults and validation.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "apply environment overrides")
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv loads the given files, or ./.env when none are given. A missing
// default file is not an error.
func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(err, "load .env")
	}
	return nil
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Network == "" {
		c.Network = string(types.NetworkMain)
	}
	if c.PageSize == 0 {
		c.PageSize = client.DefaultPageSize
	}
	if c.OrderbookVersion == nil {
		v := client.DefaultOrderbookVersion
		c.OrderbookVersion = &v
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.OutputFile != "" && c.Log.MaxSize == 0 {
		c.Log.MaxSize = 100
	}
}

func (c *Config) Validate() error {
	if _, err := types.ParseNetwork(c.Network); err != nil {
		return errors.Wrap(err, "config network")
	}
	if c.PageSize < 1 {
		return errors.Errorf("config page_size must be positive, got %d", c.PageSize)
	}
	if c.OrderbookVersion != nil && *c.OrderbookVersion < 0 {
		return errors.Errorf("config orderbook_version must not be negative, got %d", *c.OrderbookVersion)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "config log level")
	}
	return nil
}

// ClientConfig converts the configuration into client settings.
func (c *Config) ClientConfig(log logrus.FieldLogger) client.Config {
	network, _ := types.ParseNetwork(c.Network)
	cc := client.Config{
		Network:    network,
		APIBaseURL: c.APIBaseURL,
		APIKey:     c.APIKey,
		PageSize:   c.PageSize,
		Logger:     log,
	}
	if c.OrderbookVersion != nil {
		cc.OrderbookVersion = *c.OrderbookVersion
	} else {
		cc.OrderbookVersion = client.DefaultOrderbookVersion
	}
	return cc
}
