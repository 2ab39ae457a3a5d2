package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/llpg-simpleaddress/internal/address"
)

// Config is the settings file for the service and command line tools.
type Config struct {
	Format struct {
		Separator  string `yaml:"separator"`
		POBoxLabel string `yaml:"po_box_label"`
	} `yaml:"format"`

	Server struct {
		Host   string `yaml:"host"`
		Port   int    `yaml:"port"`
		APIKey string `yaml:"api_key"`
	} `yaml:"server"`

	Database struct {
		URL            string `yaml:"url"`
		MaxConnections int    `yaml:"max_connections"`
	} `yaml:"database"`

	Label struct {
		FontFile string  `yaml:"font_file"`
		Columns  int     `yaml:"columns"`
		Rows     int     `yaml:"rows"`
		FontSize float64 `yaml:"font_size"`
	} `yaml:"label"`

	Debug bool `yaml:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	cfg := &Config{}
	opts := address.DefaultOptions()
	cfg.Format.Separator = opts.Separator
	cfg.Format.POBoxLabel = opts.POBoxLabel
	cfg.Server.Host = "localhost"
	cfg.Server.Port = 8080
	cfg.Database.MaxConnections = 10
	cfg.Label.Columns = 2
	cfg.Label.Rows = 7
	cfg.Label.FontSize = 10
	return cfg
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("unable to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Format.Separator = GetEnv("ADDRESS_SEPARATOR", c.Format.Separator)
	c.Format.POBoxLabel = GetEnv("ADDRESS_PO_BOX_LABEL", c.Format.POBoxLabel)
	c.Server.Host = GetEnv("WEB_HOST", c.Server.Host)
	c.Server.Port = GetEnvInt("WEB_PORT", c.Server.Port)
	c.Server.APIKey = GetEnv("API_KEY", c.Server.APIKey)
	c.Database.URL = GetEnv("DATABASE_URL", c.Database.URL)
	c.Database.MaxConnections = GetEnvInt("DB_MAX_CONNECTIONS", c.Database.MaxConnections)
	c.Label.FontFile = GetEnv("LABEL_FONT_FILE", c.Label.FontFile)
	c.Label.FontSize = GetEnvFloat("LABEL_FONT_SIZE", c.Label.FontSize)
	c.Debug = GetEnvBool("DEBUG", c.Debug)
}

// AddressOptions converts the format section for the composer.
func (c *Config) AddressOptions() address.Options {
	return address.Options{
		Separator:  c.Format.Separator,
		POBoxLabel: c.Format.POBoxLabel,
	}
}
