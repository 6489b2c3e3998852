// Package config resolves the rostr configuration. Settings come from an
// optional YAML file only; the interactive surface consumes no environment
// variables and no flags, so the file is the single override channel.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inovacc/rostr/internal/params"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

type Config struct {
	// DataFile is the JSON roster file, relative paths resolve against the
	// working directory.
	DataFile string `yaml:"data_file" mapstructure:"data_file"`

	// ExportFile is the default CSV export target.
	ExportFile string `yaml:"export_file" mapstructure:"export_file"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		DataFile:   "students.json",
		ExportFile: "students.csv",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Path returns the canonical config file location under the application
// data directory.
func Path() string {
	return filepath.Join(params.AppdataDir, configFileName)
}

// Load reads the configuration, searching the working directory first and
// the application data directory second. A missing file yields the defaults.
func Load() (*Config, error) {
	return load(".", params.AppdataDir)
}

func load(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error produced
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the canonical config file, creating the
// data directory if missing.
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("config: data_file is required")
	}
	if c.ExportFile == "" {
		return fmt.Errorf("config: export_file is required")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q is not a valid level", c.Log.Level)
	}
	return nil
}
