package utils

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config Server, database and upload storage settings, decoded from a YAML
// file. Every field has a default so running without a config file works.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
	} `yaml:"database"`
	Sqlite struct {
		Filename string `yaml:"filename"`
	} `yaml:"sqlite"`
	Mysql struct {
		DSN string `yaml:"dsn"`
	} `yaml:"mysql"`
	Uploads struct {
		Dir string `yaml:"dir"`
	} `yaml:"uploads"`
}

func defaultConfig() *Config {
	config := &Config{}
	config.Server.Port = "8080"
	config.Database.Driver = "sqlite"
	config.Sqlite.Filename = "tagbox"
	config.Uploads.Dir = "uploads"
	return config
}

// NewConfig Decode the YAML file at configPath on top of the defaults. An
// empty path returns the defaults unchanged.
func NewConfig(configPath string) (*Config, error) {
	config := defaultConfig()
	if configPath == "" {
		return config, nil
	}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("cannot decode config %s: %w", configPath, err)
	}
	return config, nil
}

// ValidateConfigPath Check the path points at a regular file
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a config file", path)
	}
	return nil
}

// ParseFlags Parse the command line, returning the config path and debug mode
func ParseFlags() (string, bool, error) {
	var configPath string
	var debugMode bool

	flag.StringVar(&configPath, "config", "", "path to the yaml config file")
	flag.BoolVar(&debugMode, "debug", false, "run gin in debug mode")
	flag.Parse()

	if configPath != "" {
		if err := ValidateConfigPath(configPath); err != nil {
			return "", false, err
		}
	}
	return configPath, debugMode, nil
}
