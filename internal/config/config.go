package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

const envPrefix = "FREELANCEFLOW_"

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Auth      AuthConfig      `yaml:"auth"`
	Currency  string          `yaml:"currency"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// AuthConfig enables bearer-token auth on the HTTP surface when Token is set.
type AuthConfig struct {
	Token string `yaml:"token"`
}

// Enabled reports whether requests must carry the token.
func (a AuthConfig) Enabled() bool {
	return a.Token != ""
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "freelanceflow.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: TransportHTTP,
		},
		Currency: "USD",
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := getenv("SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sSERVER_PORT: %w", envPrefix, err)
		}
		cfg.Server.Port = port
	}
	if dbPath := getenv("DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := getenv("LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if mode := getenv("TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if token := getenv("AUTH_TOKEN"); token != "" {
		cfg.Auth.Token = token
	}
	if code := getenv("CURRENCY"); code != "" {
		cfg.Currency = code
	}

	cfg.Transport.Mode = strings.ToLower(strings.TrimSpace(cfg.Transport.Mode))
	if cfg.Transport.Mode != TransportHTTP && cfg.Transport.Mode != TransportStdio {
		return Config{}, fmt.Errorf("invalid transport mode %q (expected http|stdio)", cfg.Transport.Mode)
	}
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))

	return cfg, nil
}

func getenv(name string) string {
	return os.Getenv(envPrefix + name)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
