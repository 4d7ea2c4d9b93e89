// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultOfficialAPIURL is the public PullPush API the documentation points at.
	DefaultOfficialAPIURL = "https://api.pullpush.io"
	DefaultServerHost     = "0.0.0.0"
	DefaultServerPort     = "8000"
)

type Config struct {
	ServerHost      string
	ServerPort      string
	OfficialAPIURL  string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	EnableH2C       bool
}

// LoadConfig reads an optional .env file and the process environment.
// Every setting has a default, so an empty environment is valid.
func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	officialURL, err := parseOfficialURL(getEnv("OFFICIAL_API_URL", DefaultOfficialAPIURL))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerHost:      getEnv("SERVER_HOST", DefaultServerHost),
		ServerPort:      getEnv("SERVER_PORT", DefaultServerPort),
		OfficialAPIURL:  officialURL,
		ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		EnableH2C:       getEnvBool("ENABLE_H2C", false),
	}, nil
}

// Address is the listen address handed to the HTTP server.
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

func parseOfficialURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")

	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "", fmt.Errorf("invalid OFFICIAL_API_URL format, must start with http:// or https://: %s", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid OFFICIAL_API_URL %s: %w", raw, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid OFFICIAL_API_URL %s: missing host", raw)
	}
	return raw, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
