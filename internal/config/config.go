// Package config holds the runtime settings for the server, populated once
// from the environment by the entry point. Handlers never read the
// environment themselves; the sole exception is per-request hostname lookup.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DefaultPort matches the port the hands-on container manifests expose.
	DefaultPort = 3000

	envPort = "PORT"
)

// Config carries everything the server needs at startup.
type Config struct {
	Port int
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; variables already set in the real
// environment take precedence.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port: portFromEnv(),
	}
}

// Addr returns the listen address, bound on all interfaces.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// HealthURL returns the local health-check URL announced at startup.
func (c Config) HealthURL() string {
	return fmt.Sprintf("http://localhost:%d/health", c.Port)
}

// portFromEnv reads PORT. Unset, unparseable, or out-of-range values are
// treated as unset and fall back to DefaultPort.
func portFromEnv() int {
	raw := os.Getenv(envPort)
	if raw == "" {
		return DefaultPort
	}
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return DefaultPort
	}
	return port
}
