package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names read by FromEnv.
const (
	EnvPort            = "PORT"
	EnvUpstreamBaseURL = "UPSTREAM_BASE_URL"
	EnvVerbose         = "VERBOSE"
	EnvReadTimeout     = "SERVER_READ_TIMEOUT"
	EnvWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	EnvIdleTimeout     = "SERVER_IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// FromEnv returns base with any values set in the environment applied on top.
func FromEnv(base Config) Config {
	cfg := base
	cfg.Port = getEnvInt(EnvPort, cfg.Port)
	cfg.UpstreamBaseURL = getEnvString(EnvUpstreamBaseURL, cfg.UpstreamBaseURL)
	cfg.Verbose = getEnvBool(EnvVerbose, cfg.Verbose)
	cfg.ReadTimeout = getEnvDuration(EnvReadTimeout, cfg.ReadTimeout)
	cfg.WriteTimeout = getEnvDuration(EnvWriteTimeout, cfg.WriteTimeout)
	cfg.IdleTimeout = getEnvDuration(EnvIdleTimeout, cfg.IdleTimeout)
	cfg.ShutdownTimeout = getEnvDuration(EnvShutdownTimeout, cfg.ShutdownTimeout)
	return cfg
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
