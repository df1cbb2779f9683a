// Package config reads service configuration from the environment.
package config

import "os"

// GetEnv returns the value of key, or fallback when the variable is unset or
// empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// MustGetEnv returns the value of key and panics when the variable is unset.
// Reserved for bootstrap, before the service is wired.
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
