package config

import "os"

// Environment variables understood by the command line.
const (
	EnvSSHAddr = "SKYFALL_SSH_ADDR"
)

// GetEnv returns the value of key, or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
