// Package config loads, parses and validates the service configuration from
// environment variables, an optional .env file and an optional config.yaml.
// It gives the rest of the application typed access to its settings.
package config
