// Package config loads the server configuration from environment
// variables, command-line flags and an optional JSON file, merges them
// with built-in defaults and validates the result.
package config
