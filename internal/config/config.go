// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// webapp server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and notification link settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// blob storage backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and upload settings for the
	// HTTP and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the outbound notification publisher.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control
// authentication and the public links embedded in notifications.
type App struct {
	// TokenSignKey is the secret key used to sign and verify tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the fixed lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHasher selects the password hashing algorithm:
	// "bcrypt" or "argon2id".
	// Env: APP_PASSWORD_HASHER
	PasswordHasher string `env:"PASSWORD_HASHER"`

	// BcryptCost is the bcrypt work factor.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// PublicURL is the externally reachable base URL of the API, used to
	// build reference links in book notifications.
	// Env: APP_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimal level written to the log (zerolog level names).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Objects holds the S3 compatible object storage settings.
	Objects Objects `envPrefix:"OBJECTS_"`

	// Files holds the filesystem blob storage settings, used when no object
	// storage endpoint is configured.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its form: postgres:// and postgresql://
	// URLs open PostgreSQL through pgx, "file:" URIs and *.db paths open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Objects holds the S3 compatible object storage settings.
type Objects struct {
	// Endpoint is the host[:port] of the object storage service.
	// Env: STORAGE_OBJECTS_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: STORAGE_OBJECTS_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`

	// Env: STORAGE_OBJECTS_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// Bucket is created at startup when it does not exist.
	// Env: STORAGE_OBJECTS_BUCKET
	Bucket string `env:"BUCKET"`

	// Env: STORAGE_OBJECTS_REGION
	Region string `env:"REGION"`

	// Env: STORAGE_OBJECTS_USE_SSL
	UseSSL bool `env:"USE_SSL"`
}

// Files holds filesystem settings for the local blob store.
type Files struct {
	// BinaryDataDir is the directory image blobs are written under.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// The gRPC server is not started when empty.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize caps the body of image upload requests, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// CORSAllowedOrigins enables CORS for the listed origins.
	// Env: SERVER_CORS_ALLOWED_ORIGINS (comma separated)
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS"`
}

// Notifier names accepted by Adapter.Notifier.
const (
	NotifierLog     = "log"
	NotifierWebhook = "webhook"
	NotifierRedis   = "redis"
)

// Adapter holds configuration for the outbound book notification publisher.
type Adapter struct {
	// Notifier selects the publisher: "log", "webhook" or "redis".
	// Env: ADAPTER_NOTIFIER
	Notifier string `env:"NOTIFIER"`

	// WebhookURL receives book events as JSON POST requests.
	// Env: ADAPTER_WEBHOOK_URL
	WebhookURL string `env:"WEBHOOK_URL"`

	// WebhookSecret signs webhook bodies (HMAC-SHA256, hex in X-Signature).
	// Env: ADAPTER_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// Env: ADAPTER_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// Env: ADAPTER_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: ADAPTER_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// RedisChannel is the pub/sub channel book events are published to.
	// Env: ADAPTER_REDIS_CHANNEL
	RedisChannel string `env:"REDIS_CHANNEL"`

	// RequestTimeout bounds a single publish call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often orphaned blobs are reconciled.
	// Zero disables the sweeper.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// SweepGracePeriod protects blobs younger than this from the sweeper,
	// so in-flight uploads are not removed before their row is written.
	// Env: WORKERS_SWEEP_GRACE_PERIOD
	SweepGracePeriod time.Duration `env:"SWEEP_GRACE_PERIOD"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are applied in priority order (the first source
// that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
