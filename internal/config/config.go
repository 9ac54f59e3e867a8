// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-upload-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters, the
	// internal caller key and the served API version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the upload repository.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and body limit settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings used by the uploader client to reach a server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App contains application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to verify (and, for tooling, sign)
	// bearer tokens presented on the public upload route.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of accepted tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// InternalKey is the shared secret trusted peers present in the
	// X-Internal-Key header. An empty key closes the internal route.
	InternalKey string `env:"INTERNAL_KEY"`

	// APIVersion is the only {version} path segment accepted by the server.
	// Empty means any version is accepted.
	APIVersion string `env:"API_VERSION"`

	// Version is the application version reported by the version endpoint.
	Version string `env:"VERSION"`

	// LogLevel is the minimal zerolog level (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// Uploads configures the upload repository.
	Uploads Uploads `envPrefix:"UPLOADS_"`
}

// Uploads configures where uploaded artifacts are kept and for how long.
type Uploads struct {
	// Dir is the root directory of the upload repository.
	Dir string `env:"DIR"`

	// CleanupTimeout is how long an uploaded artifact stays retrievable.
	CleanupTimeout time.Duration `env:"CLEANUP_TIMEOUT"`
}

// Server contains HTTP server settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits the request body in bytes. Zero disables the limit.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Adapter contains settings of the uploader client.
type Adapter struct {
	// HTTPAddress is the base address of the upload server.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single upload request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent on the public route.
	Token string `env:"TOKEN"`
}

// Workers contains background worker settings.
type Workers struct {
	// CleanupInterval is the period between expired upload sweeps.
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`
}

// GetStructuredConfig builds the configuration from env, flags, an optional
// JSON file and defaults, without role-specific validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig returns the configuration of the upload server.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
