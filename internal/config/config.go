// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for photosync.
// It is populated by merging environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env      : environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Directory configures the cloud contacts directory (People API) client.
	Directory Directory `envPrefix:"DIRECTORY_"`

	// Messaging configures the messaging gateway client.
	Messaging Messaging `envPrefix:"MESSAGING_"`

	// Sync holds the sync run tuning knobs.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the run history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds plain (non-websocket) requests.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Directory configures the People API client.
type Directory struct {
	// BaseURL is the People API root, e.g. "https://people.googleapis.com".
	// Env: DIRECTORY_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// PageSize is the number of connections requested per page (1..1000).
	// Env: DIRECTORY_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// RequestTimeout bounds each outbound request.
	// Env: DIRECTORY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Messaging configures the messaging gateway client.
type Messaging struct {
	// BaseURL is the messaging gateway root, e.g. "http://localhost:3000".
	// Env: MESSAGING_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds each outbound request.
	// Env: MESSAGING_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds sync run settings.
type Sync struct {
	// UpdateInterval is the minimum spacing between two photo updates.
	// Env: SYNC_UPDATE_INTERVAL
	UpdateInterval time.Duration `env:"UPDATE_INTERVAL"`

	// ApprovalTimeout is how long a pending approval waits before it is
	// denied by default.
	// Env: SYNC_APPROVAL_TIMEOUT
	ApprovalTimeout time.Duration `env:"APPROVAL_TIMEOUT"`

	// DisableShuffle keeps the directory order instead of shuffling.
	// Env: SYNC_DISABLE_SHUFFLE
	DisableShuffle bool `env:"DISABLE_SHUFFLE"`
}

// Storage groups the storage backends used by the application.
type Storage struct {
	// DB holds the run history database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the run history database. A DSN starting
// with "postgres://" or "postgresql://" selects PostgreSQL, anything else is
// treated as a SQLite file path.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following order (later
// sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to every field still unset after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
