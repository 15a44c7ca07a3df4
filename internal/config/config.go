// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultAPIAddress is the base URL of the GPU-rental user center.
const DefaultAPIAddress = "https://prod.unicorn.org.cn/cephalon/user-center"

// StructuredConfig is the top-level configuration container for the
// go-gpu-missions client. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables, an
// optional JSON/YAML file, and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: notices, paging, logging and
	// credential sealing.
	App App `envPrefix:"APP_"`

	// Storage holds the local credential database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values loaded from environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// StoragePassphrase, when set, seals the persisted token with a key
	// derived from it. Losing the passphrase only forces a new login.
	// Env: APP_STORAGE_PASSPHRASE
	StoragePassphrase string `env:"STORAGE_PASSPHRASE"`

	// NoticeDuration is how long a success/error notice stays visible.
	// Env: APP_NOTICE_DURATION
	NoticeDuration time.Duration `env:"NOTICE_DURATION"`

	// PageSize is the initial number of sessions per page (10, 20 or 50).
	// Env: APP_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// ReportTransportErrors surfaces network failures and non-2xx answers
	// as error notices instead of only logging them.
	// Env: APP_REPORT_TRANSPORT_ERRORS
	ReportTransportErrors bool `env:"REPORT_TRANSPORT_ERRORS"`

	// LogLevel is the zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPath is the file the client appends its logs to. Empty means a
	// "logs" file next to the executable.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration of the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "gpu-missions.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the remote API client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API. A missing scheme is
	// completed with https.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults returns the built-in configuration every other source is merged
// on top of.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			NoticeDuration: 3 * time.Second,
			PageSize:       10,
			LogLevel:       "debug",
		},
		Storage: Storage{
			DB: DB{DSN: "gpu-missions.db"},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. JSON/YAML file (path resolved from env and flags)
//  4. Command-line flags, as parsed into flagCfg (may be nil)
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFile(flagCfg).
		withFlags(flagCfg).
		build()
}
