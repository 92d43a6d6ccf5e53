// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Murov

package config

import (
	"time"
)

// Source kinds accepted by [Source.Kind].
const (
	SourceKindHTTP     = "http"
	SourceKindPostgres = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// requisition desk application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Source holds the remote record source settings (kind, address or DSN,
	// request timeout).
	Source Source `envPrefix:"SOURCE_"`

	// Storage holds the local state database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the background poll settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Notify holds the notification delivery toggles.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Print holds the default print/export settings.
	Print Print `envPrefix:"PRINT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Source holds the settings for the remote requisition source.
type Source struct {
	// Kind selects the source adapter: "http" or "postgres".
	// Env: SOURCE_KIND
	Kind string `env:"KIND"`

	// HTTPAddress is the base URL of the requisition HTTP API, used when
	// Kind is "http" (e.g. "http://10.0.0.5:8080").
	// Env: SOURCE_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// DSN is the PostgreSQL connection string of the remote requisition
	// database, used when Kind is "postgres".
	// Env: SOURCE_DSN
	DSN string `env:"DSN"`

	// RequestTimeout is the maximum duration of a single fetch or status
	// mutation (e.g. "15s").
	// Env: SOURCE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// StatePath is the path of the SQLite database holding the persisted
	// tag sets. Empty defaults to "reqdesk.db" next to the executable.
	// Env: STORAGE_STATE_PATH
	StatePath string `env:"STATE_PATH"`
}

// Sync holds background synchronisation settings.
type Sync struct {
	// Interval is the fixed poll interval of the background sync worker
	// (e.g. "30s"). The interval timer is also the only retry mechanism
	// after a failed poll.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Notify holds notification delivery toggles.
type Notify struct {
	// Sound enables the notification sound.
	// Env: NOTIFY_SOUND
	Sound bool `env:"SOUND"`

	// Desktop enables desktop notifications when the environment grants
	// permission.
	// Env: NOTIFY_DESKTOP
	Desktop bool `env:"DESKTOP"`
}

// Print holds default print and export settings.
type Print struct {
	// Copies is the default number of copies per print/export.
	// Env: PRINT_COPIES
	Copies int `env:"COPIES"`

	// Paper is the default page format: "A4", "A5" or "Letter".
	// Env: PRINT_PAPER
	Paper string `env:"PAPER"`

	// Orientation is the default page orientation: "portrait" or "landscape".
	// Env: PRINT_ORIENTATION
	Orientation string `env:"ORIENTATION"`

	// OutputDir is the directory PDF exports are written to.
	// Env: PRINT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`
}

// GetConfig builds the merged configuration from environment variables,
// command-line flags, and an optional JSON file, applies defaults, and
// validates the result.
func GetConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *StructuredConfig) applyDefaults() {
	if c.Source.Kind == "" {
		c.Source.Kind = SourceKindHTTP
	}
	if c.Source.RequestTimeout <= 0 {
		c.Source.RequestTimeout = 15 * time.Second
	}
	if c.Storage.StatePath == "" {
		c.Storage.StatePath = "reqdesk.db"
	}
	if c.Sync.Interval <= 0 {
		c.Sync.Interval = 30 * time.Second
	}
	if c.Print.Copies <= 0 {
		c.Print.Copies = 1
	}
	if c.Print.Paper == "" {
		c.Print.Paper = "A4"
	}
	if c.Print.Orientation == "" {
		c.Print.Orientation = "portrait"
	}
	if c.Print.OutputDir == "" {
		c.Print.OutputDir = "exports"
	}
}
