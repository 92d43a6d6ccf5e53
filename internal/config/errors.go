package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSourceConfigs indicates invalid record source settings
	// (for example, an unknown kind, or a missing address/DSN for the
	// selected kind).
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid background sync settings
	// (for example, a zero poll interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidPrintConfigs indicates invalid print/export defaults.
	ErrInvalidPrintConfigs = errors.New("invalid print configuration")
)
