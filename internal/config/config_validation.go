// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Murov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It assumes defaults
// have already been applied.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (c *StructuredConfig) validate() error {
	switch c.Source.Kind {
	case SourceKindHTTP:
		if c.Source.HTTPAddress == "" {
			return ErrInvalidSourceConfigs
		}
	case SourceKindPostgres:
		if c.Source.DSN == "" {
			return ErrInvalidSourceConfigs
		}
	default:
		return ErrInvalidSourceConfigs
	}

	if c.Source.RequestTimeout <= 0 {
		return ErrInvalidSourceConfigs
	}

	if c.Storage.StatePath == "" {
		return ErrInvalidStorageConfigs
	}

	if c.Sync.Interval <= 0 {
		return ErrInvalidSyncConfigs
	}

	if c.Print.Copies < 1 {
		return ErrInvalidPrintConfigs
	}

	return nil
}
