package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Build_MergesInOrder(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Source: Source{Kind: "http", HTTPAddress: "http://from-env"}},
		&StructuredConfig{Source: Source{HTTPAddress: "http://from-flags"}, Sync: Sync{Interval: time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// earlier sources win for fields they set; later ones fill the gaps
	assert.Equal(t, "http://from-env", cfg.Source.HTTPAddress)
	assert.Equal(t, "http", cfg.Source.Kind)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
}

func TestConfigBuilder_Build_PropagatesError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigBuilder_WithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, SourceKindHTTP, cfg.Source.Kind)
	assert.Equal(t, 15*time.Second, cfg.Source.RequestTimeout)
	assert.Equal(t, "reqdesk.db", cfg.Storage.StatePath)
	assert.Equal(t, 30*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 1, cfg.Print.Copies)
	assert.Equal(t, "A4", cfg.Print.Paper)
	assert.Equal(t, "portrait", cfg.Print.Orientation)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid http",
			mutate: func(c *StructuredConfig) {},
		},
		{
			name: "valid postgres",
			mutate: func(c *StructuredConfig) {
				c.Source.Kind = SourceKindPostgres
				c.Source.DSN = "postgres://localhost/hotel"
			},
		},
		{
			name:    "unknown source kind",
			mutate:  func(c *StructuredConfig) { c.Source.Kind = "ftp" },
			wantErr: ErrInvalidSourceConfigs,
		},
		{
			name:    "http without address",
			mutate:  func(c *StructuredConfig) { c.Source.HTTPAddress = "" },
			wantErr: ErrInvalidSourceConfigs,
		},
		{
			name: "postgres without dsn",
			mutate: func(c *StructuredConfig) {
				c.Source.Kind = SourceKindPostgres
				c.Source.DSN = ""
			},
			wantErr: ErrInvalidSourceConfigs,
		},
		{
			name:    "zero sync interval",
			mutate:  func(c *StructuredConfig) { c.Sync.Interval = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "empty state path",
			mutate:  func(c *StructuredConfig) { c.Storage.StatePath = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero copies",
			mutate:  func(c *StructuredConfig) { c.Print.Copies = 0 },
			wantErr: ErrInvalidPrintConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{}
			cfg.applyDefaults()
			cfg.Source.HTTPAddress = "http://localhost:8080"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
