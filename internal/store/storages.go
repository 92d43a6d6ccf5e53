package store

import (
	"context"

	"github.com/tmurov/reqdesk/internal/config"
	"github.com/tmurov/reqdesk/internal/logger"
)

// Storages aggregates all local repositories used by the desk application.
type Storages struct {
	TagSets TagSetRepository
}

// NewStorages opens the local state database and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		TagSets: NewTagSetRepository(db, log),
	}, nil
}
