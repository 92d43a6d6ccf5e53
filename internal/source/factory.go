package source

import (
	"context"
	"fmt"

	"github.com/tmurov/reqdesk/internal/config"
	"github.com/tmurov/reqdesk/internal/logger"
)

// NewRecordSource constructs the [RecordSource] selected by cfg.Kind.
func NewRecordSource(ctx context.Context, cfg config.Source, log *logger.Logger) (RecordSource, error) {
	switch cfg.Kind {
	case config.SourceKindHTTP:
		return NewHTTPRecordSource(cfg, log)
	case config.SourceKindPostgres:
		return NewPostgresRecordSource(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown record source kind %q", cfg.Kind)
	}
}
