// Package source provides the adapters that talk to the remote requisition
// source.
//
// The primary abstraction is [RecordSource], which decouples the
// reconciliation core from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPRecordSource]) for sites that expose the
// warehouse system over an API gateway, and a direct PostgreSQL
// implementation ([NewPostgresRecordSource]) for sites where the desk reads
// the warehouse database itself.
//
// Error values defined in errors.go are mapped from transport failures so
// that callers can use [errors.Is] for protocol-agnostic error handling
// ([ErrConnectivity] for unreachable/malformed fetches, [ErrMutation] for
// failed status writes).
package source

import (
	"context"

	"github.com/tmurov/reqdesk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_source_mock.go -package=mock

// RecordSource is the remote requisition source. Implementations are
// responsible for serialisation, per-row schema validation, and mapping
// transport-level errors to the sentinel values defined in this package.
type RecordSource interface {
	// FetchAll returns the full current set of requisition records. The
	// returned snapshot carries no ordering guarantees. Rows that fail
	// schema validation are logged and skipped rather than failing the
	// whole fetch. A transport failure or a malformed response wraps
	// [ErrConnectivity].
	FetchAll(ctx context.Context) (models.Snapshot, error)

	// UpdateStatus persists a status change for the record identified by
	// recordID. Failures wrap [ErrMutation]; callers log and continue, the
	// local state remains the source of truth for the UI.
	UpdateStatus(ctx context.Context, recordID string, status models.Status) error
}
