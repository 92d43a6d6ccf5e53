// Package export renders requisition documents to PDF and sends them to the
// system print spooler.
package export

import (
	"context"

	"github.com/tmurov/reqdesk/models"
)

// Exporter writes a requisition document to a file and returns its path.
type Exporter interface {
	Export(ctx context.Context, rec models.Requisition, settings models.PrintSettings) (string, error)
}

// Printer sends a requisition document to the configured printer.
type Printer interface {
	Print(ctx context.Context, rec models.Requisition, settings models.PrintSettings) error
}
