package export

import (
	"context"

	"github.com/tmurov/reqdesk/internal/service"
	"github.com/tmurov/reqdesk/models"
)

// Desk couples the signing transition with the document side effects.
// Printing or exporting a requisition advances it to ForSigning first; the
// record stays processed even when the printer or the filesystem then fails,
// matching the paper workflow where a signed requisition is handled whether
// or not its hard copy came out.
type Desk struct {
	transitions service.TransitionService
	exporter    Exporter
	printer     Printer
	settings    models.PrintSettings
}

// NewDesk wires the desk actions with the configured print settings.
func NewDesk(
	transitions service.TransitionService,
	exporter Exporter,
	printer Printer,
	settings models.PrintSettings,
) *Desk {
	return &Desk{
		transitions: transitions,
		exporter:    exporter,
		printer:     printer,
		settings:    settings.Normalized(),
	}
}

// Print advances the record to ForSigning and sends it to the printer.
func (d *Desk) Print(ctx context.Context, rec models.Requisition) error {
	if err := d.transitions.AdvanceToSigning(ctx, rec.ID); err != nil {
		return err
	}
	rec.Status = models.StatusForSigning
	return d.printer.Print(ctx, rec, d.settings)
}

// Export advances the record to ForSigning and writes the PDF, returning
// its path.
func (d *Desk) Export(ctx context.Context, rec models.Requisition) (string, error) {
	if err := d.transitions.AdvanceToSigning(ctx, rec.ID); err != nil {
		return "", err
	}
	rec.Status = models.StatusForSigning
	return d.exporter.Export(ctx, rec, d.settings)
}
