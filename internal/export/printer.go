package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

// ErrPrinting is returned when handing the document to the print spooler
// fails. Match with [errors.Is].
var ErrPrinting = errors.New("error printing requisition document")

// SpoolPrinter renders the requisition to a temporary PDF and hands it to
// the system spooler via lp, falling back to lpr. The copy count goes to the
// spooler rather than into the document, so the temporary file always holds
// a single copy.
type SpoolPrinter struct {
	logger *logger.Logger
}

// NewSpoolPrinter creates the printer.
func NewSpoolPrinter(log *logger.Logger) *SpoolPrinter {
	return &SpoolPrinter{logger: log}
}

// Print implements [Printer].
func (p *SpoolPrinter) Print(ctx context.Context, rec models.Requisition, settings models.PrintSettings) error {
	settings = settings.Normalized()

	tmp, err := os.CreateTemp("", "reqdesk-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPrinting, err)
	}
	path := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(path)

	single := settings
	single.Copies = 1
	if err := renderDocument(rec, single).OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %w", ErrPrinting, err)
	}

	if err := p.spool(ctx, path, settings.Copies); err != nil {
		return err
	}

	p.logger.Info().
		Str("record_id", rec.ID).
		Int("copies", settings.Copies).
		Msg("requisition sent to printer")
	return nil
}

func (p *SpoolPrinter) spool(ctx context.Context, path string, copies int) error {
	lp := exec.CommandContext(ctx, "lp", "-n", strconv.Itoa(copies), path)
	out, err := lp.CombinedOutput()
	if err == nil {
		return nil
	}
	p.logger.Debug().Err(err).Str("output", string(out)).Msg("lp failed, trying lpr")

	lpr := exec.CommandContext(ctx, "lpr", "-#", strconv.Itoa(copies), path)
	if out, err := lpr.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPrinting, string(out), err)
	}
	return nil
}
