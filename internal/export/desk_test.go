package export

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmurov/reqdesk/models"
)

// spyTransitions records AdvanceToSigning calls in order relative to the
// side-effect spies.
type spyTransitions struct {
	trace *[]string
	err   error
}

func (s *spyTransitions) AdvanceToSigning(_ context.Context, recordID string) error {
	*s.trace = append(*s.trace, "advance:"+recordID)
	return s.err
}

func (s *spyTransitions) Open(context.Context, string) error { return nil }

type spyExporter struct {
	trace *[]string
	err   error
}

func (s *spyExporter) Export(_ context.Context, rec models.Requisition, _ models.PrintSettings) (string, error) {
	*s.trace = append(*s.trace, "export:"+rec.ID)
	if s.err != nil {
		return "", s.err
	}
	return "/tmp/req-" + rec.ID + ".pdf", nil
}

type spyPrinter struct {
	trace  *[]string
	err    error
	gotRec models.Requisition
}

func (s *spyPrinter) Print(_ context.Context, rec models.Requisition, _ models.PrintSettings) error {
	*s.trace = append(*s.trace, "print:"+rec.ID)
	s.gotRec = rec
	return s.err
}

func newDeskFixture() (*[]string, *spyTransitions, *spyExporter, *spyPrinter, *Desk) {
	trace := &[]string{}
	transitions := &spyTransitions{trace: trace}
	exporter := &spyExporter{trace: trace}
	printer := &spyPrinter{trace: trace}
	desk := NewDesk(transitions, exporter, printer, models.PrintSettings{Copies: 2})
	return trace, transitions, exporter, printer, desk
}

// ── Print ────────────────────────────────────────────────────────────────────

func TestDesk_Print_AdvancesBeforePrinting(t *testing.T) {
	trace, _, _, printer, desk := newDeskFixture()

	err := desk.Print(context.Background(), models.Requisition{ID: "1", Status: models.StatusApproved})
	require.NoError(t, err)

	assert.Equal(t, []string{"advance:1", "print:1"}, *trace)
	assert.Equal(t, models.StatusForSigning, printer.gotRec.Status, "printed document shows the advanced status")
}

func TestDesk_Print_TransitionFailureSkipsPrinting(t *testing.T) {
	trace, transitions, _, _, desk := newDeskFixture()
	transitions.err = errors.New("record not found")

	err := desk.Print(context.Background(), models.Requisition{ID: "1"})

	require.Error(t, err)
	assert.Equal(t, []string{"advance:1"}, *trace)
}

func TestDesk_Print_PrinterFailureAfterTransition(t *testing.T) {
	trace, _, _, printer, desk := newDeskFixture()
	printer.err = errors.New("spooler down")

	err := desk.Print(context.Background(), models.Requisition{ID: "1"})

	require.Error(t, err)
	// the transition has already happened; the record stays processed
	assert.Equal(t, []string{"advance:1", "print:1"}, *trace)
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestDesk_Export_AdvancesBeforeExporting(t *testing.T) {
	trace, _, _, _, desk := newDeskFixture()

	path, err := desk.Export(context.Background(), models.Requisition{ID: "7"})
	require.NoError(t, err)

	assert.Equal(t, []string{"advance:7", "export:7"}, *trace)
	assert.Equal(t, "/tmp/req-7.pdf", path)
}

func TestDesk_Export_TransitionFailureSkipsExport(t *testing.T) {
	trace, transitions, _, _, desk := newDeskFixture()
	transitions.err = errors.New("record not found")

	_, err := desk.Export(context.Background(), models.Requisition{ID: "7"})

	require.Error(t, err)
	assert.Equal(t, []string{"advance:7"}, *trace)
}
