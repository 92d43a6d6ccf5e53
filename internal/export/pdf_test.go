package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

func sampleRequisition() models.Requisition {
	return models.Requisition{
		ID:         "r-42",
		Number:     "REQ-2026-042",
		Department: "Housekeeping",
		Status:     models.StatusApproved,
		Date:       time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Items: []models.LineItem{
			{Description: "Bath towels", Unit: "pcs", Quantity: 40, UnitPrice: 12.50},
			{Description: "Laundry detergent", Unit: "kg", Quantity: 10, UnitPrice: 4.20},
		},
		Total:       542.00,
		RequestedBy: "M. Ivanova",
		ApprovedBy:  "P. Orlov",
	}
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestPDFExporter_Export_WritesFile(t *testing.T) {
	dir := t.TempDir()
	e := NewPDFExporter(dir, logger.Nop())

	path, err := e.Export(context.Background(), sampleRequisition(), models.PrintSettings{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "req-r-42.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFExporter_Export_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports", "nested")
	e := NewPDFExporter(dir, logger.Nop())

	path, err := e.Export(context.Background(), sampleRequisition(), models.PrintSettings{})
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestPDFExporter_Export_MoreCopiesGrowTheDocument(t *testing.T) {
	dir := t.TempDir()
	e := NewPDFExporter(dir, logger.Nop())
	rec := sampleRequisition()

	one, err := e.Export(context.Background(), rec, models.PrintSettings{Copies: 1})
	require.NoError(t, err)
	oneInfo, err := os.Stat(one)
	require.NoError(t, err)

	rec.ID = "r-43"
	three, err := e.Export(context.Background(), rec, models.PrintSettings{Copies: 3})
	require.NoError(t, err)
	threeInfo, err := os.Stat(three)
	require.NoError(t, err)

	assert.Greater(t, threeInfo.Size(), oneInfo.Size(), "each copy adds a page")
}

func TestPDFExporter_Export_NoItemsStillRenders(t *testing.T) {
	dir := t.TempDir()
	e := NewPDFExporter(dir, logger.Nop())

	rec := sampleRequisition()
	rec.Items = nil
	rec.Number = ""

	path, err := e.Export(context.Background(), rec, models.PrintSettings{
		Paper:       models.PaperA5,
		Orientation: models.OrientationLandscape,
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
