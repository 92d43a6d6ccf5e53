package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

// ErrRenderingDocument is returned when the PDF backend fails to produce a
// document. Match with [errors.Is].
var ErrRenderingDocument = errors.New("error rendering requisition document")

// PDFExporter renders requisitions to PDF files in a fixed output directory.
type PDFExporter struct {
	outputDir string
	logger    *logger.Logger
}

// NewPDFExporter creates the exporter. The output directory is created on
// first export, not here.
func NewPDFExporter(outputDir string, log *logger.Logger) *PDFExporter {
	return &PDFExporter{outputDir: outputDir, logger: log}
}

// Export implements [Exporter]. The document layout is fixed: a header with
// the requisition number, department and date, the line items table, the
// total, and signatory lines. Copies in settings become identical pages of
// one file.
func (e *PDFExporter) Export(_ context.Context, rec models.Requisition, settings models.PrintSettings) (string, error) {
	settings = settings.Normalized()

	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	doc := renderDocument(rec, settings)
	path := filepath.Join(e.outputDir, fileName(rec))

	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingDocument, err)
	}

	e.logger.Info().
		Str("record_id", rec.ID).
		Str("path", path).
		Int("copies", settings.Copies).
		Msg("requisition exported")
	return path, nil
}

func fileName(rec models.Requisition) string {
	return fmt.Sprintf("req-%s.pdf", rec.ID)
}

func renderDocument(rec models.Requisition, settings models.PrintSettings) *fpdf.Fpdf {
	doc := fpdf.New(fpdfOrientation(settings.Orientation), "mm", string(settings.Paper), "")

	for copyNo := 0; copyNo < settings.Copies; copyNo++ {
		renderPage(doc, rec)
	}
	return doc
}

func fpdfOrientation(o models.Orientation) string {
	if o == models.OrientationLandscape {
		return "L"
	}
	return "P"
}

func renderPage(doc *fpdf.Fpdf, rec models.Requisition) {
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, "Requisition "+headerLabel(rec), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Department: "+rec.Department, "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, "Date: "+rec.Date.Format("02.01.2006"), "", 1, "L", false, 0, "")
	doc.Ln(4)

	renderItemsTable(doc, rec)
	doc.Ln(2)

	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 8, fmt.Sprintf("Total: %.2f", rec.Total), "", 1, "R", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(95, 6, "Requested by: "+rec.RequestedBy, "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, "Approved by: "+rec.ApprovedBy, "", 1, "L", false, 0, "")
	doc.Ln(8)
	doc.CellFormat(95, 6, "Signature: ______________________", "", 0, "L", false, 0, "")
	doc.CellFormat(0, 6, "Signature: ______________________", "", 1, "L", false, 0, "")
}

func headerLabel(rec models.Requisition) string {
	if rec.Number != "" {
		return rec.Number
	}
	return rec.ID
}

func renderItemsTable(doc *fpdf.Fpdf, rec models.Requisition) {
	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	usable := pageWidth - left - right

	descW := usable * 0.45
	colW := (usable - descW) / 4

	doc.SetFont("Helvetica", "B", 9)
	doc.CellFormat(descW, 7, "Description", "1", 0, "L", false, 0, "")
	doc.CellFormat(colW, 7, "Unit", "1", 0, "C", false, 0, "")
	doc.CellFormat(colW, 7, "Qty", "1", 0, "C", false, 0, "")
	doc.CellFormat(colW, 7, "Unit price", "1", 0, "C", false, 0, "")
	doc.CellFormat(colW, 7, "Amount", "1", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, item := range rec.Items {
		doc.CellFormat(descW, 6, item.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(colW, 6, item.Unit, "1", 0, "C", false, 0, "")
		doc.CellFormat(colW, 6, fmt.Sprintf("%.2f", item.Quantity), "1", 0, "R", false, 0, "")
		doc.CellFormat(colW, 6, fmt.Sprintf("%.2f", item.UnitPrice), "1", 0, "R", false, 0, "")
		doc.CellFormat(colW, 6, fmt.Sprintf("%.2f", item.Amount()), "1", 1, "R", false, 0, "")
	}
}
