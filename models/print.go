package models

// PaperSize is the page format used when printing or exporting a requisition.
type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperA5     PaperSize = "A5"
	PaperLetter PaperSize = "Letter"
)

// Orientation is the page orientation used when printing or exporting.
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// PrintSettings controls how the document renderer lays out a requisition.
type PrintSettings struct {
	// Copies is the number of identical copies to produce. Values below one
	// are normalised to one.
	Copies int `json:"copies"`

	// Paper is the page format. Unknown values are normalised to A4.
	Paper PaperSize `json:"paper"`

	// Orientation is the page orientation. Unknown values are normalised to
	// portrait.
	Orientation Orientation `json:"orientation"`
}

// Normalized returns a copy of the settings with all fields forced into their
// valid ranges.
func (p PrintSettings) Normalized() PrintSettings {
	if p.Copies < 1 {
		p.Copies = 1
	}
	switch p.Paper {
	case PaperA4, PaperA5, PaperLetter:
	default:
		p.Paper = PaperA4
	}
	switch p.Orientation {
	case OrientationPortrait, OrientationLandscape:
	default:
		p.Orientation = OrientationPortrait
	}
	return p
}
