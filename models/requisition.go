package models

import (
	"sort"
	"time"
)

// Status is the workflow state of a requisition. Transitions are driven by the
// warehouse system on the remote side; the desk application only ever moves a
// record to StatusForSigning.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusApproved   Status = "Approved"
	StatusForSigning Status = "ForSigning"
)

// ParseStatus maps a raw status string from the remote source to a Status.
// Unknown or empty values default to StatusPending so that a malformed row
// never produces an untyped state.
func ParseStatus(raw string) Status {
	switch Status(raw) {
	case StatusPending, StatusProcessing, StatusApproved, StatusForSigning:
		return Status(raw)
	default:
		return StatusPending
	}
}

// Requisition is a single requisition document pulled from the remote source.
// ID is stable across fetches for the same logical record; Status is the only
// field whose transitions the reconciliation core reacts to.
type Requisition struct {
	// ID is the opaque record identifier, unique within a snapshot.
	ID string `json:"id"`

	// Number is the human-readable requisition number printed on the document.
	Number string `json:"number"`

	// Department is the requesting hotel department (e.g. "Housekeeping").
	Department string `json:"department"`

	// Status is the current workflow state.
	Status Status `json:"status"`

	// Date is the requisition date, used for presentation ordering.
	Date time.Time `json:"date"`

	// Items holds the requested line items. Opaque to the reconciliation
	// core; rendered by the document view and the PDF exporter.
	Items []LineItem `json:"items,omitempty"`

	// Total is the requisition total as shown on the document.
	Total float64 `json:"total"`

	// RequestedBy is the name of the requesting staff member.
	RequestedBy string `json:"requested_by"`

	// ApprovedBy is the name of the approving manager, if any.
	ApprovedBy string `json:"approved_by"`
}

// LineItem is one row of a requisition document.
type LineItem struct {
	Description string  `json:"description"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// Amount returns the line total.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.UnitPrice
}

// Snapshot is the full record collection as of the last successful fetch.
// It is replaced wholesale on every successful poll, never merged
// field-by-field. Element order carries no meaning.
type Snapshot []Requisition

// Index returns the snapshot keyed by record ID.
func (s Snapshot) Index() map[string]Requisition {
	idx := make(map[string]Requisition, len(s))
	for _, r := range s {
		idx[r.ID] = r
	}
	return idx
}

// Find returns the record with the given ID and whether it exists.
func (s Snapshot) Find(id string) (Requisition, bool) {
	for _, r := range s {
		if r.ID == id {
			return r, true
		}
	}
	return Requisition{}, false
}

// IDs returns the identifiers of all records in the snapshot, sorted for
// deterministic output in logs and tests.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, r := range s {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)
	return ids
}
