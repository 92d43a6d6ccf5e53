package source

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tmurov/reqdesk/models"
)

// Accepted layouts for the requisition date column, most specific first.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// mapRow converts one schema-validated row into a typed Requisition.
// Missing optional fields get explicit zero defaults; the status string is
// normalised through [models.ParseStatus]. An unparseable date or an empty
// identifier yields an error wrapping [ErrRowInvalid].
func mapRow(raw map[string]any) (models.Requisition, error) {
	id := stringField(raw, "id")
	if id == "" {
		return models.Requisition{}, fmt.Errorf("%w: missing id", ErrRowInvalid)
	}

	date, err := parseDate(stringField(raw, "date"))
	if err != nil {
		return models.Requisition{}, fmt.Errorf("%w: record %s: %v", ErrRowInvalid, id, err)
	}

	req := models.Requisition{
		ID:          id,
		Number:      stringField(raw, "number"),
		Department:  stringField(raw, "department"),
		Status:      models.ParseStatus(stringField(raw, "status")),
		Date:        date,
		Total:       numberField(raw, "total"),
		RequestedBy: stringField(raw, "requested_by"),
		ApprovedBy:  stringField(raw, "approved_by"),
	}

	if items, ok := raw["items"].([]any); ok {
		req.Items = make([]models.LineItem, 0, len(items))
		for _, it := range items {
			row, ok := it.(map[string]any)
			if !ok {
				continue
			}
			req.Items = append(req.Items, models.LineItem{
				Description: stringField(row, "description"),
				Unit:        stringField(row, "unit"),
				Quantity:    numberField(row, "quantity"),
				UnitPrice:   numberField(row, "unit_price"),
			})
		}
	}

	return req, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// numberField tolerates both float64 (encoding/json) and json.Number
// (jsonschema.UnmarshalJSON) representations.
func numberField(raw map[string]any, key string) float64 {
	switch v := raw[key].(type) {
	case float64:
		return v
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}
