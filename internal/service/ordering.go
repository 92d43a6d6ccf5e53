package service

import (
	"sort"

	"github.com/tmurov/reqdesk/models"
)

// Order derives the display order of a snapshot: records the user still has
// to handle first, processed records sunk to the bottom. A record counts as
// processed when its identifier is in the processed set OR its status is
// ForSigning; either condition suffices and the set may lag behind the
// status. Within each partition records sort by date ascending with ties
// broken by identifier, which makes the comparison a total order and the
// resulting sequence reproducible across re-renders.
func Order(snapshot models.Snapshot, processed map[string]struct{}) []models.Requisition {
	out := make([]models.Requisition, len(snapshot))
	copy(out, snapshot)

	isProcessed := func(r models.Requisition) bool {
		if _, ok := processed[r.ID]; ok {
			return true
		}
		return r.Status == models.StatusForSigning
	}

	sort.Slice(out, func(i, j int) bool {
		pi, pj := isProcessed(out[i]), isProcessed(out[j])
		if pi != pj {
			return !pi
		}
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})

	return out
}
