package service

import "github.com/tmurov/reqdesk/models"

type diffEngine struct{}

// NewDiffEngine returns the snapshot differ.
func NewDiffEngine() DiffEngine {
	return diffEngine{}
}

// Diff implements [DiffEngine]. An identifier counts as arrived when it is
// absent from previous; a record counts as status-changed when it exists in
// both snapshots with different Status values, and the next (post-change)
// value is returned. An empty next means everything disappeared, which is
// not a change type.
func (diffEngine) Diff(previous, next models.Snapshot) models.DiffResult {
	prevIdx := previous.Index()

	var d models.DiffResult
	for _, rec := range next {
		prev, existed := prevIdx[rec.ID]
		if !existed {
			d.Arrived = append(d.Arrived, rec.ID)
			continue
		}
		if prev.Status != rec.Status {
			d.StatusChanged = append(d.StatusChanged, rec)
		}
	}

	return d
}
