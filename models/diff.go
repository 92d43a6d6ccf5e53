package models

// DiffResult describes what changed between two consecutive snapshots.
type DiffResult struct {
	// Arrived holds identifiers present in the next snapshot but absent from
	// the previous one. Order is unspecified; callers must not depend on it.
	Arrived []string

	// StatusChanged holds records present in both snapshots whose Status
	// differs. Each entry carries the post-change (next) value.
	StatusChanged []Requisition
}

// Empty reports whether the diff carries no changes at all.
func (d DiffResult) Empty() bool {
	return len(d.Arrived) == 0 && len(d.StatusChanged) == 0
}
