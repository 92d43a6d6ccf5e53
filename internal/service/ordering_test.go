package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmurov/reqdesk/models"
)

func datedRec(id string, status models.Status, date time.Time) models.Requisition {
	return models.Requisition{ID: id, Status: status, Date: date}
}

func orderedIDs(recs []models.Requisition) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

// ── Order ────────────────────────────────────────────────────────────────────

func TestOrder_UnprocessedFirst_ThenDate_ThenID(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	snap := models.Snapshot{
		datedRec("B", models.StatusPending, jan2),
		datedRec("A", models.StatusPending, jan1),
		datedRec("C", models.StatusForSigning, jan1),
	}

	got := Order(snap, nil)

	assert.Equal(t, []string{"A", "B", "C"}, orderedIDs(got))
}

func TestOrder_ProcessedSetMembershipSinksRecord(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	snap := models.Snapshot{
		datedRec("A", models.StatusPending, jan1),
		datedRec("B", models.StatusPending, jan2),
	}
	processed := map[string]struct{}{"A": {}}

	got := Order(snap, processed)

	// A is earlier but processed, so B leads
	assert.Equal(t, []string{"B", "A"}, orderedIDs(got))
}

func TestOrder_ForSigningCountsAsProcessedWithoutSetEntry(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	snap := models.Snapshot{
		datedRec("1", models.StatusForSigning, jan1),
		datedRec("2", models.StatusPending, jan1),
	}

	got := Order(snap, map[string]struct{}{})

	assert.Equal(t, []string{"2", "1"}, orderedIDs(got))
}

func TestOrder_IDBreaksDateTies(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	snap := models.Snapshot{
		datedRec("z", models.StatusPending, date),
		datedRec("a", models.StatusPending, date),
		datedRec("m", models.StatusPending, date),
	}

	got := Order(snap, nil)

	assert.Equal(t, []string{"a", "m", "z"}, orderedIDs(got))
}

func TestOrder_TotalOrder_StableAcrossInputPermutations(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	recs := []models.Requisition{
		datedRec("1", models.StatusPending, jan2),
		datedRec("2", models.StatusForSigning, jan1),
		datedRec("3", models.StatusPending, jan1),
		datedRec("4", models.StatusApproved, jan2),
	}
	processed := map[string]struct{}{"4": {}}

	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 3, 0, 2},
		{2, 0, 3, 1},
	}

	want := []string{"3", "1", "2", "4"}
	for _, perm := range permutations {
		snap := make(models.Snapshot, len(recs))
		for i, idx := range perm {
			snap[i] = recs[idx]
		}
		assert.Equal(t, want, orderedIDs(Order(snap, processed)))
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	snap := models.Snapshot{
		datedRec("B", models.StatusPending, jan2),
		datedRec("A", models.StatusPending, jan1),
	}

	got := Order(snap, nil)

	require.Equal(t, []string{"A", "B"}, orderedIDs(got))
	assert.Equal(t, "B", snap[0].ID, "input snapshot must keep its order")
}

func TestOrder_EmptySnapshot(t *testing.T) {
	got := Order(nil, nil)
	assert.Empty(t, got)
}
