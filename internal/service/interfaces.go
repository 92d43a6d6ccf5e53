// Package service implements the reconciliation core of the requisition
// desk: snapshot diffing, notification dispatch, the guarded poll loop,
// presentation ordering, and the advance-to-signing workflow.
package service

import (
	"context"
	"time"

	"github.com/tmurov/reqdesk/models"
)

// DiffEngine computes what changed between two consecutive snapshots.
type DiffEngine interface {
	// Diff compares previous and next. Pure and deterministic: no I/O, no
	// side effects. Records present only in previous (disappearances) are
	// not a change type and are ignored.
	Diff(previous, next models.Snapshot) models.DiffResult
}

// Dispatcher turns a diff result into user-facing notifications.
type Dispatcher interface {
	// Dispatch applies the notification policy for one reconcile cycle:
	// the sound fires at most once regardless of how many records changed,
	// every arrival is tagged unseen exactly once, desktop notifications
	// are gated on permission, and an "up to date" toast appears only when
	// nothing changed and the cycle was user-initiated (not silent).
	// The returned result records which side channels fired.
	Dispatch(ctx context.Context, diff models.DiffResult, silent bool) models.DispatchResult

	// ReportConnectivityProblem surfaces a failed poll to the user. Silent
	// (background) polls swallow the failure; the interval timer is the
	// retry mechanism.
	ReportConnectivityProblem(silent bool)
}

// TransitionService advances records through the user-facing workflow.
type TransitionService interface {
	// AdvanceToSigning moves the record to ForSigning: local status first,
	// then the processed tag, then a best-effort remote write whose failure
	// is logged but never rolled back. Idempotent.
	AdvanceToSigning(ctx context.Context, recordID string) error

	// Open records that the user has opened the requisition, clearing its
	// unseen tag.
	Open(ctx context.Context, recordID string) error
}

// SyncJob runs background polls on a fixed interval.
type SyncJob interface {
	// Start launches the background poll goroutine. It polls silently every
	// interval, defaulting to 30 seconds if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
