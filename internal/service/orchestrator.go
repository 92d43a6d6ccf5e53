package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/source"
)

// SyncOrchestrator owns the fetch-and-reconcile cycle. It is the only writer
// of the record store's snapshot and of the last-sync timestamp; the
// in-flight guard keeps at most one cycle running whether triggered by the
// background timer or by the user.
type SyncOrchestrator struct {
	source     source.RecordSource
	records    *RecordStore
	differ     DiffEngine
	dispatcher Dispatcher
	logger     *logger.Logger

	inFlight atomic.Bool

	mu       sync.RWMutex
	lastSync time.Time
	primed   bool
}

// NewSyncOrchestrator wires the orchestrator. The record store starts empty;
// the first successful poll establishes the baseline snapshot.
func NewSyncOrchestrator(
	src source.RecordSource,
	records *RecordStore,
	differ DiffEngine,
	dispatcher Dispatcher,
	log *logger.Logger,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		source:     src,
		records:    records,
		differ:     differ,
		dispatcher: dispatcher,
		logger:     log,
	}
}

// PollOnce runs one fetch-and-reconcile cycle. A cycle already in flight
// makes the call a no-op: skipped polls are dropped, never queued, so the
// next diff runs against the last successfully applied snapshot rather than
// a skipped one.
//
// On fetch failure neither the snapshot nor the timestamp changes; the
// failure is surfaced only when the poll was user-initiated (silent=false).
// The guard is released on every path.
func (o *SyncOrchestrator) PollOnce(ctx context.Context, silent bool) {
	if !o.inFlight.CompareAndSwap(false, true) {
		o.logger.Debug().Msg("sync already in flight, dropping poll")
		return
	}
	defer o.inFlight.Store(false)

	next, err := o.source.FetchAll(ctx)
	if err != nil {
		o.logger.Warn().Err(err).Bool("silent", silent).Msg("poll failed")
		o.dispatcher.ReportConnectivityProblem(silent)
		return
	}

	// "previous" is always the snapshot this orchestrator last applied,
	// read here rather than captured at registration time
	previous := o.records.Snapshot()

	o.mu.Lock()
	o.lastSync = time.Now()
	first := !o.primed
	o.primed = true
	o.mu.Unlock()

	if first {
		// baseline load: nothing to diff against, no arrival notifications
		o.records.Replace(next)
		o.logger.Info().Int("records", len(next)).Msg("baseline snapshot established")
		return
	}

	diff := o.differ.Diff(previous, next)
	o.records.Replace(next)
	o.dispatcher.Dispatch(ctx, diff, silent)

	o.logger.Debug().
		Int("records", len(next)).
		Int("arrived", len(diff.Arrived)).
		Int("status_changed", len(diff.StatusChanged)).
		Msg("poll reconciled")
}

// LastSync returns the timestamp of the last successful fetch, zero before
// the first one.
func (o *SyncOrchestrator) LastSync() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastSync
}

// Primed reports whether the baseline snapshot has been established.
func (o *SyncOrchestrator) Primed() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.primed
}
