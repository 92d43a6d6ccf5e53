package workers

import (
	"context"
	"time"

	"github.com/tmurov/reqdesk/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers.
func NewWorkers(w ...Worker) *Workers {
	return &Workers{workers: w}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// SyncWorker runs the background poll job as a [Worker].
type SyncWorker struct {
	ctx      context.Context
	job      service.SyncJob
	interval time.Duration
}

// NewSyncWorker wraps the sync job. The context bounds the lifetime of the
// poll goroutine.
func NewSyncWorker(ctx context.Context, job service.SyncJob, interval time.Duration) *SyncWorker {
	return &SyncWorker{ctx: ctx, job: job, interval: interval}
}

// Run implements [Worker].
func (w *SyncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
