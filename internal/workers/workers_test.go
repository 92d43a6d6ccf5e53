// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Murov

package workers

import (
	"context"
	"sync"
	"testing"
	"time"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

// fakeJob implements service.SyncJob and records Start calls.
type fakeJob struct {
	mu       sync.Mutex
	started  int
	interval time.Duration
}

func (f *fakeJob) Start(_ context.Context, interval time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	f.interval = interval
}

func (f *fakeJob) Stop() {}

func TestSyncWorker_Run_StartsJobWithInterval(t *testing.T) {
	job := &fakeJob{}
	w := NewSyncWorker(context.Background(), job, 15*time.Second)

	w.Run()

	if job.started != 1 {
		t.Errorf("expected Start to be called once, got %d", job.started)
	}
	if job.interval != 15*time.Second {
		t.Errorf("expected interval 15s, got %v", job.interval)
	}
}
