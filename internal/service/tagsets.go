package service

import (
	"context"
	"sync"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/store"
)

// TagSets is the in-memory view of the two persisted tag sets, kept
// consistent with the repository on every mutation. All mutations are
// read-merge-write (single identifier added or removed) so the sync worker
// and the user-facing actions never overwrite each other's tags.
type TagSets struct {
	repo   store.TagSetRepository
	logger *logger.Logger

	mu        sync.RWMutex
	processed map[string]struct{}
	unseen    map[string]struct{}
}

// LoadTagSets loads both persisted sets. A corrupt or missing backing store
// degrades to an empty set with a warning; startup never fails on tag data.
func LoadTagSets(ctx context.Context, repo store.TagSetRepository, log *logger.Logger) *TagSets {
	t := &TagSets{
		repo:      repo,
		logger:    log,
		processed: make(map[string]struct{}),
		unseen:    make(map[string]struct{}),
	}

	t.processed = t.loadSet(ctx, store.TagSetProcessed)
	t.unseen = t.loadSet(ctx, store.TagSetUnseen)
	return t
}

func (t *TagSets) loadSet(ctx context.Context, name string) map[string]struct{} {
	set := make(map[string]struct{})

	ids, err := t.repo.Load(ctx, name)
	if err != nil {
		t.logger.Warn().Err(err).
			Str("set", name).
			Msg("tag set unreadable, starting with an empty set")
		return set
	}

	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// MarkProcessed merges one identifier into the processed set.
func (t *TagSets) MarkProcessed(ctx context.Context, recordID string) error {
	t.mu.Lock()
	t.processed[recordID] = struct{}{}
	t.mu.Unlock()

	return t.persistAdd(ctx, store.TagSetProcessed, recordID)
}

// MarkUnseen merges one identifier into the unseen set.
func (t *TagSets) MarkUnseen(ctx context.Context, recordID string) error {
	t.mu.Lock()
	t.unseen[recordID] = struct{}{}
	t.mu.Unlock()

	return t.persistAdd(ctx, store.TagSetUnseen, recordID)
}

// ClearUnseen removes one identifier from the unseen set. Called the moment
// the user opens the record.
func (t *TagSets) ClearUnseen(ctx context.Context, recordID string) error {
	t.mu.Lock()
	delete(t.unseen, recordID)
	t.mu.Unlock()

	if err := t.repo.Remove(ctx, store.TagSetUnseen, recordID); err != nil {
		t.logger.Warn().Err(err).
			Str("record_id", recordID).
			Msg("failed to persist unseen tag removal")
		return err
	}
	return nil
}

func (t *TagSets) persistAdd(ctx context.Context, set, recordID string) error {
	if err := t.repo.Add(ctx, set, recordID); err != nil {
		t.logger.Warn().Err(err).
			Str("set", set).
			Str("record_id", recordID).
			Msg("failed to persist tag, in-memory state kept")
		return err
	}
	return nil
}

// IsProcessed reports explicit processed-set membership. Note that a record
// may also count as processed through its ForSigning status; that union is
// applied by [Order], not here.
func (t *TagSets) IsProcessed(recordID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.processed[recordID]
	return ok
}

// IsUnseen reports whether the record arrived and has not been opened yet.
func (t *TagSets) IsUnseen(recordID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.unseen[recordID]
	return ok
}

// ProcessedIDs returns a copy of the processed set.
func (t *TagSets) ProcessedIDs() map[string]struct{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]struct{}, len(t.processed))
	for id := range t.processed {
		out[id] = struct{}{}
	}
	return out
}

// UnseenCount returns the number of unopened arrivals.
func (t *TagSets) UnseenCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.unseen)
}
