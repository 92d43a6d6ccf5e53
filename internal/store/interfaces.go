// Package store provides the local persistence layer of the requisition desk:
// a SQLite database holding the two tag sets ("processed" and "unseen") that
// must survive restarts.
//
// Repositories expose plain set semantics (load, add, remove) and no policy.
// Read failures map to [ErrPersistenceRead] so the service layer can degrade
// to an empty set instead of failing startup.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/tagset_repository_mock.go -package=mock

// Names of the persisted tag sets.
const (
	// TagSetProcessed holds identifiers of records the user has advanced
	// past (printed, exported, or sent for signing).
	TagSetProcessed = "processed"

	// TagSetUnseen holds identifiers of records that arrived since the user
	// last opened them.
	TagSetUnseen = "unseen"
)

// TagSetRepository persists independently keyed sets of record identifiers.
// All mutations are single-element (add-one, remove-one): two logical writers
// acting in the same tick merge rather than overwrite each other.
type TagSetRepository interface {
	// Load returns all identifiers of the named set. A missing or unreadable
	// backing table yields an error wrapping [ErrPersistenceRead].
	Load(ctx context.Context, set string) ([]string, error)

	// Add inserts one identifier into the named set. Adding an identifier
	// that is already present is a no-op (set semantics).
	Add(ctx context.Context, set, recordID string) error

	// Remove deletes one identifier from the named set. Removing an absent
	// identifier is a no-op.
	Remove(ctx context.Context, set, recordID string) error
}
