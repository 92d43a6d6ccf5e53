package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/tmurov/reqdesk/internal/logger"
)

// tagSetRepository is the SQLite-backed implementation of [TagSetRepository].
// Both persisted sets share the "tag_sets" table keyed by (set_name,
// record_id), so adding an identifier that is already tagged is a natural
// no-op via INSERT OR IGNORE.
type tagSetRepository struct {
	*DB
	logger *logger.Logger
}

// NewTagSetRepository constructs a [TagSetRepository] backed by the provided
// database connection and logger.
func NewTagSetRepository(db *DB, logger *logger.Logger) TagSetRepository {
	return &tagSetRepository{
		DB:     db,
		logger: logger,
	}
}

// Load implements [TagSetRepository]. Failures wrap [ErrPersistenceRead] so
// the caller can detect them with errors.Is and fall back to an empty set.
func (t *tagSetRepository) Load(ctx context.Context, set string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("record_id").
		From("tag_sets").
		Where(sq.Eq{"set_name": set}).
		OrderBy("record_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := t.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "tagSetRepository.Load").
			Str("set", set).
			Msg("failed to execute query for loading tag set")
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistenceRead, ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			log.Err(err).
				Str("func", "tagSetRepository.Load").
				Str("set", set).
				Msg("failed to scan tag set row")
			return nil, fmt.Errorf("%w: %w: %w", ErrPersistenceRead, ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrPersistenceRead, ErrScanningRows, err)
	}

	return ids, nil
}

// Add implements [TagSetRepository].
func (t *tagSetRepository) Add(ctx context.Context, set, recordID string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert("tag_sets").
		Options("OR IGNORE").
		Columns("set_name", "record_id").
		Values(set, recordID).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tagSetRepository.Add").
			Str("set", set).
			Str("record_id", recordID).
			Msg("failed to insert tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove implements [TagSetRepository].
func (t *tagSetRepository) Remove(ctx context.Context, set, recordID string) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("tag_sets").
		Where(sq.Eq{"set_name": set, "record_id": recordID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = t.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "tagSetRepository.Remove").
			Str("set", set).
			Str("record_id", recordID).
			Msg("failed to delete tag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
