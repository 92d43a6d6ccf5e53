package service

import (
	"context"
	"fmt"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/source"
	"github.com/tmurov/reqdesk/models"
)

type transitionService struct {
	records *RecordStore
	tags    *TagSets
	source  source.RecordSource
	logger  *logger.Logger
}

// NewTransitionService constructs the [TransitionService].
func NewTransitionService(
	records *RecordStore,
	tags *TagSets,
	src source.RecordSource,
	log *logger.Logger,
) TransitionService {
	return &transitionService{
		records: records,
		tags:    tags,
		source:  src,
		logger:  log,
	}
}

// AdvanceToSigning implements [TransitionService]. Local state commits first
// and stays committed: the remote write is a reconciliation attempt whose
// failure is logged and accepted as an eventual-consistency gap.
func (t *transitionService) AdvanceToSigning(ctx context.Context, recordID string) error {
	if !t.records.SetStatus(recordID, models.StatusForSigning) {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, recordID)
	}

	if err := t.tags.MarkProcessed(ctx, recordID); err != nil {
		t.logger.Warn().Err(err).
			Str("record_id", recordID).
			Msg("failed to persist processed tag")
	}

	if err := t.source.UpdateStatus(ctx, recordID, models.StatusForSigning); err != nil {
		t.logger.Warn().Err(err).
			Str("record_id", recordID).
			Msg("remote status write failed, keeping local state")
	}

	return nil
}

// Open implements [TransitionService].
func (t *transitionService) Open(ctx context.Context, recordID string) error {
	return t.tags.ClearUnseen(ctx, recordID)
}
