package service

import (
	"context"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/notify"
	"github.com/tmurov/reqdesk/internal/source"
	"github.com/tmurov/reqdesk/internal/store"
	"github.com/tmurov/reqdesk/models"
)

type Services struct {
	Records      *RecordStore
	Tags         *TagSets
	Differ       DiffEngine
	Dispatcher   Dispatcher
	Orchestrator *SyncOrchestrator
	Job          SyncJob
	Transitions  TransitionService
	Toasts       *notify.ToastBuffer
}

func NewServices(
	ctx context.Context,
	src source.RecordSource,
	storages *store.Storages,
	sound notify.SoundPlayer,
	desktop notify.DesktopNotifier,
	log *logger.Logger,
) *Services {
	records := NewRecordStore()
	tags := LoadTagSets(ctx, storages.TagSets, log)
	toasts := notify.NewToastBuffer()
	differ := NewDiffEngine()
	dispatcher := NewNotificationDispatcher(tags, sound, desktop, toasts, log)
	orchestrator := NewSyncOrchestrator(src, records, differ, dispatcher, log)

	return &Services{
		Records:      records,
		Tags:         tags,
		Differ:       differ,
		Dispatcher:   dispatcher,
		Orchestrator: orchestrator,
		Job:          NewSyncJob(orchestrator),
		Transitions:  NewTransitionService(records, tags, src, log),
		Toasts:       toasts,
	}
}

// Ordered returns the current snapshot in presentation order.
func (s *Services) Ordered() models.Snapshot {
	return Order(s.Records.Snapshot(), s.Tags.ProcessedIDs())
}
