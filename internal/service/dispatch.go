package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/notify"
	"github.com/tmurov/reqdesk/models"
)

const notificationTitle = "Requisition Desk"

type notificationDispatcher struct {
	tags    *TagSets
	sound   notify.SoundPlayer
	desktop notify.DesktopNotifier
	toasts  notify.ToastSink
	logger  *logger.Logger
}

// NewNotificationDispatcher constructs the [Dispatcher] that fans a diff
// result out to the sound player, the desktop notifier, and the in-app toast
// sink, tagging arrivals as unseen along the way.
func NewNotificationDispatcher(
	tags *TagSets,
	sound notify.SoundPlayer,
	desktop notify.DesktopNotifier,
	toasts notify.ToastSink,
	log *logger.Logger,
) Dispatcher {
	return &notificationDispatcher{
		tags:    tags,
		sound:   sound,
		desktop: desktop,
		toasts:  toasts,
		logger:  log,
	}
}

// Dispatch implements [Dispatcher].
func (d *notificationDispatcher) Dispatch(ctx context.Context, diff models.DiffResult, silent bool) models.DispatchResult {
	var res models.DispatchResult

	if diff.Empty() {
		if !silent {
			res.Toasts = append(res.Toasts, d.pushToast("Requisitions are up to date", false))
		}
		return res
	}

	// one chime per cycle, no matter how many records changed
	if err := d.sound.Play(); err != nil {
		d.logger.Warn().Err(err).Msg("notification sound failed")
	}
	res.SoundPlayed = true

	// tag arrivals as unseen; the repository merge makes re-tagging a no-op
	for _, id := range diff.Arrived {
		if err := d.tags.MarkUnseen(ctx, id); err != nil {
			d.logger.Warn().Err(err).Str("record_id", id).Msg("failed to tag arrival as unseen")
		}
	}

	granted := d.desktop.Permission() == models.PermissionGranted

	if len(diff.Arrived) > 0 {
		note := models.DesktopNote{
			Title: notificationTitle,
			Body:  arrivalSummary(len(diff.Arrived)),
		}
		if granted {
			if err := d.desktop.Notify(note); err == nil {
				res.DesktopNotes = append(res.DesktopNotes, note)
			}
		}
		res.Toasts = append(res.Toasts, d.pushToast(note.Body, false))
	}

	for _, rec := range diff.StatusChanged {
		note := models.DesktopNote{
			Title: notificationTitle,
			Body:  statusChangeLine(rec),
		}
		if granted {
			if err := d.desktop.Notify(note); err == nil {
				res.DesktopNotes = append(res.DesktopNotes, note)
			}
		}
		res.Toasts = append(res.Toasts, d.pushToast(note.Body, false))
	}

	return res
}

// ReportConnectivityProblem implements [Dispatcher].
func (d *notificationDispatcher) ReportConnectivityProblem(silent bool) {
	if silent {
		return
	}
	d.pushToast("Cannot reach the requisition source", true)
}

func (d *notificationDispatcher) pushToast(text string, isError bool) models.Toast {
	toast := models.Toast{ID: uuid.NewString(), Text: text, Error: isError}
	d.toasts.Push(toast)
	return toast
}

func arrivalSummary(count int) string {
	if count == 1 {
		return "1 new requisition received"
	}
	return fmt.Sprintf("%d new requisitions received", count)
}

func statusChangeLine(rec models.Requisition) string {
	label := rec.Number
	if label == "" {
		label = rec.ID
	}
	return fmt.Sprintf("Requisition %s is now %s", label, rec.Status)
}
