// Package notify holds the delivery side of user notifications: the sound
// player, the desktop notifier, and the in-app toast sink.
//
// The reconciliation core decides when to notify and with what content; this
// package only delivers. Environments without a notification capability
// degrade to no-ops, never to crashes, so the desk keeps working with in-app
// toasts alone.
package notify

import "github.com/tmurov/reqdesk/models"

// SoundPlayer plays the single notification chime.
type SoundPlayer interface {
	// Play emits the notification sound once. Failures are non-fatal and
	// reported back for logging only.
	Play() error
}

// DesktopNotifier shows OS-level notifications.
type DesktopNotifier interface {
	// Permission reports the current desktop notification permission state.
	// [models.PermissionUnavailable] means notifications cannot be shown in
	// this environment at all.
	Permission() models.Permission

	// Notify shows one desktop notification. Calling it when permission is
	// not granted is a no-op returning nil.
	Notify(note models.DesktopNote) error
}

// ToastSink receives in-app toasts for the UI status line.
type ToastSink interface {
	Push(toast models.Toast)
}
