package models

// Permission is the desktop-notification permission state reported by the
// delivery backend.
type Permission string

const (
	// PermissionGranted allows desktop notifications to be shown.
	PermissionGranted Permission = "granted"
	// PermissionDenied means the user refused desktop notifications.
	PermissionDenied Permission = "denied"
	// PermissionDefault means the user has not decided yet.
	PermissionDefault Permission = "default"
	// PermissionUnavailable means the environment has no notification
	// capability at all. Delivery degrades to in-app toasts only.
	PermissionUnavailable Permission = "unavailable"
)

// Toast is a short-lived in-app message shown in the status line of the desk
// UI.
type Toast struct {
	// ID uniquely identifies the toast instance.
	ID string
	// Text is the message shown to the user.
	Text string
	// Error marks connectivity and other failure toasts so the UI can style
	// them differently.
	Error bool
}

// DesktopNote is the content of one desktop notification.
type DesktopNote struct {
	Title string
	Body  string
}

// DispatchResult records which side channels fired during one dispatch cycle.
// It exists for test observability: the dispatcher's policy (sound at most
// once, one summary per arrival batch, one note per status change) is asserted
// against this value.
type DispatchResult struct {
	SoundPlayed  bool
	DesktopNotes []DesktopNote
	Toasts       []Toast
}
