package notify

import (
	"sync"

	"github.com/tmurov/reqdesk/models"
)

// NopSoundPlayer discards all sound requests. Used when the sound toggle is
// off and in tests.
type NopSoundPlayer struct{}

func (NopSoundPlayer) Play() error { return nil }

// NopDesktopNotifier reports the given permission and discards all
// notifications.
type NopDesktopNotifier struct {
	Perm models.Permission
}

func (n NopDesktopNotifier) Permission() models.Permission {
	if n.Perm == "" {
		return models.PermissionUnavailable
	}
	return n.Perm
}

func (NopDesktopNotifier) Notify(models.DesktopNote) error { return nil }

// ToastBuffer is a thread-safe [ToastSink] that accumulates toasts until the
// UI drains them. The sync worker pushes from its own goroutine while the UI
// drains on its frame ticks.
type ToastBuffer struct {
	mu     sync.Mutex
	toasts []models.Toast
}

// NewToastBuffer returns an empty buffer.
func NewToastBuffer() *ToastBuffer {
	return &ToastBuffer{}
}

// Push implements [ToastSink].
func (b *ToastBuffer) Push(toast models.Toast) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.toasts = append(b.toasts, toast)
}

// Drain returns all buffered toasts in arrival order and empties the buffer.
func (b *ToastBuffer) Drain() []models.Toast {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.toasts
	b.toasts = nil
	return out
}
