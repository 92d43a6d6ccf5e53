package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/models"
)

const appTitle = "Requisition Desk"

// systemSoundPlayer plays the notification chime through the OS beeper.
type systemSoundPlayer struct {
	logger *logger.Logger
}

// NewSystemSoundPlayer returns the beeep-backed [SoundPlayer].
func NewSystemSoundPlayer(log *logger.Logger) SoundPlayer {
	return &systemSoundPlayer{logger: log}
}

// Play implements [SoundPlayer].
func (s *systemSoundPlayer) Play() error {
	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		s.logger.Warn().Err(err).Msg("notification sound failed")
		return err
	}
	return nil
}

// systemDesktopNotifier shows OS notifications through beeep. The capability
// is probed once at construction; a failing probe marks the environment as
// unavailable and all later calls become no-ops.
type systemDesktopNotifier struct {
	permission models.Permission
	logger     *logger.Logger
}

// NewSystemDesktopNotifier returns the beeep-backed [DesktopNotifier].
// enabled=false models a user-denied permission; a probe failure models a
// missing capability.
func NewSystemDesktopNotifier(enabled bool, log *logger.Logger) DesktopNotifier {
	n := &systemDesktopNotifier{logger: log}

	switch {
	case !enabled:
		n.permission = models.PermissionDenied
	case probeDesktopCapability() != nil:
		n.permission = models.PermissionUnavailable
		log.Warn().Msg("desktop notifications unavailable in this environment, degrading to toasts")
	default:
		n.permission = models.PermissionGranted
	}

	return n
}

// probeDesktopCapability checks whether the environment can deliver desktop
// notifications at all (e.g. a D-Bus session on Linux).
func probeDesktopCapability() error {
	return beeep.Notify(appTitle, "Notifications enabled", "")
}

// Permission implements [DesktopNotifier].
func (n *systemDesktopNotifier) Permission() models.Permission {
	return n.permission
}

// Notify implements [DesktopNotifier].
func (n *systemDesktopNotifier) Notify(note models.DesktopNote) error {
	if n.permission != models.PermissionGranted {
		return nil
	}

	if err := beeep.Notify(note.Title, note.Body, ""); err != nil {
		n.logger.Warn().Err(err).Str("title", note.Title).Msg("desktop notification failed")
		return err
	}
	return nil
}
