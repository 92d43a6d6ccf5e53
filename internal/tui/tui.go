// Package tui is the terminal UI of the requisition desk: the ordered list
// of requisitions with unseen badges, the document detail view, and the
// status bar with the last sync time and notification toasts.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmurov/reqdesk/internal/export"
	"github.com/tmurov/reqdesk/internal/logger"
	"github.com/tmurov/reqdesk/internal/service"
)

type TUI struct {
	services *service.Services
	desk     *export.Desk
}

func New(services *service.Services, desk *export.Desk, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, desk: desk}, nil
}

// Run drives the desk screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newDeskModel(ctx, t.services, t.desk)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
