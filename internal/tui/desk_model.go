package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmurov/reqdesk/internal/export"
	"github.com/tmurov/reqdesk/internal/service"
	"github.com/tmurov/reqdesk/models"
)

const (
	frameInterval = 500 * time.Millisecond
	maxToasts     = 3
)

type deskModel struct {
	ctx      context.Context
	services *service.Services
	desk     *export.Desk

	rows    []models.Requisition
	idx     int
	detail  bool
	syncing bool
	spinner spinner.Model
	status  string
	errMsg  string
	toasts  []models.Toast

	lastExport string
}

func newDeskModel(ctx context.Context, services *service.Services, desk *export.Desk) deskModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return deskModel{
		ctx:      ctx,
		services: services,
		desk:     desk,
		spinner:  s,
		rows:     services.Ordered(),
	}
}

func (m deskModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, frameTick())
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}

func (m deskModel) current() (models.Requisition, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return models.Requisition{}, false
	}
	return m.rows[m.idx], true
}

func (m deskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameTickMsg:
		// the background worker may have replaced the snapshot since the
		// last frame; re-derive the ordered rows and pick up fresh toasts
		m.rows = m.services.Ordered()
		if m.idx >= len(m.rows) {
			m.idx = len(m.rows) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		for _, toast := range m.services.Toasts.Drain() {
			m.toasts = append(m.toasts, toast)
		}
		if len(m.toasts) > maxToasts {
			m.toasts = m.toasts[len(m.toasts)-maxToasts:]
		}
		return m, frameTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case syncDoneMsg:
		m.syncing = false
		m.rows = m.services.Ordered()
		return m, nil

	case printDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Print failed: %v", msg.err)
			return m, nil
		}
		m.status = "Sent to printer"
		m.errMsg = ""
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Export failed: %v", msg.err)
			return m, nil
		}
		m.lastExport = msg.path
		m.status = "Exported to " + msg.path
		m.errMsg = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m deskModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		rec, ok := m.current()
		if !ok {
			m.status = "No requisitions"
			return m, nil
		}
		m.detail = true
		return m, m.cmdOpen(rec.ID)
	case key.Matches(keyMsg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(keyMsg, keys.print):
		rec, ok := m.current()
		if !ok {
			m.status = "No requisitions"
			return m, nil
		}
		m.status = "Printing..."
		return m, m.cmdPrint(rec)
	case key.Matches(keyMsg, keys.export):
		rec, ok := m.current()
		if !ok {
			m.status = "No requisitions"
			return m, nil
		}
		m.status = "Exporting..."
		return m, m.cmdExport(rec)
	}
	return m, nil
}

func (m deskModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rec, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
	case key.Matches(keyMsg, keys.print):
		m.status = "Printing..."
		return m, m.cmdPrint(rec)
	case key.Matches(keyMsg, keys.export):
		m.status = "Exporting..."
		return m, m.cmdExport(rec)
	case key.Matches(keyMsg, keys.copy):
		text := rec.Number
		if text == "" {
			text = rec.ID
		}
		// after exporting this record, copy grabs the file path instead
		if strings.Contains(m.lastExport, rec.ID) {
			text = m.lastExport
		}
		if err := clipboard.WriteAll(text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied"
	}
	return m, nil
}

func (m deskModel) cmdOpen(recordID string) tea.Cmd {
	return func() tea.Msg {
		_ = m.services.Transitions.Open(m.ctx, recordID)
		return nil
	}
}

func (m deskModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		m.services.Orchestrator.PollOnce(m.ctx, false)
		return syncDoneMsg{}
	}
}

func (m deskModel) cmdPrint(rec models.Requisition) tea.Cmd {
	return func() tea.Msg {
		return printDoneMsg{err: m.desk.Print(m.ctx, rec)}
	}
}

func (m deskModel) cmdExport(rec models.Requisition) tea.Cmd {
	return func() tea.Msg {
		path, err := m.desk.Export(m.ctx, rec)
		return exportDoneMsg{path: path, err: err}
	}
}
