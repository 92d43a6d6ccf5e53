package tui

import (
	"fmt"
	"strings"

	"github.com/tmurov/reqdesk/models"
)

func (m deskModel) View() string {
	if m.detail {
		if rec, ok := m.current(); ok {
			return appStyle.Render(m.detailView(rec))
		}
	}
	return appStyle.Render(m.listView())
}

func (m deskModel) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Requisition Desk"))
	if m.syncing {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.lastSyncLine()) + "\n\n")

	if len(m.rows) == 0 {
		b.WriteString("No requisitions\n")
	}
	for i, rec := range m.rows {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + m.rowLine(rec) + "\n")
	}

	m.writeStatus(&b)

	b.WriteString("\n" + helpStyle.Render("enter open  r sync  p print  e export  q quit"))
	return b.String()
}

func (m deskModel) rowLine(rec models.Requisition) string {
	label := rec.Number
	if label == "" {
		label = rec.ID
	}

	line := fmt.Sprintf("%-16s %-14s %s  %s",
		label, rec.Department, rec.Date.Format("02.01.2006"), rec.Status)

	switch {
	case m.services.Tags.IsUnseen(rec.ID):
		return unseenStyle.Render(line + "  [new]")
	case m.services.Tags.IsProcessed(rec.ID) || rec.Status == models.StatusForSigning:
		return processedStyle.Render(line)
	default:
		return line
	}
}

func (m deskModel) lastSyncLine() string {
	last := m.services.Orchestrator.LastSync()
	if last.IsZero() {
		return "Not synced yet"
	}
	return "Last sync " + last.Format("15:04:05")
}

func (m deskModel) writeStatus(b *strings.Builder) {
	for _, toast := range m.toasts {
		if toast.Error {
			b.WriteString("\n" + errorStyle.Render(toast.Text))
		} else {
			b.WriteString("\n" + toastStyle.Render(toast.Text))
		}
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	if len(m.toasts) > 0 || m.status != "" || m.errMsg != "" {
		b.WriteString("\n")
	}
}
