package tui

import (
	"fmt"
	"strings"

	"github.com/tmurov/reqdesk/models"
)

func (m deskModel) detailView(rec models.Requisition) string {
	var b strings.Builder

	label := rec.Number
	if label == "" {
		label = rec.ID
	}
	b.WriteString(titleStyle.Render("Requisition "+label) + "\n\n")

	b.WriteString(fmt.Sprintf("Department:  %s\n", rec.Department))
	b.WriteString(fmt.Sprintf("Date:        %s\n", rec.Date.Format("02.01.2006")))
	b.WriteString(fmt.Sprintf("Status:      %s\n", rec.Status))
	b.WriteString(fmt.Sprintf("Requested:   %s\n", rec.RequestedBy))
	if rec.ApprovedBy != "" {
		b.WriteString(fmt.Sprintf("Approved:    %s\n", rec.ApprovedBy))
	}
	b.WriteString("\n")

	if len(rec.Items) > 0 {
		b.WriteString(fmt.Sprintf("%-30s %6s %10s %12s %12s\n",
			"Description", "Unit", "Qty", "Unit price", "Amount"))
		for _, item := range rec.Items {
			b.WriteString(fmt.Sprintf("%-30s %6s %10.2f %12.2f %12.2f\n",
				item.Description, item.Unit, item.Quantity, item.UnitPrice, item.Amount()))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Total: %.2f\n", rec.Total))

	m.writeStatus(&b)

	b.WriteString("\n" + helpStyle.Render("p print  e export  c copy  esc back"))
	return b.String()
}
