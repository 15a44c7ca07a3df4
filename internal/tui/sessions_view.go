package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/charmbracelet/bubbles/table"
)

const (
	closeAction = "[x] close"
	urlWidth    = 32
)

func sessionColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Category", Width: 10},
		{Title: "GPU", Width: 14},
		{Title: "URL", Width: urlWidth},
		{Title: "Status", Width: 9},
		{Title: "Started", Width: 19},
		{Title: "Updated", Width: 19},
		{Title: "Action", Width: 10},
	}
}

func newSessionTable() table.Model {
	t := table.New(
		table.WithColumns(sessionColumns()),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true)
	t.SetStyles(s)
	return t
}

func sessionRows(sessions []models.Session) []table.Row {
	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, table.Row{
			strconv.FormatInt(s.ID, 10),
			service.DisplayValue(s.Category),
			service.DisplayValue(s.GPUVersion),
			service.DisplayValue(fitText(s.URL, urlWidth)),
			service.DisplayValue(s.Status.String()),
			service.DisplayValue(s.StartedAt),
			service.DisplayValue(s.UpdatedAt),
			closeAction,
		})
	}
	return rows
}

// paginationFooter renders "page i/n · size s · total t", or "" when the
// server reported no sessions.
func paginationFooter(p models.Pagination) string {
	if p.Total <= 0 {
		return ""
	}
	return fmt.Sprintf("page %d/%d · size %d · total %d", p.PageIndex, p.PageCount(), p.PageSize, p.Total)
}

func expiryLine(s models.Snapshot) string {
	if !s.HasExpiry() {
		return ""
	}
	return "token expires " + s.ExpiresAt.Local().Format(time.DateTime)
}

func sessionsBody(t table.Model, s models.Snapshot) string {
	var b strings.Builder
	if line := expiryLine(s); line != "" {
		b.WriteString(helpStyle.Render(line))
		b.WriteString("\n\n")
	}

	if len(s.Sessions) == 0 {
		b.WriteString("No active sessions")
	} else {
		b.WriteString(t.View())
	}

	if footer := paginationFooter(s.Pagination); footer != "" {
		b.WriteString("\n\n")
		b.WriteString(footer)
	}
	return b.String()
}
