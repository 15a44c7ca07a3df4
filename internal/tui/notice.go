package tui

import (
	"time"

	"github.com/MKhiriev/go-gpu-missions/models"
	tea "github.com/charmbracelet/bubbletea"
)

// expireNotice schedules the auto-dismiss of notice seq.
func expireNotice(seq uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func renderNotice(n models.Notice) string {
	style := successStyle
	if n.IsError() {
		style = errorStyle
	}
	return noticeBoxStyle.Render(style.Render(n.Message))
}
