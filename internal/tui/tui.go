package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the interactive front-end over a SessionClient.
type TUI struct {
	client    service.SessionClient
	confirm   *ConfirmBridge
	buildInfo models.AppBuildInfo
	noticeFor time.Duration
	logger    *logger.Logger
}

// New builds the UI. confirm must be the same bridge the client was
// constructed with, so close confirmations open the modal of this UI.
func New(
	client service.SessionClient,
	confirm *ConfirmBridge,
	buildInfo models.AppBuildInfo,
	noticeDuration time.Duration,
	log *logger.Logger,
) *TUI {
	return &TUI{
		client:    client,
		confirm:   confirm,
		buildInfo: buildInfo,
		noticeFor: noticeDuration,
		logger:    log,
	}
}

// Run restores the stored credential, shows the UI and blocks until the user
// quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.client, t.buildInfo, t.noticeFor, t.logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	t.confirm.Attach(p)
	defer t.confirm.Detach()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
