// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/internal/service"
	"github.com/MKhiriev/go-gpu-missions/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Notices raised by the UI itself.
const (
	msgCredentialsRequired = "Phone and password are required"
	msgURLCopied           = "URL copied"
	msgNoURL               = "No URL to copy"
	msgCopyFailed          = "Copy failed"
)

// model is the single Bubble Tea model of the application. It never holds
// session data of its own: after every finished action it re-reads the
// client snapshot and the notice outbox.
type model struct {
	ctx            context.Context
	client         service.SessionClient
	buildInfo      models.AppBuildInfo
	noticeFor      time.Duration
	logger         *logger.Logger
	writeClipboard func(string) error

	restoring     bool
	busy          int
	snapshot      models.Snapshot
	notice        *models.Notice
	confirm       *pendingConfirm
	showBuildInfo bool

	login   loginForm
	table   table.Model
	spinner spinner.Model
}

func newModel(
	ctx context.Context,
	client service.SessionClient,
	buildInfo models.AppBuildInfo,
	noticeFor time.Duration,
	log *logger.Logger,
) model {
	return model{
		ctx:            ctx,
		client:         client,
		buildInfo:      buildInfo,
		noticeFor:      noticeFor,
		logger:         log,
		writeClipboard: clipboard.WriteAll,
		restoring:      true,
		login:          newLoginForm(),
		table:          newSessionTable(),
		spinner:        spinner.New(spinner.WithSpinner(spinner.Line)),
	}
}

func (m model) Init() tea.Cmd {
	client := m.client
	ctx := m.ctx
	restore := func() tea.Msg {
		return restoredMsg{err: client.Restore(ctx)}
	}
	return tea.Batch(restore, m.spinner.Tick, textinput.Blink)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(max(msg.Width-4, 20))
		m.table.SetHeight(max(msg.Height-14, 5))
		return m, nil

	case spinner.TickMsg:
		if m.busy == 0 && !m.restoring {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case restoredMsg:
		m.restoring = false
		if msg.err != nil {
			m.logger.Err(msg.err).Msg("restore failed, starting logged out")
		}
		m.refresh()
		if m.snapshot.Authenticated {
			return m, m.start("list", m.client.ListSessions)
		}
		return m, nil

	case actionDoneMsg:
		m.busy = max(m.busy-1, 0)
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Str("op", msg.op).Msg("action finished with error")
		}
		wasAuthenticated := m.snapshot.Authenticated
		m.refresh()
		if wasAuthenticated != m.snapshot.Authenticated {
			m.login = m.login.reset()
		}
		return m, m.syncNotice()

	case confirmRequestMsg:
		if m.confirm != nil {
			m.confirm.answer(false)
		}
		m.confirm = &pendingConfirm{prompt: msg.prompt, reply: msg.reply}
		return m, nil

	case noticeExpiredMsg:
		m.client.Notices().Dismiss(msg.seq)
		if m.notice != nil && m.notice.Seq == msg.seq {
			m.notice = nil
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("clipboard write failed")
			m.client.Notices().Put(models.SeverityError, msgCopyFailed)
		} else {
			m.client.Notices().Put(models.SeveritySuccess, msgURLCopied)
		}
		return m, m.syncNotice()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if !m.restoring && !m.snapshot.Authenticated {
		var cmd tea.Cmd
		m.login, cmd = m.login.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		if m.confirm != nil {
			m.confirm.answer(false)
		}
		return m, tea.Quit
	}

	if m.confirm != nil {
		switch {
		case key.Matches(k, keys.yes):
			m.confirm.answer(true)
			m.confirm = nil
		case key.Matches(k, keys.no), key.Matches(k, keys.esc):
			m.confirm.answer(false)
			m.confirm = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(k, keys.esc) || key.Matches(k, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if key.Matches(k, keys.esc) && m.notice != nil {
		m.client.Notices().Dismiss(m.notice.Seq)
		m.notice = nil
		return m, nil
	}

	switch {
	case m.restoring:
		return m, nil
	case !m.snapshot.Authenticated:
		return m.handleLoginKey(k)
	default:
		return m.handleSessionsKey(k)
	}
}

func (m model) handleLoginKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(k, keys.enter) {
		var cmd tea.Cmd
		m.login, cmd = m.login.update(k)
		return m, cmd
	}

	if m.busy > 0 {
		return m, nil
	}

	phone, password := m.login.phone(), m.login.password()
	if phone == "" || password == "" {
		m.client.Notices().Put(models.SeverityError, msgCredentialsRequired)
		return m, m.syncNotice()
	}

	client := m.client
	return m, m.start("login", func(ctx context.Context) error {
		return client.Login(ctx, phone, password)
	})
}

func (m model) handleSessionsKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	client := m.client
	p := m.snapshot.Pagination

	switch {
	case key.Matches(k, keys.quit):
		return m, tea.Quit

	case key.Matches(k, keys.create):
		return m, m.start("create", client.CreateSession)

	case key.Matches(k, keys.refresh):
		return m, m.start("list", client.ListSessions)

	case key.Matches(k, keys.logout):
		return m, m.start("logout", client.Logout)

	case key.Matches(k, keys.closeRow):
		s, ok := m.selectedSession()
		if !ok {
			return m, nil
		}
		return m, m.start("close", func(ctx context.Context) error {
			return client.CloseSession(ctx, s.ID)
		})

	case key.Matches(k, keys.copyURL):
		s, ok := m.selectedSession()
		if !ok || s.URL == "" {
			m.client.Notices().Put(models.SeverityError, msgNoURL)
			return m, m.syncNotice()
		}
		write, url := m.writeClipboard, s.URL
		return m, func() tea.Msg { return copiedMsg{url: url, err: write(url)} }

	case key.Matches(k, keys.prevPage):
		if p.PageIndex <= 1 {
			return m, nil
		}
		return m, m.start("page", func(ctx context.Context) error {
			return client.SetPage(ctx, p.PageIndex-1)
		})

	case key.Matches(k, keys.nextPage):
		if p.PageIndex >= p.PageCount() {
			return m, nil
		}
		return m, m.start("page", func(ctx context.Context) error {
			return client.SetPage(ctx, p.PageIndex+1)
		})

	case key.Matches(k, keys.bigger), key.Matches(k, keys.smaller):
		step := 1
		if key.Matches(k, keys.smaller) {
			step = -1
		}
		next := p.NextPageSize(step)
		if (step > 0 && next <= p.PageSize) || (step < 0 && next >= p.PageSize) {
			return m, nil
		}
		return m, m.start("page size", func(ctx context.Context) error {
			return client.SetPageSize(ctx, next)
		})

	case key.Matches(k, keys.version):
		m.showBuildInfo = true
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(k)
	return m, cmd
}

// start runs fn in a command goroutine and reports back with actionDoneMsg.
// There is no in-flight guard: overlapping actions are allowed and the
// client keeps the last completed result.
func (m *model) start(op string, fn func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	m.busy++
	m.logger.Debug().Str("op", op).Msg("action started")

	action := func() tea.Msg {
		return actionDoneMsg{op: op, err: fn(ctx)}
	}
	if m.busy == 1 {
		return tea.Batch(action, m.spinner.Tick)
	}
	return action
}

func (m *model) refresh() {
	m.snapshot = m.client.State()

	rows := sessionRows(m.snapshot.Sessions)
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

// syncNotice shows the pending outbox notice and schedules its dismissal
// when it is a new one.
func (m *model) syncNotice() tea.Cmd {
	n, ok := m.client.Notices().Peek()
	if !ok {
		m.notice = nil
		return nil
	}
	if m.notice != nil && m.notice.Seq == n.Seq {
		return nil
	}
	m.notice = &n
	return expireNotice(n.Seq, m.noticeFor)
}

func (m model) selectedSession() (models.Session, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.snapshot.Sessions) {
		return models.Session{}, false
	}
	return m.snapshot.Sessions[i], true
}

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var title, body, help string
	switch {
	case m.restoring:
		title = "GPU MISSIONS"
		body = m.spinner.View() + " Loading..."
	case !m.snapshot.Authenticated:
		title = "LOG IN"
		body = m.login.view(m.busy > 0)
		help = "tab: next field │ enter: log in │ ctrl+c: quit"
	default:
		title = "SESSIONS"
		body = sessionsBody(m.table, m.snapshot)
		help = mainHelp() + " │ q: quit"
	}
	if m.busy > 0 {
		title += " " + m.spinner.View()
	}

	var b strings.Builder
	if m.notice != nil {
		b.WriteString(renderNotice(*m.notice))
		b.WriteString("\n\n")
	}
	b.WriteString(renderPage(title, body, help))
	if m.confirm != nil {
		b.WriteString("\n\n")
		b.WriteString(m.confirm.View())
	}

	return appStyle.Render(b.String())
}
