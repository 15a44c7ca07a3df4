// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-gpu-missions/internal/adapter"
	"github.com/MKhiriev/go-gpu-missions/internal/config"
	"github.com/MKhiriev/go-gpu-missions/internal/logger"
	"github.com/MKhiriev/go-gpu-missions/internal/store"
	"github.com/MKhiriev/go-gpu-missions/models"
)

// authSession carries the credential into every authenticated call.
// A zero value means "logged out".
type authSession struct {
	credential models.Credential
}

func (a authSession) authenticated() bool {
	return !a.credential.Empty()
}

// same reports whether b was started under the same credential as a. Results
// of calls that raced a logout or a re-login are dropped.
func (a authSession) same(b authSession) bool {
	return a.credential.Token == b.credential.Token
}

type sessionClient struct {
	api         adapter.MissionAPI
	credentials store.CredentialRepository
	confirmer   Confirmer
	picker      Picker
	location    *time.Location

	reportTransportErrors bool

	notices *models.NoticeOutbox
	logger  *logger.Logger

	mu         sync.Mutex
	session    authSession
	sessions   []models.Session
	pagination models.Pagination
}

// Option tweaks a SessionClient at construction.
type Option func(*sessionClient)

// WithPicker replaces the random source used to choose among offers.
func WithPicker(p Picker) Option {
	return func(s *sessionClient) { s.picker = p }
}

// WithLocation sets the zone timestamps are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(s *sessionClient) { s.location = loc }
}

// NewSessionClient wires the façade. appCfg supplies the initial page size
// and whether transport failures become notices.
func NewSessionClient(
	api adapter.MissionAPI,
	credentials store.CredentialRepository,
	confirmer Confirmer,
	appCfg config.ClientApp,
	log *logger.Logger,
	opts ...Option,
) SessionClient {
	s := &sessionClient{
		api:                   api,
		credentials:           credentials,
		confirmer:             confirmer,
		picker:                globalPicker{},
		location:              time.Local,
		reportTransportErrors: appCfg.ReportTransportErrors,
		notices:               &models.NoticeOutbox{},
		logger:                log,
		pagination:            models.NewPagination(appCfg.PageSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *sessionClient) Restore(ctx context.Context) error {
	cred, err := s.credentials.Get(ctx)
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return nil
	case errors.Is(err, store.ErrCredentialUnreadable):
		s.logger.Warn().Err(err).Str("func", "sessionClient.Restore").Msg("dropping unreadable stored credential")
		if delErr := s.credentials.Delete(ctx); delErr != nil {
			s.logger.Err(delErr).Str("func", "sessionClient.Restore").Msg("failed to delete unreadable credential")
		}
		return nil
	case err != nil:
		return fmt.Errorf("restore credential: %w", err)
	}

	s.mu.Lock()
	s.session = authSession{credential: cred}
	s.mu.Unlock()

	s.logger.Debug().Str("func", "sessionClient.Restore").Msg("restored persisted credential")
	return nil
}

func (s *sessionClient) Login(ctx context.Context, phone, password string) error {
	cred, err := s.api.Login(ctx, models.NewLoginRequest(phone, password))
	if err != nil {
		return s.handleError(ctx, authSession{}, "login", err)
	}
	if cred.Empty() {
		s.notices.Put(models.SeverityError, MsgLoginFailed)
		return ErrEmptyToken
	}

	if err = s.credentials.Save(ctx, cred); err != nil {
		// the session still works until the process exits
		s.logger.Err(err).Str("func", "sessionClient.Login").Msg("failed to persist credential")
	}

	s.mu.Lock()
	s.session = authSession{credential: cred}
	s.sessions = nil
	s.pagination = s.pagination.WithPage(1).WithTotal(0)
	s.mu.Unlock()

	s.notices.Put(models.SeveritySuccess, MsgLoggedIn)

	return s.ListSessions(ctx)
}

func (s *sessionClient) ListSessions(ctx context.Context) error {
	s.mu.Lock()
	session, pagination := s.session, s.pagination
	s.mu.Unlock()

	if !session.authenticated() {
		return ErrNotAuthenticated
	}

	page, err := s.api.ListMissions(ctx, session.credential, models.ListMissionsRequest{
		PageIndex:   pagination.PageIndex,
		PageSize:    pagination.PageSize,
		FrontStates: models.ActiveMissionStates,
	})
	if err != nil {
		return s.handleError(ctx, session, "list sessions", err)
	}

	sessions := make([]models.Session, 0, len(page.List))
	for _, m := range page.List {
		if !m.Status.Known() {
			s.logger.Debug().Int64("id", m.ID).Str("status", m.Status.String()).Msg("mission in unexpected state")
		}
		sessions = append(sessions, ToSession(m, s.location))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.session.same(session) {
		return nil
	}
	s.sessions = sessions
	s.pagination = s.pagination.WithTotal(page.Total)

	return nil
}

func (s *sessionClient) SetPage(ctx context.Context, pageIndex int) error {
	s.mu.Lock()
	next := s.pagination.WithPage(pageIndex)
	changed := next != s.pagination
	s.pagination = next
	s.mu.Unlock()

	if !changed {
		return nil
	}
	return s.ListSessions(ctx)
}

func (s *sessionClient) SetPageSize(ctx context.Context, size int) error {
	if !models.IsValidPageSize(size) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}

	s.mu.Lock()
	if size == s.pagination.PageSize {
		s.mu.Unlock()
		return nil
	}
	s.pagination = s.pagination.WithPageSize(size)
	s.mu.Unlock()

	return s.ListSessions(ctx)
}

func (s *sessionClient) Goto(ctx context.Context, pageIndex, pageSize int) error {
	if pageSize != 0 && !models.IsValidPageSize(pageSize) {
		return fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}

	s.mu.Lock()
	if pageSize != 0 && pageSize != s.pagination.PageSize {
		s.pagination = s.pagination.WithPageSize(pageSize)
	}
	s.pagination = s.pagination.WithPage(pageIndex)
	s.mu.Unlock()

	return s.ListSessions(ctx)
}

func (s *sessionClient) FindCheapestGPU(ctx context.Context) (models.Offer, bool, error) {
	offers, err := s.api.CheapestPrices(ctx, models.SSHPriceQuery())
	if err != nil {
		return models.Offer{}, false, err
	}

	offer, ok := selectOffer(offers, s.picker)
	return offer, ok, nil
}

func (s *sessionClient) CreateSession(ctx context.Context) error {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if !session.authenticated() {
		return ErrNotAuthenticated
	}

	offer, ok, err := s.FindCheapestGPU(ctx)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "sessionClient.CreateSession").Msg("price lookup failed")
		}
		s.notices.Put(models.SeverityError, MsgNoGPUAvailable)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoOfferAvailable, err)
		}
		return ErrNoOfferAvailable
	}

	s.logger.Debug().Str("gpu_version", offer.GPUVersion).Bool("quick_start", offer.QuickStart).Msg("creating session")

	if err = s.api.CreateMissions(ctx, session.credential, models.NewSSHMissionRequest(offer.GPUVersion)); err != nil {
		return s.handleError(ctx, session, "create session", err)
	}

	s.notices.Put(models.SeveritySuccess, MsgSessionCreated)

	return s.ListSessions(ctx)
}

func (s *sessionClient) CloseSession(ctx context.Context, id int64) error {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()

	if !session.authenticated() {
		return ErrNotAuthenticated
	}

	confirmed, err := s.confirmer.Confirm(ctx, fmt.Sprintf("Close session %d?", id))
	if err != nil {
		return fmt.Errorf("confirm close: %w", err)
	}
	if !confirmed {
		return ErrCloseNotConfirmed
	}

	if err = s.api.CloseMissions(ctx, session.credential, models.CloseMissionsRequest{IDs: []int64{id}}); err != nil {
		return s.handleError(ctx, session, "close session", err)
	}

	s.notices.Put(models.SeveritySuccess, MsgSessionClosed)

	return s.ListSessions(ctx)
}

func (s *sessionClient) Logout(ctx context.Context) error {
	s.clearSession()

	if err := s.credentials.Delete(ctx); err != nil {
		s.logger.Err(err).Str("func", "sessionClient.Logout").Msg("failed to delete persisted credential")
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

// clearSession drops the credential and everything fetched with it. The
// chosen page size survives.
func (s *sessionClient) clearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearSessionLocked()
}

func (s *sessionClient) clearSessionLocked() {
	s.session = authSession{}
	s.sessions = nil
	s.pagination = s.pagination.WithPage(1).WithTotal(0)
}

func (s *sessionClient) State() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := models.Snapshot{
		Authenticated: s.session.authenticated(),
		Sessions:      slices.Clone(s.sessions),
		Pagination:    s.pagination,
	}
	if exp, ok := s.session.credential.ExpiresAt(); ok {
		snapshot.ExpiresAt = exp
	}

	return snapshot
}

func (s *sessionClient) Notices() *models.NoticeOutbox {
	return s.notices
}
