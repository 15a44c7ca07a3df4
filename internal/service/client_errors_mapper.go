// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-gpu-missions/internal/adapter"
	"github.com/MKhiriev/go-gpu-missions/models"
)

// Notice texts.
const (
	MsgLoggedIn         = "Logged in"
	MsgNoGPUAvailable   = "No GPU available"
	MsgSessionCreated   = "Session created"
	MsgSessionClosed    = "Session closed"
	MsgSessionExpired   = "Session expired, please log in again"
	MsgTransportFailure = "Server unavailable, please retry"
	MsgLoginFailed      = "Login failed"
	MsgRequestRejected  = "Request rejected"
)

// handleError turns a failed remote call into a notice and returns err.
//
//   - application rejections show the server message;
//   - 401 on an authenticated call logs out and always shows a notice;
//   - other transport failures are only logged unless reporting is enabled.
func (s *sessionClient) handleError(ctx context.Context, session authSession, op string, err error) error {
	var apiErr *adapter.APIError

	switch {
	case errors.As(err, &apiErr):
		s.logger.Info().Int("code", apiErr.Code).Str("op", op).Msg("request rejected by server")
		msg := apiErr.Msg
		if msg == "" {
			msg = MsgRequestRejected
		}
		s.notices.Put(models.SeverityError, msg)

	case errors.Is(err, adapter.ErrUnauthorized) && session.authenticated():
		s.logger.Warn().Err(err).Str("op", op).Msg("credential rejected, logging out")
		if s.dropSession(session) {
			if delErr := s.credentials.Delete(ctx); delErr != nil {
				s.logger.Err(delErr).Str("op", op).Msg("failed to delete rejected credential")
			}
		}
		s.notices.Put(models.SeverityError, MsgSessionExpired)

	case errors.Is(err, adapter.ErrTransport):
		s.logger.Warn().Err(err).Str("op", op).Msg("transport failure")
		if s.reportTransportErrors {
			s.notices.Put(models.SeverityError, MsgTransportFailure)
		}

	default:
		s.logger.Err(err).Str("op", op).Msg("request failed")
	}

	return err
}

// dropSession logs out only if session is still the active one.
func (s *sessionClient) dropSession(session authSession) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.same(session) {
		return false
	}
	s.clearSessionLocked()
	return true
}
