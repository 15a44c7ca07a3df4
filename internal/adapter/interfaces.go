// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote GPU-rental API.
//
// The primary abstraction is [MissionAPI], which decouples the service layer
// from HTTP. Authenticated calls take the [models.Credential] explicitly; the
// adapter holds no token of its own.
//
// Failures fall into two classes callers tell apart with [errors.Is] and
// [errors.As]:
//   - [ErrTransport]: the request did not complete or the HTTP status was not
//     2xx. A 401 additionally matches [ErrUnauthorized].
//   - [*APIError]: the server answered but the body code was not
//     [models.SuccessCode]; Msg is meant to be shown to the user.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-gpu-missions/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mission_api_mock.go -package=mock

// MissionAPI defines the remote operations the client issues.
type MissionAPI interface {
	// Login exchanges phone and password for a bearer token.
	// POST /v1/login
	Login(ctx context.Context, req models.LoginRequest) (models.Credential, error)

	// CheapestPrices returns the cheapest offer per GPU model matching q.
	// GET /v1/prices/cheapest
	CheapestPrices(ctx context.Context, q models.PriceQuery) ([]models.Offer, error)

	// CreateMissions launches the missions described by req.
	// POST /v1/user/missions/batch
	CreateMissions(ctx context.Context, cred models.Credential, req models.CreateMissionsRequest) error

	// ListMissions returns one page of the user's missions.
	// GET /v1/user/missions
	ListMissions(ctx context.Context, cred models.Credential, req models.ListMissionsRequest) (models.MissionPage, error)

	// CloseMissions terminates the missions listed in req.
	// PUT /v1/user/missions/close/batch
	CloseMissions(ctx context.Context, cred models.Credential, req models.CloseMissionsRequest) error
}
