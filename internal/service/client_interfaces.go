package service

import (
	"context"

	"github.com/MKhiriev/go-gpu-missions/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionClient is the façade the front-ends drive. It owns the credential,
// the pagination cursor, the last fetched page of sessions and the notice
// outbox.
//
// Every remote operation issues its request without holding internal locks.
// When two calls overlap, the response that completes last overwrites the
// session snapshot.
type SessionClient interface {
	// Restore loads a persisted credential. The client is authenticated
	// afterwards iff one was found; the token is not checked remotely.
	Restore(ctx context.Context) error

	// Login exchanges phone and password for a credential, persists it and
	// fetches the first page of sessions.
	Login(ctx context.Context, phone, password string) error

	// ListSessions fetches the current page of waiting and running sessions.
	ListSessions(ctx context.Context) error

	// SetPage moves to pageIndex and re-fetches when the index changed.
	SetPage(ctx context.Context, pageIndex int) error

	// SetPageSize switches to size, rewinds to the first page and re-fetches
	// when the size changed. Sizes outside [models.PageSizes] are rejected.
	SetPageSize(ctx context.Context, size int) error

	// Goto applies a page size (0 keeps the current one) and then a page
	// index, and fetches the resulting page with a single call.
	Goto(ctx context.Context, pageIndex, pageSize int) error

	// FindCheapestGPU picks an offer for a new SSH session. ok is false when
	// no offer survives filtering.
	FindCheapestGPU(ctx context.Context) (offer models.Offer, ok bool, err error)

	// CreateSession launches one SSH session on the cheapest available GPU.
	CreateSession(ctx context.Context) error

	// CloseSession asks for confirmation and terminates the session id.
	CloseSession(ctx context.Context, id int64) error

	// Logout forgets the credential locally. No remote call is made.
	Logout(ctx context.Context) error

	// State returns a copy of the current client state.
	State() models.Snapshot

	// Notices returns the outbox renderers consume notices from.
	Notices() *models.NoticeOutbox
}

// Confirmer asks the user a yes/no question. It blocks until the user
// answers or ctx is done.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Picker draws a uniform index in [0, n). n is always positive.
type Picker interface {
	IntN(n int) int
}
