package service

import "errors"

// Local precondition failures. No remote call is made when these are
// returned.
var (
	// ErrNotAuthenticated is returned by operations that need a credential
	// when none is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoOfferAvailable is returned by CreateSession when the price lookup
	// yields no usable offer.
	ErrNoOfferAvailable = errors.New("no gpu offer available")

	// ErrCloseNotConfirmed is returned by CloseSession when the user declines.
	ErrCloseNotConfirmed = errors.New("close not confirmed")

	// ErrInvalidPageSize is returned by SetPageSize for sizes outside the
	// supported set.
	ErrInvalidPageSize = errors.New("unsupported page size")

	// ErrEmptyToken is returned by Login when the server reports success but
	// sends no token.
	ErrEmptyToken = errors.New("server returned an empty token")
)
