package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks a request that failed below the application layer:
	// a network error, a timeout, a non-2xx status or an undecodable body.
	ErrTransport = errors.New("transport failure")

	// ErrUnauthorized is wrapped together with ErrTransport on HTTP 401.
	ErrUnauthorized = errors.New("client unauthorized")
)

// APIError is an application-level rejection: the HTTP exchange succeeded
// but the envelope code was not the success code.
type APIError struct {
	Code int
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Msg)
}
