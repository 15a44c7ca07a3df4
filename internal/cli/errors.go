package cli

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned by commands that need a stored credential.
var ErrNotLoggedIn = errors.New("not logged in, run \"gpu-missions login\" first")

// reportedError marks an error whose message was already printed as a
// notice.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// Reported reports whether err was already shown to the user, so the caller
// only needs to set the exit status.
func Reported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

func invalidIDError(arg string) error {
	return fmt.Errorf("invalid session id %q", arg)
}
