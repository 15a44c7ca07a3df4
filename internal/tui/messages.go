package tui

// restoredMsg reports the end of the startup credential lookup.
type restoredMsg struct {
	err error
}

// actionDoneMsg reports the end of a SessionClient call started by a key
// press. The model re-reads the client snapshot and outbox afterwards.
type actionDoneMsg struct {
	op  string
	err error
}

// confirmRequestMsg asks the user a yes/no question on behalf of a blocked
// SessionClient call.
type confirmRequestMsg struct {
	prompt string
	reply  chan<- bool
}

// noticeExpiredMsg fires when the notice numbered seq has been visible for
// the configured duration.
type noticeExpiredMsg struct {
	seq uint64
}

type copiedMsg struct {
	url string
	err error
}
