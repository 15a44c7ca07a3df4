// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// Severity is the visual class of a [Notice].
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is a transient message shown to the user after an action.
//
// Seq is assigned by the outbox and grows with every new notice, so a delayed
// dismiss can tell whether the notice it targets is still the visible one.
type Notice struct {
	Seq      uint64
	Severity Severity
	Message  string
}

// IsError reports whether the notice reports a failure.
func (n Notice) IsError() bool {
	return n.Severity == SeverityError
}

// NoticeOutbox holds at most one pending notice. A new notice replaces the
// pending one instead of queueing behind it. Safe for concurrent use.
type NoticeOutbox struct {
	mu      sync.Mutex
	seq     uint64
	pending *Notice
}

// Put replaces the pending notice and returns it with its sequence number.
func (o *NoticeOutbox) Put(severity Severity, message string) Notice {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	n := Notice{Seq: o.seq, Severity: severity, Message: message}
	o.pending = &n
	return n
}

// Peek returns the pending notice without consuming it.
func (o *NoticeOutbox) Peek() (Notice, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.pending == nil {
		return Notice{}, false
	}
	return *o.pending, true
}

// Take returns the pending notice and empties the outbox.
func (o *NoticeOutbox) Take() (Notice, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.pending == nil {
		return Notice{}, false
	}
	n := *o.pending
	o.pending = nil
	return n, true
}

// Dismiss clears the pending notice only if it is still the one numbered
// seq. It reports whether something was cleared.
func (o *NoticeOutbox) Dismiss(seq uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.pending == nil || o.pending.Seq != seq {
		return false
	}
	o.pending = nil
	return true
}
