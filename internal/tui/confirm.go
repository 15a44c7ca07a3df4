// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmBridge implements the SessionClient Confirmer on top of a running
// Bubble Tea program.
//
// The bridge is created before the program (the client needs it at
// construction) and attached once the program exists. Confirm posts a
// [confirmRequestMsg] to the program and blocks until the modal is answered
// or ctx is done.
type ConfirmBridge struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	waiting map[chan bool]struct{}
}

// NewConfirmBridge returns a detached bridge.
func NewConfirmBridge() *ConfirmBridge {
	return &ConfirmBridge{waiting: make(map[chan bool]struct{})}
}

// Attach routes future questions to p.
func (b *ConfirmBridge) Attach(p *tea.Program) {
	b.attach(p.Send)
}

func (b *ConfirmBridge) attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

// Detach stops routing questions. Calls still waiting for an answer get
// false; later calls fail with [ErrNoProgram].
func (b *ConfirmBridge) Detach() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.send = nil
	for reply := range b.waiting {
		select {
		case reply <- false:
		default:
		}
		delete(b.waiting, reply)
	}
}

// Confirm asks prompt and reports the user's answer.
func (b *ConfirmBridge) Confirm(ctx context.Context, prompt string) (bool, error) {
	reply := make(chan bool, 1)

	b.mu.Lock()
	send := b.send
	if send != nil {
		b.waiting[reply] = struct{}{}
	}
	b.mu.Unlock()

	if send == nil {
		return false, ErrNoProgram
	}
	defer func() {
		b.mu.Lock()
		delete(b.waiting, reply)
		b.mu.Unlock()
	}()

	send(confirmRequestMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// pendingConfirm is the open modal.
type pendingConfirm struct {
	prompt string
	reply  chan<- bool
}

func (c *pendingConfirm) answer(ok bool) {
	select {
	case c.reply <- ok:
	default:
	}
}

func (c *pendingConfirm) View() string {
	return overlayBoxStyle.Render(c.prompt + "\n\n" + "y yes    n no")
}
