// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginForm holds the phone and password inputs of the login screen.
type loginForm struct {
	inputs []textinput.Model
	focus  int
}

func newLoginForm() loginForm {
	phone := textinput.New()
	phone.Placeholder = "phone"
	phone.CharLimit = 32
	phone.Width = 40
	phone.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginForm{inputs: []textinput.Model{phone, password}}
}

func (f loginForm) phone() string {
	return strings.TrimSpace(f.inputs[0].Value())
}

func (f loginForm) password() string {
	return f.inputs[1].Value()
}

// reset clears the password and moves focus back to the phone input.
func (f loginForm) reset() loginForm {
	f.inputs[1].SetValue("")
	f.inputs[f.focus].Blur()
	f.focus = 0
	f.inputs[0].Focus()
	return f
}

// update handles focus movement and forwards everything else to the focused
// input. Submission is handled by the caller.
func (f loginForm) update(msg tea.Msg) (loginForm, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.tab):
			return f.move(1), nil
		case key.Matches(k, keys.backtab):
			return f.move(-1), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f loginForm) move(step int) loginForm {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + step + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
	return f
}

func (f loginForm) view(busy bool) string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Phone     │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]\n")

	if busy {
		b.WriteString("\n[Log in...]")
	} else {
		b.WriteString("\n[Log in]")
	}

	return b.String()
}
