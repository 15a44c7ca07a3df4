package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	create   key.Binding
	refresh  key.Binding
	logout   key.Binding
	copyURL  key.Binding
	prevPage key.Binding
	nextPage key.Binding
	bigger   key.Binding
	smaller  key.Binding
	closeRow key.Binding
	version  key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	create:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
	refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	logout:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "logout")),
	copyURL:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy url")),
	prevPage: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev page")),
	nextPage: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next page")),
	bigger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "page size")),
	smaller:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "page size")),
	closeRow: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
	version:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:      key.NewBinding(key.WithKeys("y", "Y")),
	no:       key.NewBinding(key.WithKeys("n", "N")),
}

// mainHelp is the hotkey line of the sessions screen.
func mainHelp() string {
	bindings := []key.Binding{
		keys.create, keys.refresh, keys.closeRow, keys.copyURL,
		keys.prevPage, keys.nextPage, keys.bigger, keys.logout, keys.version,
	}
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
