package events

import (
	tea "github.com/charmbracelet/bubbletea"
)

// OpenedMsg reports the outcome of launching a command from the TUI.
// URL is empty when resolution itself failed.
type OpenedMsg struct {
	Input string
	URL   string
	Err   error
	Hint  string // e.g. a "did you mean" suggestion
}

// SuggestionsMsg carries command matches for the text currently typed.
type SuggestionsMsg struct {
	Query string
	Names []string
}

// ExitTUIMsg signals that the TUI should quit.
type ExitTUIMsg struct{}

var _ tea.Msg = OpenedMsg{}
var _ tea.Msg = SuggestionsMsg{}
var _ tea.Msg = ExitTUIMsg{}
