package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/rafabd1/ubiq/internal/commands"
	"github.com/rafabd1/ubiq/pkg/events"
	"github.com/rafabd1/ubiq/pkg/log"
	"github.com/rafabd1/ubiq/pkg/search"
)

const (
	maxSuggestions = 5
	helpCommand    = "/help"
	quitCommand    = "/quit"
	exitCommand    = "/exit"
)

// Model is the state of the interactive launcher.
type Model struct {
	ctx         context.Context
	dispatcher  *commands.Dispatcher
	searcher    search.Searcher
	viewport    viewport.Model
	input       textinput.Model
	messages    []string
	suggestions []string
	promptStyle lipgloss.Style
	urlStyle    lipgloss.Style
	errorStyle  lipgloss.Style
	helpStyle   lipgloss.Style
	ready       bool
}

// New initializes a model. Launches run under ctx.
func New(ctx context.Context, dispatcher *commands.Dispatcher, searcher search.Searcher) *Model {
	ti := textinput.New()
	ti.Placeholder = "qtbug 12345, qdoc QString::split from 5.2, /help"
	ti.Prompt = "┃ "
	ti.CharLimit = 512
	ti.Width = 50
	ti.Focus()

	return &Model{
		ctx:         ctx,
		dispatcher:  dispatcher,
		searcher:    searcher,
		input:       ti,
		messages:    []string{"Type a command and press Enter. /help lists commands, /quit exits."},
		promptStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		urlStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		errorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		helpStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses, window resizes and launch results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		}
		previous := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != previous {
			return m, tea.Batch(cmd, m.suggest(m.input.Value()))
		}
		return m, cmd

	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		height := msg.Height - headerHeight - footerHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		m.refresh()
		return m, nil

	case events.SuggestionsMsg:
		// Drop answers for text that has since changed.
		if msg.Query == firstWord(m.input.Value()) {
			m.suggestions = msg.Names
		}
		return m, nil

	case events.OpenedMsg:
		if msg.Err != nil {
			m.appendLine(m.errorStyle.Render("error: " + msg.Err.Error()))
			if msg.Hint != "" {
				m.appendLine(m.helpStyle.Render(msg.Hint))
			}
		} else {
			m.appendLine(m.urlStyle.Render("opened " + msg.URL))
		}
		return m, nil

	case events.ExitTUIMsg:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// submit consumes the current input line.
func (m *Model) submit() tea.Cmd {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.suggestions = nil
	if line == "" {
		return nil
	}
	m.appendLine(m.promptStyle.Render("> ") + line)

	switch line {
	case quitCommand, exitCommand:
		return func() tea.Msg { return events.ExitTUIMsg{} }
	case helpCommand:
		m.appendLine(m.helpStyle.Render(helpText(m.dispatcher.Registry())))
		return nil
	}
	return m.launch(line)
}

// launch resolves and opens line off the update loop.
func (m *Model) launch(line string) tea.Cmd {
	ctx, dispatcher, searcher := m.ctx, m.dispatcher, m.searcher
	return func() tea.Msg {
		inv, err := dispatcher.Registry().ParseLine(line)
		if err != nil {
			return events.OpenedMsg{Input: line, Err: err}
		}
		u, err := dispatcher.Launch(ctx, inv.Name, inv.Args()...)
		msg := events.OpenedMsg{Input: line, URL: u, Err: err}
		if err != nil {
			log.Debug("launch failed", "input", line, "error", err)
		}
		if errors.Is(err, commands.ErrUnknownCommand) && searcher != nil {
			if results, serr := searcher.Search(ctx, inv.Name); serr == nil && len(results) > 0 {
				msg.Hint = "did you mean " + results[0].Title + "?"
			}
		}
		return msg
	}
}

func (m *Model) suggest(value string) tea.Cmd {
	if m.searcher == nil {
		return nil
	}
	query := firstWord(value)
	if query == "" {
		m.suggestions = nil
		return nil
	}
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		results, err := searcher.Search(ctx, query)
		if err != nil {
			return nil
		}
		names := search.Titles(results)
		if len(names) > maxSuggestions {
			names = names[:maxSuggestions]
		}
		return events.SuggestionsMsg{Query: query, Names: names}
	}
}

func (m *Model) appendLine(line string) {
	m.messages = append(m.messages, line)
	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.messages, "\n"))
	m.viewport.GotoBottom()
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m *Model) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("ubiq")
	line := strings.Repeat("─", m.viewport.Width)
	return lipgloss.JoinVertical(lipgloss.Left, title, line)
}

func (m *Model) footerView() string {
	hint := " "
	if len(m.suggestions) > 0 {
		hint = "matches: " + strings.Join(m.suggestions, "  ")
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.input.View(), m.helpStyle.Render(hint))
}

func helpText(registry *commands.Registry) string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, spec := range registry.GetAll() {
		fmt.Fprintf(&b, "\n  %-34s %s", spec.Usage(), spec.Description)
	}
	fmt.Fprintf(&b, "\n  %-34s %s", helpCommand, "Show this message")
	fmt.Fprintf(&b, "\n  %-34s %s", quitCommand, "Quit")
	return b.String()
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, dispatcher *commands.Dispatcher, searcher search.Searcher) error {
	p := tea.NewProgram(New(ctx, dispatcher, searcher), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "failed to run TUI")
	}
	return nil
}
