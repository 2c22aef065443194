// Package tui provides a Bubble Tea terminal user interface for image-fetcher.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/image-fetcher/internal/config"
	"github.com/handiism/image-fetcher/internal/download"
	"github.com/handiism/image-fetcher/internal/model"
)

// Banner and closing lines shared with the CLI.
const (
	WelcomeTitle    = "Welcome to the Ubuntu Image Fetcher"
	WelcomeSubtitle = "A tool for mindfully collecting images from the web"
	ClosingMessage  = "Connection strengthened. Community enriched."
)

// maxLogs bounds how many status lines stay on screen.
const maxLogs = 12

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateFetching
	StateComplete
	StateCancelled
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	fetcher   download.ImageFetcher

	batch   int
	urls    []string
	next    int
	logs    []download.ProgressEvent
	summary download.Summary
	verbose bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewModel creates a new TUI model that fetches with fetcher.
func NewModel(settings *config.Settings, fetcher download.ImageFetcher) Model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/a.png, https://example.com/b.jpg"
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E95420"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		fetcher:   fetcher,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// fetchedMsg carries the result of fetching urls[index] in a given batch.
type fetchedMsg struct {
	batch  int
	index  int
	result model.Result
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateFetching {
				m.cancel()
				m.state = StateCancelled
				return m, nil
			}

		case "enter":
			if m.state == StateInput {
				m.urls = download.ParseInputURLs(m.textInput.Value())
				m.next = 0
				if len(m.urls) == 0 {
					m.state = StateComplete
					return m, nil
				}
				m.state = StateFetching
				return m, tea.Batch(m.fetchCmd(), m.spinner.Tick)
			}

		case "q":
			if m.state == StateComplete || m.state == StateCancelled {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateCancelled {
				return m.reset(), textinput.Blink
			}

		case "tab":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case fetchedMsg:
		if m.state != StateFetching || msg.batch != m.batch || msg.index != m.next {
			return m, nil
		}
		m.summary.Add(msg.result)
		if m.verbose {
			m.appendLog(download.ProgressEvent{Message: "Fetched " + msg.result.URL, Level: download.LevelVerbose})
		}
		for _, event := range download.Events(msg.result) {
			m.appendLog(event)
		}
		m.next++
		if m.next >= len(m.urls) {
			m.state = StateComplete
			return m, nil
		}
		cmds = append(cmds, m.fetchCmd())
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// fetchCmd fetches urls[next]. Only one fetch is ever in flight; the next
// one is issued when its result arrives.
func (m Model) fetchCmd() tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	batch, index, url := m.batch, m.next, m.urls[m.next]
	return func() tea.Msg {
		return fetchedMsg{batch: batch, index: index, result: fetcher.Fetch(ctx, url)}
	}
}

func (m *Model) appendLog(event download.ProgressEvent) {
	m.logs = append(m.logs, event)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m Model) reset() Model {
	m.cancel()
	m.state = StateInput
	m.batch++
	m.urls = nil
	m.next = 0
	m.logs = nil
	m.summary = download.Summary{}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
	return m
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle(WelcomeTitle))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(WelcomeSubtitle))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateFetching:
		b.WriteString(m.viewFetching())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateCancelled:
		b.WriteString(m.viewCancelled())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Please enter image URLs separated by commas:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (tab)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Save directory: %s", m.settings.SaveDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewFetching() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Fetching %s", m.urls[m.next])))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(m.renderLogs())
	if len(m.logs) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"%s\n\nSaved: %d\nSkipped: %d\nFailed: %d\n\n%s",
		m.summary,
		m.summary.Saved,
		m.summary.Skipped(),
		m.summary.Failed(),
		ClosingMessage,
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewCancelled() string {
	var b strings.Builder

	b.WriteString(m.renderLogs())
	b.WriteString("\n")
	b.WriteString(errorStyle.Render(fmt.Sprintf("Cancelled after %d of %d URL(s).", m.summary.Attempted, len(m.urls))))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder
	for _, event := range m.logs {
		b.WriteString(RenderEvent(event))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: fetch • tab: verbose • esc: quit"
	case StateFetching:
		return "esc: cancel"
	case StateComplete, StateCancelled:
		return "r: new batch • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, fetcher download.ImageFetcher) error {
	p := tea.NewProgram(NewModel(settings, fetcher), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
