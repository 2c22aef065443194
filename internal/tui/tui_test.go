package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/image-fetcher/internal/config"
	"github.com/handiism/image-fetcher/internal/download"
	"github.com/handiism/image-fetcher/internal/model"
)

type fakeFetcher struct{}

func (fakeFetcher) Fetch(ctx context.Context, url string) model.Result {
	if strings.HasSuffix(url, ".png") {
		return model.Saved(url, "x.png", "Fetched_Images/x.png", 1)
	}
	return model.ConnectionError(url, errors.New("HTTP 404"))
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func startBatch(t *testing.T, input string) Model {
	t.Helper()
	m := NewModel(config.DefaultSettings(), fakeFetcher{})
	m.textInput.SetValue(input)
	m, _ = update(t, m, key("enter"))
	return m
}

func TestModel_FetchesSequentially(t *testing.T) {
	m := startBatch(t, "https://a/x.png, , https://a/missing")
	require.Equal(t, StateFetching, m.state)
	require.Equal(t, []string{"https://a/x.png", "https://a/missing"}, m.urls)

	m, cmd := update(t, m, m.fetchCmd()())
	require.Equal(t, StateFetching, m.state)
	require.NotNil(t, cmd, "next fetch is issued after the first result")
	assert.Equal(t, 1, m.next)

	m, _ = update(t, m, m.fetchCmd()())
	assert.Equal(t, StateComplete, m.state)
	assert.Equal(t, 2, m.summary.Attempted)
	assert.Equal(t, 1, m.summary.Saved)
	assert.Equal(t, 1, m.summary.Connection)

	view := m.View()
	assert.Contains(t, view, "Successfully fetched: x.png")
	assert.Contains(t, view, "Connection error for https://a/missing")
	assert.Contains(t, view, ClosingMessage)
}

func TestModel_EmptyInputCompletes(t *testing.T) {
	m := startBatch(t, " ,  , ")

	assert.Equal(t, StateComplete, m.state)
	assert.Equal(t, 0, m.summary.Attempted)
	assert.Contains(t, m.View(), ClosingMessage)
}

func TestModel_CancelIgnoresLateResults(t *testing.T) {
	m := startBatch(t, "https://a/x.png, https://a/y.png")
	late := m.fetchCmd()()

	m, _ = update(t, m, key("esc"))
	require.Equal(t, StateCancelled, m.state)
	assert.Error(t, m.ctx.Err())

	m, _ = update(t, m, late)
	assert.Equal(t, StateCancelled, m.state)
	assert.Equal(t, 0, m.summary.Attempted)
}

func TestModel_ResetStartsNewBatch(t *testing.T) {
	m := startBatch(t, "https://a/x.png, https://a/y.png")
	stale := m.fetchCmd()()
	m, _ = update(t, m, key("esc"))

	m, _ = update(t, m, key("r"))
	require.Equal(t, StateInput, m.state)
	assert.Empty(t, m.textInput.Value())
	assert.NoError(t, m.ctx.Err())

	m.textInput.SetValue("https://a/z.png")
	m, _ = update(t, m, key("enter"))
	require.Equal(t, StateFetching, m.state)

	m, _ = update(t, m, stale)
	assert.Equal(t, 0, m.summary.Attempted, "results from an earlier batch are dropped")
}

func TestRenderEvent(t *testing.T) {
	tests := []struct {
		level  download.ProgressLevel
		prefix string
	}{
		{download.LevelSuccess, "✓"},
		{download.LevelWarning, "✗"},
		{download.LevelError, "✗"},
		{download.LevelInfo, "›"},
		{download.LevelVerbose, "•"},
	}

	for _, tt := range tests {
		got := RenderEvent(download.ProgressEvent{Message: "hello", Level: tt.level})
		assert.Contains(t, got, tt.prefix+" hello")
	}
}
