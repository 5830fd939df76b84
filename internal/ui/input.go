package ui

import (
	"github.com/atomicstack/wordsearch/internal/logging/events"
	"github.com/atomicstack/wordsearch/internal/prefs"
	"github.com/atomicstack/wordsearch/internal/theme"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const scrollStep = 3

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

type clipboardErrMsg struct{ err error }

// pasteClipboard reads the system clipboard and replays it as a bracketed
// paste so both paste routes share the text field's sanitising path.
func pasteClipboard() tea.Msg {
	text, err := readClipboard()
	if err != nil {
		return clipboardErrMsg{err: err}
	}
	if text == "" {
		return nil
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true}
}

func (m *Model) handleClipboardErrMsg(msg tea.Msg) tea.Cmd {
	if failed, ok := msg.(clipboardErrMsg); ok {
		m.setInfo("Could not read clipboard: " + failed.err.Error())
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Commit):
		return m.search.CommitNow(m.input.Value())
	case key.Matches(keyMsg, m.keys.Clear):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Theme):
		m.toggleTheme()
		return nil
	case key.Matches(keyMsg, m.keys.Paste):
		return pasteClipboard
	case key.Matches(keyMsg, m.keys.PageUp):
		m.results.PageUp()
		events.UI.Scroll("page-up", m.results.YOffset)
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.results.PageDown()
		events.UI.Scroll("page-down", m.results.YOffset)
		return nil
	case key.Matches(keyMsg, m.keys.ScrollUp):
		m.results.ScrollUp(scrollStep)
		events.UI.Scroll("up", m.results.YOffset)
		return nil
	case key.Matches(keyMsg, m.keys.ScrollDown):
		m.results.ScrollDown(scrollStep)
		events.UI.Scroll("down", m.results.YOffset)
		return nil
	}
	return m.updateInput(keyMsg)
}

// updateInput forwards msg to the text field and reports any value change to
// the controller.
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	after := m.input.Value()
	if after == before {
		return cmd
	}
	return tea.Batch(cmd, m.search.InputChanged(after))
}

// handleEscapeKey clears the search, or quits when there is nothing to clear.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.input.Value() == "" && m.search.Query() == "" {
		events.UI.Escape(true)
		return tea.Quit
	}
	events.UI.Escape(false)
	m.input.Reset()
	m.search.Clear()
	return nil
}

func (m *Model) toggleTheme() {
	m.dark = !m.dark
	m.styles = theme.For(m.dark)
	m.applyStyles()
	events.UI.Theme(m.dark)
	if err := m.prefs.Save(prefs.Preferences{DarkTheme: m.dark}); err != nil {
		events.Prefs.Error("save", err)
		m.setInfo("Could not save theme preference: " + err.Error())
	}
}
