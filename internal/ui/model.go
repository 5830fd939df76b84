package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/wordsearch/internal/logging/events"
	"github.com/atomicstack/wordsearch/internal/prefs"
	"github.com/atomicstack/wordsearch/internal/search"
	"github.com/atomicstack/wordsearch/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	inputPrompt      = "Search: "
	inputPlaceholder = "type a word"
	inputCharLimit   = 64
	infoDuration     = 5 * time.Second
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. A zero Delay commits every keystroke without
// debouncing.
type Options struct {
	Lookup      search.Lookuper
	Prefs       prefs.Store
	Context     context.Context
	Delay       time.Duration
	Width       int
	Height      int
	ShowFooter  bool
	InitialWord string
}

// Model implements the Bubble Tea model for the dictionary lookup screen.
type Model struct {
	input   textinput.Model
	results viewport.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	search *search.Controller
	prefs  prefs.Store
	dark   bool
	styles *theme.Styles

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	initialWord string
	spinning    bool
	infoMsg     string
	infoExpire  time.Time
	rendered    renderKey

	handlers map[reflect.Type]msgHandler
}

// renderKey identifies the inputs the results pane was last rendered from.
type renderKey struct {
	query  string
	status search.Status
	token  int
	theme  string
	width  int
}

// NewModel wires the controller, preference store and widgets together.
func NewModel(opts Options) *Model {
	store := opts.Prefs
	if store == nil {
		store = prefs.NewMemoryStore(prefs.Defaults())
	}
	m := &Model{
		keys:        defaultKeyMap(),
		help:        help.New(),
		prefs:       store,
		showFooter:  opts.ShowFooter,
		initialWord: opts.InitialWord,
		results:     viewport.New(0, 0),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	p, err := store.Load()
	if err != nil {
		events.Prefs.Error("load", err)
		m.setInfo("Could not load preferences: " + err.Error())
	}
	m.dark = p.DarkTheme
	m.styles = theme.For(m.dark)

	searchOpts := []search.Option{search.WithDelay(opts.Delay)}
	if opts.Context != nil {
		searchOpts = append(searchOpts, search.WithContext(opts.Context))
	}
	m.search = search.New(opts.Lookup, searchOpts...)

	ti := textinput.New()
	ti.Prompt = inputPrompt
	ti.Placeholder = inputPlaceholder
	ti.CharLimit = inputCharLimit
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	m.input = ti

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.applyStyles()
	m.resize()
	m.registerHandlers()
	m.syncResults()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.initialWord == "" {
		return nil
	}
	m.input.SetValue(m.initialWord)
	m.input.CursorEnd()
	return m.finishUpdate([]tea.Cmd{m.search.CommitNow(m.initialWord)})
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.search.Update(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	} else if cmd := m.updateInput(msg); cmd != nil {
		// Widget-private messages (cursor blinks, clipboard results) belong to
		// the text field.
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):   m.handleSpinnerTickMsg,
		reflect.TypeOf(clipboardErrMsg{}):   m.handleClipboardErrMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate starts the spinner when a lookup is outstanding and refreshes
// the results pane from controller state.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.search.Loading() && !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	m.syncResults()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.search.Loading() {
		m.spinning = false
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.resize()
	events.UI.Resize(m.width, m.height)
	return nil
}

func (m *Model) resize() {
	m.results.Width = m.contentWidth()
	m.results.Height = m.bodyHeight()
	m.help.Width = m.width
	m.input.Width = max(m.contentWidth()-len(inputPrompt)-1, 0)
}

func (m *Model) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWrapWidth
}

// bodyHeight is the number of rows left for results. Zero means unbounded.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := 4 // title, input, rule, status
	if m.showFooter {
		used++
	}
	return max(m.height-used, 1)
}

func (m *Model) syncResults() {
	state := m.search.State()
	key := renderKey{
		query:  state.Query,
		status: state.Status,
		token:  m.search.Token(),
		theme:  m.styles.Name,
		width:  m.contentWidth(),
	}
	if key == m.rendered {
		return
	}
	top := key.query != m.rendered.query || (key.status == search.StatusSuccess && m.rendered.status != search.StatusSuccess)
	m.rendered = key
	m.results.SetContent(bodyText(state, m.styles, key.width))
	if top {
		m.results.GotoTop()
	}
}

func (m *Model) applyStyles() {
	s := m.styles
	m.input.PromptStyle = *s.Prompt
	m.input.TextStyle = *s.Input
	m.input.PlaceholderStyle = *s.Placeholder
	m.input.Cursor.Style = *s.Prompt
	m.spinner.Style = *s.Spinner
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoDuration)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// Controller exposes the query controller.
func (m *Model) Controller() *search.Controller {
	return m.search
}

// DarkTheme reports the active display preference.
func (m *Model) DarkTheme() bool {
	return m.dark
}
