package search

import (
	"context"
	"strings"
	"time"

	"github.com/atomicstack/wordsearch/internal/dictionary"
	"github.com/atomicstack/wordsearch/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is how long typing must pause before the input is committed.
const DefaultDelay = 400 * time.Millisecond

// Lookuper fetches dictionary entries for a single word.
type Lookuper interface {
	Lookup(ctx context.Context, word string) ([]dictionary.Entry, error)
}

// Option customises a Controller.
type Option func(*Controller)

// WithDelay overrides the debounce delay. Zero commits every keystroke
// immediately; negative values are ignored.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithContext sets the parent context for every lookup.
func WithContext(ctx context.Context) Option {
	return func(c *Controller) {
		if ctx != nil {
			c.root = ctx
		}
	}
}

type debounceMsg struct {
	seq int
	raw string
}

type resultMsg struct {
	seq     int
	query   string
	entries []dictionary.Entry
	err     error
	elapsed time.Duration
}

// Controller turns keystrokes into committed queries and reconciles lookup
// results. It is driven from the Bubble Tea update loop and is not safe for
// concurrent use.
type Controller struct {
	lookup Lookuper
	delay  time.Duration
	root   context.Context

	pending     string
	query       string
	debounceSeq int
	token       int
	cancel      context.CancelFunc
	state       ResultState
}

// New returns an idle controller.
func New(lookup Lookuper, opts ...Option) *Controller {
	c := &Controller{
		lookup: lookup,
		delay:  DefaultDelay,
		root:   context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InputChanged records raw as the pending input and schedules a commit after
// the debounce delay. A newer call supersedes the scheduled commit. Clearing
// the field commits the empty query at once.
func (c *Controller) InputChanged(raw string) tea.Cmd {
	c.pending = raw
	c.debounceSeq++
	seq := c.debounceSeq
	events.Query.Input(raw, seq)
	if raw == "" {
		return c.commit("", events.CommitEmpty)
	}
	if c.delay == 0 {
		return c.commit(raw, events.CommitDebounce)
	}
	return tea.Tick(c.delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq, raw: raw}
	})
}

// CommitNow commits raw immediately and drops any scheduled commit.
func (c *Controller) CommitNow(raw string) tea.Cmd {
	c.pending = raw
	c.debounceSeq++
	return c.commit(raw, events.CommitEnter)
}

// Clear resets input, query and results without touching the network.
func (c *Controller) Clear() {
	c.debounceSeq++
	c.pending = ""
	c.query = ""
	c.invalidate()
	c.state = ResultState{Status: StatusIdle}
	events.Query.Clear()
}

// Update consumes controller messages. handled is false for anything else.
func (c *Controller) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.seq != c.debounceSeq {
			events.Query.DebounceSuperseded(msg.raw, msg.seq, c.debounceSeq)
			return true, nil
		}
		return true, c.commit(msg.raw, events.CommitDebounce)
	case resultMsg:
		c.applyResult(msg)
		return true, nil
	}
	return false, nil
}

func (c *Controller) commit(raw string, reason events.CommitReason) tea.Cmd {
	query := strings.TrimSpace(raw)
	events.Query.Commit(query, reason)
	if query == "" {
		c.query = ""
		c.invalidate()
		c.state = ResultState{Status: StatusIdle}
		return nil
	}
	if query == c.query && c.state.Query == query && !c.retries(reason) {
		events.Query.Unchanged(query)
		return nil
	}

	c.query = query
	c.invalidate()
	ctx, cancel := context.WithCancel(c.root)
	c.cancel = cancel
	seq := c.token
	c.state = ResultState{
		Status:  StatusLoading,
		Query:   query,
		Entries: c.state.Entries,
	}
	events.Lookup.Request(query, seq)

	lookup := c.lookup
	return func() tea.Msg {
		start := time.Now()
		entries, err := lookup.Lookup(ctx, query)
		return resultMsg{
			seq:     seq,
			query:   query,
			entries: entries,
			err:     err,
			elapsed: time.Since(start),
		}
	}
}

// invalidate retires the live request token and aborts its transport.
// retries reports whether an unchanged query is sent again. Only an explicit
// Enter repeats a failed lookup; edits that trim to the same word never do.
func (c *Controller) retries(reason events.CommitReason) bool {
	return c.state.Status == StatusError && reason == events.CommitEnter
}

func (c *Controller) invalidate() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.token++
}

func (c *Controller) applyResult(msg resultMsg) {
	if msg.seq != c.token {
		events.Lookup.Discard(msg.query, msg.seq, c.token)
		return
	}
	failure := Classify(msg.err)
	if failure == FailureCancelled {
		events.Lookup.Cancelled(msg.query, msg.seq)
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	switch failure {
	case FailureNone:
		entries := msg.entries
		if entries == nil {
			entries = []dictionary.Entry{}
		}
		events.Lookup.Success(msg.query, msg.seq, len(entries), msg.elapsed)
		c.state = ResultState{Status: StatusSuccess, Query: msg.query, Entries: entries}
	case FailureNotFound:
		events.Lookup.NotFound(msg.query, msg.seq)
		c.fail(msg.query)
	default:
		events.Lookup.Error(msg.query, msg.seq, msg.err)
		c.fail(msg.query)
	}
}

func (c *Controller) fail(query string) {
	c.state = ResultState{Status: StatusError, Query: query, Message: LookupFailedMessage}
}

// Query returns the committed query.
func (c *Controller) Query() string { return c.query }

// Pending returns the raw, uncommitted input.
func (c *Controller) Pending() string { return c.pending }

// State returns the current result state.
func (c *Controller) State() ResultState { return c.state }

// ErrorMessage is empty unless the last accepted lookup failed.
func (c *Controller) ErrorMessage() string { return c.state.Message }

// Loading reports whether a live lookup is outstanding.
func (c *Controller) Loading() bool { return c.state.Status == StatusLoading }

// Token returns the live request token.
func (c *Controller) Token() int { return c.token }
