package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/atomicstack/wordsearch/internal/dictionary"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	word string
	ctx  context.Context
}

type fakeLookup struct {
	mu      sync.Mutex
	calls   []call
	results map[string][]dictionary.Entry
	errs    map[string]error
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{
		results: map[string][]dictionary.Entry{},
		errs:    map[string]error{},
	}
}

func (f *fakeLookup) Lookup(ctx context.Context, word string) ([]dictionary.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{word: word, ctx: ctx})
	if err, ok := f.errs[word]; ok {
		return nil, err
	}
	return f.results[word], nil
}

func (f *fakeLookup) words() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.word)
	}
	return out
}

func entry(word string) dictionary.Entry {
	return dictionary.Entry{Word: word}
}

// drain runs cmd and feeds the resulting messages back into c until nothing
// is left to do.
func drain(t *testing.T, c *Controller, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		handled, follow := c.Update(next())
		require.True(t, handled)
		queue = append(queue, follow)
	}
}

func TestBurstWithinDebounceWindowIssuesOneLookup(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["hello"] = []dictionary.Entry{entry("hello")}
	c := New(fake, WithDelay(time.Millisecond))

	var ticks []tea.Cmd
	for _, raw := range []string{"h", "he", "hel", "hell", "hello"} {
		cmd := c.InputChanged(raw)
		require.NotNil(t, cmd)
		ticks = append(ticks, cmd)
	}
	assert.Equal(t, "hello", c.Pending())
	assert.Empty(t, c.Query())

	for _, tick := range ticks {
		drain(t, c, tick)
	}

	assert.Equal(t, []string{"hello"}, fake.words())
	assert.Equal(t, "hello", c.Query())
	state := c.State()
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, []dictionary.Entry{entry("hello")}, state.Entries)
}

func TestDebounceCommitsTrimmedInput(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	c := New(fake, WithDelay(time.Millisecond))
	drain(t, c, c.InputChanged("  word  "))

	assert.Equal(t, "word", c.Query())
	assert.Equal(t, "  word  ", c.Pending())
	assert.Equal(t, []string{"word"}, fake.words())
}

func TestLateStaleResultDoesNotOverwriteNewer(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["cat"] = []dictionary.Entry{entry("cat")}
	fake.results["dog"] = []dictionary.Entry{entry("dog")}
	c := New(fake)

	cmdA := c.CommitNow("cat")
	require.NotNil(t, cmdA)
	tokenA := c.Token()
	cmdB := c.CommitNow("dog")
	require.NotNil(t, cmdB)
	assert.Greater(t, c.Token(), tokenA)

	// B completes first, then A arrives late.
	msgB := cmdB()
	msgA := cmdA()
	c.Update(msgB)
	c.Update(msgA)

	state := c.State()
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, "dog", state.Query)
	assert.Equal(t, []dictionary.Entry{entry("dog")}, state.Entries)

	require.Len(t, fake.calls, 2)
	assert.ErrorIs(t, fake.calls[0].ctx.Err(), context.Canceled, "superseded request should be aborted")
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.errs["cat"] = dictionary.ErrUnavailable
	fake.results["dog"] = []dictionary.Entry{entry("dog")}
	c := New(fake)

	cmdA := c.CommitNow("cat")
	cmdB := c.CommitNow("dog")
	c.Update(cmdB())
	c.Update(cmdA())

	assert.Equal(t, StatusSuccess, c.State().Status)
	assert.Empty(t, c.ErrorMessage())
}

func TestCommittingEmptyQueryGoesIdleWithoutLookup(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["word"] = []dictionary.Entry{entry("word")}
	c := New(fake, WithDelay(time.Millisecond))
	drain(t, c, c.CommitNow("word"))
	require.Equal(t, StatusSuccess, c.State().Status)

	assert.Nil(t, c.CommitNow("   "))
	assert.Equal(t, ResultState{Status: StatusIdle}, c.State())
	assert.Empty(t, c.Query())

	assert.Nil(t, c.InputChanged(""))
	assert.Equal(t, StatusIdle, c.State().Status)
	assert.Equal(t, []string{"word"}, fake.words())
}

func TestWhitespaceInputDebouncesToEmptyQuery(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	c := New(fake, WithDelay(time.Millisecond))
	drain(t, c, c.InputChanged("   "))

	assert.Equal(t, StatusIdle, c.State().Status)
	assert.Empty(t, fake.words())
}

func TestEmptyCommitInvalidatesInFlightLookup(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["word"] = []dictionary.Entry{entry("word")}
	c := New(fake)

	pending := c.CommitNow("word")
	c.InputChanged("")
	c.Update(pending())

	assert.Equal(t, StatusIdle, c.State().Status)
	assert.Empty(t, c.State().Entries)
}

func TestClearThenTypeLooksUpOnlyNewWord(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["new"] = []dictionary.Entry{entry("new")}
	c := New(fake, WithDelay(time.Millisecond))

	staleTick := c.InputChanged("old")
	c.Clear()
	assert.Empty(t, c.Pending())
	assert.Empty(t, c.Query())
	assert.Equal(t, ResultState{Status: StatusIdle}, c.State())

	freshTick := c.InputChanged("new")
	drain(t, c, staleTick)
	drain(t, c, freshTick)

	assert.Equal(t, []string{"new"}, fake.words())
	assert.Equal(t, "new", c.State().Query)
}

func TestClearCancelsLiveLookup(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["word"] = []dictionary.Entry{entry("word")}
	c := New(fake)

	cmd := c.CommitNow("word")
	msg := cmd()
	c.Clear()
	c.Update(msg)

	assert.Equal(t, StatusIdle, c.State().Status)
	require.Len(t, fake.calls, 1)
	assert.ErrorIs(t, fake.calls[0].ctx.Err(), context.Canceled)
}

func TestSuccessPreservesOrderExactly(t *testing.T) {
	t.Parallel()

	payload := []dictionary.Entry{
		{
			Word: "joy",
			Meanings: []dictionary.Meaning{{
				PartOfSpeech: "noun",
				Definitions: []dictionary.Definition{
					{Definition: "A feeling of happiness.", Synonyms: []string{"happy", "glad"}},
					{Definition: "A source of delight."},
				},
			}},
		},
		{
			Word: "joy",
			Meanings: []dictionary.Meaning{{
				PartOfSpeech: "verb",
				Definitions: []dictionary.Definition{
					{Definition: "To rejoice."},
					{Definition: "To enjoy.", Synonyms: []string{"happy", "glad"}},
				},
			}},
		},
	}
	fake := newFakeLookup()
	fake.results["joy"] = payload
	c := New(fake)
	drain(t, c, c.CommitNow("joy"))

	state := c.State()
	require.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, payload, state.Entries)
	assert.Equal(t, []string{"happy", "glad"}, state.Entries[0].Meanings[0].Definitions[0].Synonyms)
	assert.Equal(t, "verb", state.Entries[1].Meanings[0].PartOfSpeech)
	assert.Equal(t, "To enjoy.", state.Entries[1].Meanings[0].Definitions[1].Definition)
}

func TestNetworkFailureSurfacesMessageAndClearsEntries(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["hello"] = []dictionary.Entry{entry("hello")}
	fake.errs["zzzqq"] = fmt.Errorf("%w: connection refused", dictionary.ErrUnavailable)
	c := New(fake)

	drain(t, c, c.CommitNow("hello"))
	require.Len(t, c.State().Entries, 1)

	drain(t, c, c.CommitNow("zzzqq"))
	state := c.State()
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, "No definitions found. Please try another word.", state.Message)
	assert.Equal(t, LookupFailedMessage, c.ErrorMessage())
	assert.Empty(t, state.Entries)
}

func TestNotFoundSurfacesSameMessage(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.errs["zzzqq"] = dictionary.ErrNotFound
	c := New(fake)
	drain(t, c, c.CommitNow("zzzqq"))

	assert.Equal(t, StatusError, c.State().Status)
	assert.Equal(t, LookupFailedMessage, c.ErrorMessage())
}

func TestCancelledLiveResultIsSilent(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.errs["word"] = fmt.Errorf("lookup: %w", context.Canceled)
	c := New(fake)
	drain(t, c, c.CommitNow("word"))

	assert.Equal(t, StatusLoading, c.State().Status)
	assert.Empty(t, c.ErrorMessage())
}

func TestEnterBeforeDebounceIssuesSingleLookup(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["hello"] = []dictionary.Entry{entry("hello")}
	c := New(fake, WithDelay(time.Millisecond))

	tick := c.InputChanged("hello")
	lookup := c.CommitNow("hello")
	assert.Equal(t, "hello", c.Query())
	assert.True(t, c.Loading())

	drain(t, c, lookup)
	drain(t, c, tick)

	assert.Equal(t, []string{"hello"}, fake.words())
	assert.Equal(t, StatusSuccess, c.State().Status)
}

func TestRecommitSameQuery(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["word"] = []dictionary.Entry{entry("word")}
	c := New(fake)

	first := c.CommitNow("word")
	assert.Nil(t, c.CommitNow("word"), "in-flight query should not be re-requested")
	drain(t, c, first)
	assert.Nil(t, c.CommitNow(" word "), "shown query should not be re-requested")
	assert.Equal(t, []string{"word"}, fake.words())

	fake.errs["bad"] = dictionary.ErrUnavailable
	drain(t, c, c.CommitNow("bad"))
	require.Equal(t, StatusError, c.State().Status)
	retry := c.CommitNow("bad")
	require.NotNil(t, retry, "a failed query may be retried explicitly")
	drain(t, c, retry)
	assert.Equal(t, []string{"word", "bad", "bad"}, fake.words())
}

func TestFailedQueryRetriesOnlyOnEnter(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.errs["zzzqq"] = dictionary.ErrUnavailable
	c := New(fake, WithDelay(0))

	drain(t, c, c.InputChanged("zzzqq"))
	require.Equal(t, StatusError, c.State().Status)

	assert.Nil(t, c.InputChanged("zzzqq "), "trailing space must not re-send a failed query")
	assert.Nil(t, c.InputChanged("zzzqq  "))
	assert.Equal(t, StatusError, c.State().Status)
	assert.Equal(t, LookupFailedMessage, c.ErrorMessage())
	assert.Equal(t, []string{"zzzqq"}, fake.words())

	retry := c.CommitNow("zzzqq ")
	require.NotNil(t, retry)
	drain(t, c, retry)
	assert.Equal(t, []string{"zzzqq", "zzzqq"}, fake.words())
}

func TestLoadingKeepsPreviousEntries(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	fake.results["one"] = []dictionary.Entry{entry("one")}
	c := New(fake)
	drain(t, c, c.CommitNow("one"))

	c.CommitNow("two")
	state := c.State()
	assert.Equal(t, StatusLoading, state.Status)
	assert.Equal(t, "two", state.Query)
	assert.Equal(t, []dictionary.Entry{entry("one")}, state.Entries)
}

func TestZeroDelayCommitsImmediately(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	c := New(fake, WithDelay(0))
	cmd := c.InputChanged("now")
	assert.Equal(t, "now", c.Query())
	drain(t, c, cmd)
	assert.Equal(t, []string{"now"}, fake.words())
}

func TestRootContextCancelsLookups(t *testing.T) {
	t.Parallel()

	fake := newFakeLookup()
	ctx, cancel := context.WithCancel(context.Background())
	c := New(fake, WithContext(ctx))
	cmd := c.CommitNow("word")
	cancel()
	cmd()

	require.Len(t, fake.calls, 1)
	assert.ErrorIs(t, fake.calls[0].ctx.Err(), context.Canceled)
}

func TestUpdateIgnoresForeignMessages(t *testing.T) {
	t.Parallel()

	c := New(newFakeLookup())
	handled, cmd := c.Update(tea.KeyMsg{})
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Failure
	}{
		{name: "nil", err: nil, want: FailureNone},
		{name: "cancelled", err: fmt.Errorf("wrap: %w", context.Canceled), want: FailureCancelled},
		{name: "not found", err: fmt.Errorf("%w: %q", dictionary.ErrNotFound, "x"), want: FailureNotFound},
		{name: "unavailable", err: dictionary.ErrUnavailable, want: FailureNetwork},
		{name: "status", err: &dictionary.StatusError{Code: 500}, want: FailureNetwork},
		{name: "malformed", err: dictionary.ErrMalformed, want: FailureNetwork},
		{name: "deadline", err: context.DeadlineExceeded, want: FailureNetwork},
		{name: "other", err: errors.New("boom"), want: FailureNetwork},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestStatusAndFailureStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "not-found", FailureNotFound.String())
	assert.Equal(t, "network", FailureNetwork.String())
}
