package events

import (
	"time"

	"github.com/atomicstack/wordsearch/internal/logging"
)

type QueryTracer struct{}

type LookupTracer struct{}

type CommitReason string

const (
	CommitDebounce CommitReason = "debounce"
	CommitEnter    CommitReason = "enter"
	CommitEmpty    CommitReason = "empty"
)

var (
	Query  = QueryTracer{}
	Lookup = LookupTracer{}
)

func (QueryTracer) Input(raw string, seq int) {
	logging.Trace("query.input", map[string]interface{}{"raw": raw, "debounce": seq})
}

func (QueryTracer) DebounceSuperseded(raw string, seq, current int) {
	logging.Trace("query.debounce.superseded", map[string]interface{}{"raw": raw, "debounce": seq, "current": current})
}

func (QueryTracer) Commit(query string, reason CommitReason) {
	logging.Trace("query.commit", map[string]interface{}{"query": query, "reason": string(reason)})
}

func (QueryTracer) Unchanged(query string) {
	logging.Trace("query.unchanged", map[string]interface{}{"query": query})
}

func (QueryTracer) Clear() {
	logging.Trace("query.clear", nil)
}

func (LookupTracer) Request(query string, token int) {
	logging.Trace("lookup.request", map[string]interface{}{"query": query, "token": token})
}

func (LookupTracer) Success(query string, token, entries int, elapsed time.Duration) {
	logging.Trace("lookup.success", map[string]interface{}{
		"query":   query,
		"token":   token,
		"entries": entries,
		"elapsed": elapsed.String(),
	})
}

func (LookupTracer) NotFound(query string, token int) {
	logging.Trace("lookup.not-found", map[string]interface{}{"query": query, "token": token})
}

// Error records lookup failures other than not-found. The failure is also
// appended to the error log so it is visible without tracing enabled.
func (LookupTracer) Error(query string, token int, err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("lookup.error", map[string]interface{}{"query": query, "token": token, "error": err.Error()})
}

func (LookupTracer) Cancelled(query string, token int) {
	logging.Trace("lookup.cancelled", map[string]interface{}{"query": query, "token": token})
}

func (LookupTracer) Discard(query string, token, live int) {
	logging.Trace("lookup.discard", map[string]interface{}{"query": query, "token": token, "live": live})
}
