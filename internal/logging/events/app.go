package events

import (
	"time"

	"github.com/atomicstack/wordsearch/internal/logging"
)

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

// Ready records the endpoint and preference file after defaults are applied.
func (AppTracer) Ready(endpoint, prefsPath string, debounce, timeout time.Duration) {
	logging.Trace("app.ready", map[string]interface{}{
		"endpoint": endpoint,
		"prefs":    prefsPath,
		"debounce": debounce.String(),
		"timeout":  timeout.String(),
	})
}

func (AppTracer) Exit(err error) {
	payload := map[string]interface{}{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}
