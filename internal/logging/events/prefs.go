package events

import "github.com/atomicstack/wordsearch/internal/logging"

type PrefsTracer struct{}

var Prefs = PrefsTracer{}

func (PrefsTracer) Loaded(path string, dark bool) {
	logging.Trace("prefs.loaded", map[string]interface{}{"path": path, "dark": dark})
}

func (PrefsTracer) Saved(path string, dark bool) {
	logging.Trace("prefs.saved", map[string]interface{}{"path": path, "dark": dark})
}

func (PrefsTracer) Error(op string, err error) {
	if err == nil {
		return
	}
	logging.Error(err)
	logging.Trace("prefs.error", map[string]interface{}{"op": op, "error": err.Error()})
}
