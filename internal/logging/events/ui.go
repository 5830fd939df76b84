package events

import "github.com/atomicstack/wordsearch/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (UITracer) Theme(dark bool) {
	logging.Trace("ui.theme", map[string]interface{}{"dark": dark})
}

func (UITracer) Scroll(action string, offset int) {
	logging.Trace("ui.scroll", map[string]interface{}{"action": action, "offset": offset})
}

func (UITracer) Escape(quit bool) {
	logging.Trace("ui.escape", map[string]interface{}{"quit": quit})
}
