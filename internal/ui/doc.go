// Package ui contains the Bubble Tea program for the dictionary lookup screen.
// Model focuses on message orchestration while dedicated helpers own input,
// rendering and layout.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Debounce ticks and lookup completions belong to the search.Controller
//     and are offered to it first. Everything else is routed through a typed
//     handler registry (key presses, window resizes, spinner ticks).
//   - Key handling (internal/ui/input.go) resolves bindings first; all other
//     keys edit the text field, and any change in its value is reported to
//     the controller, which debounces it into a committed query.
//
// State ownership:
//   - Query, pending input, the live request token and the result state are
//     owned by search.Controller. The UI only reads them.
//   - The results pane is a viewport whose content is re-rendered whenever the
//     result state, theme or width changes (internal/ui/render.go).
//   - The dark/light preference is loaded once at start and saved through a
//     prefs.Store on every toggle.
package ui
