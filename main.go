package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/wordsearch/internal/app"
	"github.com/atomicstack/wordsearch/internal/config"
	"github.com/atomicstack/wordsearch/internal/logging"
	"github.com/atomicstack/wordsearch/internal/logging/events"
	"github.com/atomicstack/wordsearch/internal/prefs"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	// A missing .env is normal; real environment variables still win.
	_ = godotenv.Load()

	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(runtimeCfg, detectTerminal()))
	}

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the lookup session will run with.
func startupTracePayload(cfg config.Config, tty *terminalSize) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
		"lookup": map[string]interface{}{
			"word":     cfg.App.Word,
			"endpoint": cfg.App.APIURL,
			"debounce": cfg.App.Debounce.String(),
			"timeout":  cfg.App.Timeout.String(),
		},
		"layout": describeLayout(cfg.App, tty),
	}
	if store, err := prefs.NewFileStore(cfg.App.PrefsPath); err == nil {
		payload["prefs"] = store.Path()
	} else {
		payload["prefsError"] = err.Error()
	}
	return payload
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// layoutDetails reports the screen size the UI starts with. Source is
// "flags" when both dimensions are fixed, "terminal" when a detected tty
// fills the gaps, and "resize" when the first window-size message decides.
type layoutDetails struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Source   string `json:"source"`
	Terminal string `json:"terminal,omitempty"`
}

func describeLayout(cfg app.Config, tty *terminalSize) layoutDetails {
	l := layoutDetails{Width: cfg.Width, Height: cfg.Height, Source: "flags"}
	if l.Width > 0 && l.Height > 0 {
		return l
	}
	if tty == nil {
		l.Source = "resize"
		return l
	}
	if l.Width <= 0 {
		l.Width = tty.Width
	}
	if l.Height <= 0 {
		l.Height = tty.Height
	}
	l.Source = "terminal"
	l.Terminal = tty.Source
	return l
}

// detectTerminal returns the size of the first standard descriptor that is a
// terminal, preferring stdout since that is where the UI draws.
func detectTerminal() *terminalSize {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if width, height, err := term.GetSize(fd); err == nil {
			return &terminalSize{Source: f.Name(), Width: width, Height: height}
		}
	}
	return nil
}
