package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/wordsearch/internal/dictionary"
	"github.com/atomicstack/wordsearch/internal/logging/events"
	"github.com/atomicstack/wordsearch/internal/prefs"
	"github.com/atomicstack/wordsearch/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Word       string
	APIURL     string
	Debounce   time.Duration
	Timeout    time.Duration
	PrefsPath  string
	Width      int
	Height     int
	ShowFooter bool
}

// NewModel builds the UI model for cfg without starting a program.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, error) {
	store, err := prefs.NewFileStore(cfg.PrefsPath)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	client := dictionary.NewClient(
		dictionary.WithBaseURL(cfg.APIURL),
		dictionary.WithTimeout(cfg.Timeout),
	)
	events.App.Ready(client.BaseURL(), store.Path(), cfg.Debounce, cfg.Timeout)
	return ui.NewModel(ui.Options{
		Lookup:      client,
		Prefs:       store,
		Context:     ctx,
		Delay:       cfg.Debounce,
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		InitialWord: cfg.Word,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program. Outstanding lookups are
// cancelled when it returns.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
