package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/wordsearch/internal/app"
	"github.com/atomicstack/wordsearch/internal/dictionary"
	"github.com/atomicstack/wordsearch/internal/search"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWord     = "WORDSEARCH_WORD"
	envAPIURL   = "WORDSEARCH_API_URL"
	envDebounce = "WORDSEARCH_DEBOUNCE"
	envTimeout  = "WORDSEARCH_TIMEOUT"
	envPrefs    = "WORDSEARCH_PREFS"
	envWidth    = "WORDSEARCH_WIDTH"
	envHeight   = "WORDSEARCH_HEIGHT"
	envFooter   = "WORDSEARCH_FOOTER"
	envTrace    = "WORDSEARCH_TRACE"
	envLogFile  = "WORDSEARCH_LOG_FILE"
)

const (
	maxDebounce = 5 * time.Second
	maxTimeout  = 2 * time.Minute
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("wordsearch", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	word := fs.String("word", envOrDefault(env, envWord, ""), "word to look up at start")
	apiURL := fs.String("api-url", envOrDefault(env, envAPIURL, dictionary.DefaultBaseURL), "dictionary endpoint; the word is appended as a path segment")
	debounce := fs.Duration("debounce", envOrDuration(env, envDebounce, search.DefaultDelay), "pause in typing before a lookup is issued")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, dictionary.DefaultTimeout), "per-lookup timeout")
	prefsPath := fs.String("prefs", envOrDefault(env, envPrefs, ""), "preferences file (defaults to the user config dir)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, true), "show the key help row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *word == "" && fs.NArg() > 0 {
		*word = strings.Join(fs.Args(), " ")
	}

	cfg := Config{
		App: app.Config{
			Word:       strings.TrimSpace(*word),
			APIURL:     strings.TrimSpace(*apiURL),
			Debounce:   *debounce,
			Timeout:    *timeout,
			PrefsPath:  *prefsPath,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"word":     *word,
			"api-url":  *apiURL,
			"debounce": debounce.String(),
			"timeout":  timeout.String(),
			"prefs":    *prefsPath,
			"width":    strconv.Itoa(*width),
			"height":   strconv.Itoa(*height),
			"footer":   strconv.FormatBool(*footer),
			"trace":    strconv.FormatBool(*trace),
			"logFile":  *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks ranges and the endpoint URL.
func Validate(cfg Config) error {
	a := cfg.App
	return validation.ValidateStruct(&a,
		validation.Field(&a.APIURL, validation.Required, is.RequestURL),
		validation.Field(&a.Debounce, validation.Min(time.Duration(0)), validation.Max(maxDebounce)),
		validation.Field(&a.Timeout, validation.Required, validation.Min(time.Duration(1)), validation.Max(maxTimeout)),
		validation.Field(&a.Width, validation.Min(0)),
		validation.Field(&a.Height, validation.Min(0)),
	)
}
