package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/popup-pick/internal/app"
	"github.com/atomicstack/popup-pick/internal/source"
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
	envSource    = "POPUP_PICK_SOURCE"
	envAction    = "POPUP_PICK_ACTION"
	envDelimiter = "POPUP_PICK_DELIMITER"
	envTitle     = "POPUP_PICK_TITLE"
	envRefresh   = "POPUP_PICK_REFRESH"
	envSocket    = "POPUP_PICK_SOCKET"
	envWidth     = "POPUP_PICK_WIDTH"
	envHeight    = "POPUP_PICK_HEIGHT"
	envFooter    = "POPUP_PICK_FOOTER"
	envTrace     = "POPUP_PICK_TRACE"
	envLogFile   = "POPUP_PICK_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-pick", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	src := fs.String("source", envOrDefault(env, envSource, source.KindStdin), "item source: stdin, args or tmux-sessions")
	action := fs.String("action", envOrDefault(env, envAction, source.ActionPrint), "what to do with the chosen item: print or tmux-switch")
	delimiter := fs.String("delimiter", envOrDefault(env, envDelimiter, ""), "split rows into aligned columns on this string; the first column is printed")
	title := fs.String("title", envOrDefault(env, envTitle, ""), "header shown above the list")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 0), "reload live sources at this interval (0 loads once)")
	socket := fs.String("socket", envOrDefault(env, envSocket, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envFooter, false), "show key help below the list")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *refresh < 0 {
		return Config{}, fmt.Errorf("refresh must be >= 0 (got %s)", *refresh)
	}

	cfg := Config{
		App: app.Config{
			Source:     *src,
			Action:     *action,
			Delimiter:  *delimiter,
			Title:      *title,
			Refresh:    *refresh,
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Items:      append([]string(nil), fs.Args()...),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"source":    *src,
			"action":    *action,
			"delimiter": *delimiter,
			"title":     *title,
			"refresh":   refresh.String(),
			"socket":    *socket,
			"width":     strconv.Itoa(*width),
			"height":    strconv.Itoa(*height),
			"footer":    strconv.FormatBool(*footer),
			"trace":     strconv.FormatBool(*trace),
			"logFile":   *logFile,
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
	parsed, err := time.ParseDuration(v)
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

// Validate rejects combinations the picker cannot run.
func Validate(cfg Config) error {
	switch cfg.App.Source {
	case source.KindStdin, source.KindTmuxSessions:
	case source.KindArgs:
		if len(cfg.App.Items) == 0 {
			return fmt.Errorf("source %q needs at least one item argument", source.KindArgs)
		}
	default:
		return fmt.Errorf("unknown source %q", cfg.App.Source)
	}
	switch cfg.App.Action {
	case source.ActionPrint, source.ActionTmuxSwitch:
	default:
		return fmt.Errorf("unknown action %q", cfg.App.Action)
	}
	if cfg.App.Refresh > 0 && cfg.App.Source != source.KindTmuxSessions {
		return fmt.Errorf("refresh only applies to %s", source.KindTmuxSessions)
	}
	return nil
}
