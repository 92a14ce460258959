package config

import (
	"testing"
	"time"

	"github.com/atomicstack/popup-pick/internal/source"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Source != source.KindStdin {
		t.Fatalf("expected stdin source, got %q", cfg.App.Source)
	}
	if cfg.App.Action != source.ActionPrint {
		t.Fatalf("expected print action, got %q", cfg.App.Action)
	}
	if cfg.App.Refresh != 0 || cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"POPUP_PICK_SOURCE=tmux-sessions",
		"POPUP_PICK_REFRESH=2s",
		"POPUP_PICK_WIDTH=40",
		"POPUP_PICK_TRACE=true",
		"garbage",
	}
	cfg, err := LoadArgs([]string{"-width", "60", "-footer", "-action", "tmux-switch"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Source != source.KindTmuxSessions {
		t.Fatalf("expected env source, got %q", cfg.App.Source)
	}
	if cfg.App.Refresh != 2*time.Second {
		t.Fatalf("expected 2s refresh, got %s", cfg.App.Refresh)
	}
	if cfg.App.Width != 60 {
		t.Fatalf("expected flag width 60, got %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace enabled")
	}
	if cfg.Flags["width"] != "60" || cfg.Flags["refresh"] != "2s" {
		t.Fatalf("unexpected flags map %#v", cfg.Flags)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoadArgsCollectsPositionalItems(t *testing.T) {
	cfg, err := LoadArgs([]string{"-source", "args", "one", "two"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.App.Items) != 2 || cfg.App.Items[1] != "two" {
		t.Fatalf("expected positional items, got %#v", cfg.App.Items)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	if _, err := LoadArgs([]string{"-height", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-refresh", "-1s"}, nil); err == nil {
		t.Fatalf("expected error for negative refresh")
	}
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestInvalidEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"POPUP_PICK_HEIGHT=tall", "POPUP_PICK_REFRESH=soon", "POPUP_PICK_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.Refresh != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got %#v", cfg.App)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string][]string{
		"unknown source":   {"-source", "files"},
		"unknown action":   {"-action", "open"},
		"args without any": {"-source", "args"},
		"refresh on stdin": {"-refresh", "1s"},
	}
	for name, args := range cases {
		cfg, err := LoadArgs(args, nil)
		if err != nil {
			t.Fatalf("%s: unexpected load error: %v", name, err)
		}
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}
