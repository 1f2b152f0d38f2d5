// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gclookup/gclookup/internal/config"

	"github.com/charmbracelet/huh"
)

func TestGetHuhTheme(t *testing.T) {
	t.Parallel()

	for _, theme := range []Theme{ThemeDefault, ThemeCharm, ThemeDracula, ThemeCatppuccin, ThemeBase16, "unknown"} {
		if getHuhTheme(theme) == nil {
			t.Errorf("getHuhTheme(%q) returned nil", theme)
		}
	}
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	tests := map[string]Theme{
		"":          ThemeDefault,
		"Dracula":   ThemeDracula,
		" charm ":   ThemeCharm,
		"solarized": ThemeDefault,
	}
	for in, want := range tests {
		if got := ParseTheme(in); got != want {
			t.Errorf("ParseTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMapAbort(t *testing.T) {
	t.Parallel()

	if err := mapAbort(huh.ErrUserAborted); !errors.Is(err, ErrCancelled) {
		t.Errorf("mapAbort(ErrUserAborted) = %v, want ErrCancelled", err)
	}
	wrapped := fmt.Errorf("form: %w", huh.ErrUserAborted)
	if err := mapAbort(wrapped); !errors.Is(err, ErrCancelled) {
		t.Errorf("mapAbort(wrapped) = %v, want ErrCancelled", err)
	}
	other := errors.New("boom")
	if err := mapAbort(other); !errors.Is(err, other) {
		t.Errorf("mapAbort(other) = %v, want other", err)
	}
}

func TestDefaultConfig_AccessibleEnv(t *testing.T) {
	t.Setenv("ACCESSIBLE", "1")
	t.Setenv(ThemeEnv, "")

	cfg := DefaultConfig()
	if !cfg.Accessible {
		t.Error("ACCESSIBLE=1 should enable accessible mode")
	}
	if cfg.Output == nil {
		t.Error("output writer should be set")
	}
	if cfg.Theme != ThemeDefault {
		t.Errorf("theme = %q, want %q", cfg.Theme, ThemeDefault)
	}

	t.Setenv(ThemeEnv, "catppuccin")
	if got := DefaultConfig().Theme; got != ThemeCatppuccin {
		t.Errorf("theme from %s = %q, want %q", ThemeEnv, got, ThemeCatppuccin)
	}
}

func TestChoose_NoOptions(t *testing.T) {
	t.Parallel()

	if _, err := Choose(context.Background(), ChooseOptions{Title: "Pick"}); err == nil {
		t.Error("Choose without options should fail")
	}
}

func TestBuilders(t *testing.T) {
	t.Parallel()

	cfg := Config{Theme: ThemeCharm, Accessible: true}

	in := NewInput().Title("Search value").Placeholder("name").Password(true).Config(cfg).Options()
	if in.Title != "Search value" || in.Placeholder != "name" || !in.Password || in.Config.Theme != ThemeCharm {
		t.Errorf("unexpected input options: %+v", in)
	}

	c := NewConfirm().Title("Copy Conversation URL?").Config(cfg).Options()
	if !c.Default {
		t.Error("confirm should default to yes")
	}
	if c.Affirmative != "Yes" || c.Negative != "No" {
		t.Errorf("unexpected labels %q/%q", c.Affirmative, c.Negative)
	}
	if c.Title != "Copy Conversation URL?" || !c.Config.Accessible {
		t.Errorf("unexpected confirm options: %+v", c)
	}
	if c = NewConfirm().Default(false).Options(); c.Default {
		t.Error("Default(false) not applied")
	}
}

func TestPrompter_Ask(t *testing.T) {
	t.Parallel()

	var got []InputOptions
	p := NewPrompter(Config{Accessible: true})
	p.input = func(_ context.Context, opts InputOptions) (string, error) {
		got = append(got, opts)
		return "answer", nil
	}

	ans, err := p.Ask(context.Background(), config.Question{Key: config.KeyRegion, Title: "Enter your region", Default: "usw2.pure.cloud"})
	if err != nil || ans != "answer" {
		t.Fatalf("Ask() = %q, %v", ans, err)
	}
	if _, err := p.Ask(context.Background(), config.Question{Key: config.KeyClientSecret, Title: "Enter your CLIENT_SECRET", Secret: true}); err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(got))
	}
	if got[0].Placeholder != "usw2.pure.cloud" || got[0].Password {
		t.Errorf("region prompt = %+v", got[0])
	}
	if !got[1].Password {
		t.Error("secret prompt must be masked")
	}
	if !got[1].Config.Accessible {
		t.Error("prompter config not propagated")
	}
}
