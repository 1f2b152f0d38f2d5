// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Theme names a huh theme.
type Theme string

const (
	ThemeDefault    Theme = "default"
	ThemeCharm      Theme = "charm"
	ThemeDracula    Theme = "dracula"
	ThemeCatppuccin Theme = "catppuccin"
	ThemeBase16     Theme = "base16"
)

// ThemeEnv selects the prompt theme.
const ThemeEnv = "LOOKUP_THEME"

var themes = map[Theme]func() *huh.Theme{
	ThemeDefault:    huh.ThemeBase,
	ThemeCharm:      huh.ThemeCharm,
	ThemeDracula:    huh.ThemeDracula,
	ThemeCatppuccin: huh.ThemeCatppuccin,
	ThemeBase16:     huh.ThemeBase16,
}

// ErrCancelled is returned when the user aborts a prompt (Ctrl-C or Esc).
var ErrCancelled = errors.New("user aborted")

// Config holds common configuration for TUI components.
type Config struct {
	// Theme specifies the visual theme to use.
	Theme Theme
	// Accessible enables huh's line-based accessible mode.
	Accessible bool
	// Input is where answers are read from (default: stdin).
	Input io.Reader
	// Output is where prompts are drawn (default: stdout, or stderr in
	// accessible mode).
	Output io.Writer
}

// DefaultConfig returns the configuration for the current process.
// Accessible mode is on when stdin is not a terminal or ACCESSIBLE is set,
// and prompts then go to stderr. The theme comes from LOOKUP_THEME.
func DefaultConfig() Config {
	cfg := Config{
		Theme:      ParseTheme(os.Getenv(ThemeEnv)),
		Accessible: !IsInputTerminal() || os.Getenv("ACCESSIBLE") != "",
		Output:     os.Stdout,
	}
	if cfg.Accessible {
		cfg.Output = os.Stderr
	}
	return cfg
}

// ParseTheme maps a theme name to a Theme. Unknown names and the empty
// string give ThemeDefault.
func ParseTheme(name string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := themes[t]; ok {
		return t
	}
	return ThemeDefault
}

// IsInputTerminal returns true if stdin is connected to a terminal.
func IsInputTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func getHuhTheme(t Theme) *huh.Theme {
	if mk, ok := themes[t]; ok {
		return mk()
	}
	return huh.ThemeBase()
}

// newForm wraps field in a single-group form configured from cfg.
func newForm(cfg Config, field huh.Field) *huh.Form {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(getHuhTheme(cfg.Theme)).
		WithAccessible(cfg.Accessible).
		WithShowHelp(!cfg.Accessible)
	if cfg.Input != nil {
		form = form.WithInput(cfg.Input)
	}
	if cfg.Output != nil {
		form = form.WithOutput(cfg.Output)
	}
	return form
}

// mapAbort turns huh's abort error into ErrCancelled.
func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
