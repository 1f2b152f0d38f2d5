// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"

	"github.com/charmbracelet/huh"
)

type (
	// ConfirmOptions configures the Confirm component.
	ConfirmOptions struct {
		// Title is the question to display.
		Title string
		// Affirmative is the text for the affirmative option (default: "Yes").
		Affirmative string
		// Negative is the text for the negative option (default: "No").
		Negative string
		// Default is the preselected answer.
		Default bool
		// Config holds common TUI configuration.
		Config Config
	}

	// ConfirmBuilder provides a fluent API for building Confirm prompts.
	ConfirmBuilder struct {
		opts ConfirmOptions
	}
)

// Confirm prompts the user to confirm an action (yes/no).
// Returns true for affirmative, false for negative, or ErrCancelled.
func Confirm(ctx context.Context, opts ConfirmOptions) (bool, error) {
	result := opts.Default
	c := huh.NewConfirm().
		Title(opts.Title).
		Affirmative(orDefault(opts.Affirmative, "Yes")).
		Negative(orDefault(opts.Negative, "No")).
		Value(&result)

	if err := newForm(opts.Config, c).RunWithContext(ctx); err != nil {
		return false, mapAbort(err)
	}
	return result, nil
}

// NewConfirm creates a new ConfirmBuilder with default options.
func NewConfirm() *ConfirmBuilder {
	return &ConfirmBuilder{
		opts: ConfirmOptions{
			Affirmative: "Yes",
			Negative:    "No",
			Default:     true,
			Config:      DefaultConfig(),
		},
	}
}

// Title sets the title/question of the confirm prompt.
func (b *ConfirmBuilder) Title(title string) *ConfirmBuilder {
	b.opts.Title = title
	return b
}

// Default sets the default value.
func (b *ConfirmBuilder) Default(value bool) *ConfirmBuilder {
	b.opts.Default = value
	return b
}

// Config replaces the common TUI configuration.
func (b *ConfirmBuilder) Config(cfg Config) *ConfirmBuilder {
	b.opts.Config = cfg
	return b
}

// Options returns the options built so far.
func (b *ConfirmBuilder) Options() ConfirmOptions {
	return b.opts
}

// Run executes the confirm prompt and returns the result.
func (b *ConfirmBuilder) Run(ctx context.Context) (bool, error) {
	return Confirm(ctx, b.opts)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
