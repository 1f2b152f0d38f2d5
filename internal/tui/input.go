// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"

	"github.com/charmbracelet/huh"
)

type (
	// InputOptions configures the Input component.
	InputOptions struct {
		// Title is the prompt displayed above the input.
		Title string
		// Placeholder is shown while the input is empty.
		Placeholder string
		// Value is the initial value of the input.
		Value string
		// CharLimit limits the number of characters (0 for no limit).
		CharLimit int
		// Password hides the input characters.
		Password bool
		// Config holds common TUI configuration.
		Config Config
	}

	// InputBuilder provides a fluent API for building Input prompts.
	InputBuilder struct {
		opts InputOptions
	}
)

// Input prompts for a line of text.
func Input(ctx context.Context, opts InputOptions) (string, error) {
	result := opts.Value
	in := huh.NewInput().
		Title(opts.Title).
		Placeholder(opts.Placeholder).
		Value(&result)
	if opts.CharLimit > 0 {
		in = in.CharLimit(opts.CharLimit)
	}
	if opts.Password {
		in = in.EchoMode(huh.EchoModePassword)
	}

	if err := newForm(opts.Config, in).RunWithContext(ctx); err != nil {
		return "", mapAbort(err)
	}
	return result, nil
}

// NewInput creates a new InputBuilder with default options.
func NewInput() *InputBuilder {
	return &InputBuilder{opts: InputOptions{Config: DefaultConfig()}}
}

// Title sets the prompt.
func (b *InputBuilder) Title(title string) *InputBuilder {
	b.opts.Title = title
	return b
}

// Placeholder sets the placeholder text.
func (b *InputBuilder) Placeholder(placeholder string) *InputBuilder {
	b.opts.Placeholder = placeholder
	return b
}

// Password masks the typed characters.
func (b *InputBuilder) Password(password bool) *InputBuilder {
	b.opts.Password = password
	return b
}

// Config replaces the common TUI configuration.
func (b *InputBuilder) Config(cfg Config) *InputBuilder {
	b.opts.Config = cfg
	return b
}

// Options returns the options built so far.
func (b *InputBuilder) Options() InputOptions {
	return b.opts
}

// Run executes the input prompt and returns the result.
func (b *InputBuilder) Run(ctx context.Context) (string, error) {
	return Input(ctx, b.opts)
}
