// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
)

// ChooseOptions configures the Choose component.
type ChooseOptions struct {
	// Title is the prompt displayed above the options.
	Title string
	// Options is the list of choices, in display order.
	Options []string
	// Height limits the number of visible options (0 for auto).
	Height int
	// Config holds common TUI configuration.
	Config Config
}

// Choose prompts the user to pick one of opts.Options and returns it.
func Choose(ctx context.Context, opts ChooseOptions) (string, error) {
	if len(opts.Options) == 0 {
		return "", errors.New("no options to choose from")
	}

	result := opts.Options[0]
	sel := huh.NewSelect[string]().
		Title(opts.Title).
		Options(huh.NewOptions(opts.Options...)...).
		Value(&result)
	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	if err := newForm(opts.Config, sel).RunWithContext(ctx); err != nil {
		return "", mapAbort(err)
	}
	return result, nil
}
