// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"context"

	"github.com/gclookup/gclookup/internal/config"
)

// Prompter answers setup questions with Input prompts.
type Prompter struct {
	Config Config

	// input runs the prompt; tests replace it.
	input func(ctx context.Context, opts InputOptions) (string, error)
}

var _ config.Prompter = (*Prompter)(nil)

// NewPrompter returns a Prompter using cfg.
func NewPrompter(cfg Config) *Prompter {
	return &Prompter{Config: cfg, input: Input}
}

// Ask implements config.Prompter. Secret questions are masked and the
// default, if any, is shown as the placeholder.
func (p *Prompter) Ask(ctx context.Context, q config.Question) (string, error) {
	return p.input(ctx, InputOptions{
		Title:       q.Title,
		Placeholder: q.Default,
		Password:    q.Secret,
		Config:      p.Config,
	})
}
