// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/gclookup/gclookup/internal/config"
	"github.com/gclookup/gclookup/internal/genesys"
	"github.com/gclookup/gclookup/internal/lookup"
	"github.com/gclookup/gclookup/internal/tui"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

type (
	// App wires CLI services and shared dependencies. All Cobra handlers
	// receive an App and delegate through its interfaces.
	App struct {
		Config      config.Provider
		NewClient   ClientFactory
		Prompts     Prompts
		Clipboard   Clipboard
		Interactive func() bool
		Logger      *log.Logger
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config      config.Provider
		NewClient   ClientFactory
		Prompts     Prompts
		Clipboard   Clipboard
		Interactive func() bool
		Stderr      io.Writer
	}

	// APIClient is an authenticating Genesys Cloud client.
	APIClient interface {
		lookup.API
		Authenticate(ctx context.Context, clientID, clientSecret string) (*genesys.Token, error)
	}

	// ClientFactory builds an APIClient for the loaded configuration.
	ClientFactory func(cfg *config.Config, logger *log.Logger) APIClient

	// Prompts asks the user questions.
	Prompts interface {
		config.Prompter
		Choose(ctx context.Context, title string, options []string) (string, error)
		Input(ctx context.Context, title string) (string, error)
		Confirm(ctx context.Context, title string, def bool) (bool, error)
	}

	// Clipboard receives copied text.
	Clipboard interface {
		WriteAll(text string) error
	}

	tuiPrompts struct {
		cfg tui.Config
	}

	systemClipboard struct{}
)

// NewApp builds an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	stderr := deps.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	app := &App{
		Config:      deps.Config,
		NewClient:   deps.NewClient,
		Prompts:     deps.Prompts,
		Clipboard:   deps.Clipboard,
		Interactive: deps.Interactive,
		Logger:      log.NewWithOptions(stderr, log.Options{Prefix: "lookup"}),
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.NewClient == nil {
		app.NewClient = newGenesysClient
	}
	if app.Prompts == nil {
		app.Prompts = &tuiPrompts{cfg: tui.DefaultConfig()}
	}
	if app.Clipboard == nil {
		app.Clipboard = systemClipboard{}
	}
	if app.Interactive == nil {
		app.Interactive = tui.IsInputTerminal
	}
	return app
}

func newGenesysClient(cfg *config.Config, logger *log.Logger) APIClient {
	return genesys.NewClient(cfg.Region.String(),
		genesys.WithTimeout(cfg.HTTPTimeout),
		genesys.WithUserAgent("gclookup/"+Version),
		genesys.WithLogger(logger),
	)
}

func (p *tuiPrompts) Ask(ctx context.Context, q config.Question) (string, error) {
	return tui.NewPrompter(p.cfg).Ask(ctx, q)
}

func (p *tuiPrompts) Choose(ctx context.Context, title string, options []string) (string, error) {
	return tui.Choose(ctx, tui.ChooseOptions{Title: title, Options: options, Config: p.cfg})
}

func (p *tuiPrompts) Input(ctx context.Context, title string) (string, error) {
	return tui.NewInput().Config(p.cfg).Title(title).Run(ctx)
}

func (p *tuiPrompts) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	return tui.NewConfirm().Config(p.cfg).Title(title).Default(def).Run(ctx)
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
