// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gclookup/gclookup/internal/config"
	"github.com/gclookup/gclookup/internal/issue"
	"github.com/gclookup/gclookup/internal/lookup"

	"github.com/spf13/cobra"
)

const (
	copyAsk copyMode = iota
	copyAlways
	copyNever
)

type (
	// copyMode decides what happens with the conversation URL.
	copyMode int

	lookupFlags struct {
		userIDs     []string
		userName    string
		queueIDs    []string
		queueName   string
		interaction string
		copy        bool
		noCopy      bool
	}

	// lookupParams bundles the dependencies and flags of a lookup run, so
	// runLookup can be tested without Cobra or a live API.
	lookupParams struct {
		stdout   io.Writer
		stderr   io.Writer
		app      *App
		loadOpts config.LoadOptions
		query    lookup.Query
		copy     copyMode
	}
)

func (f *lookupFlags) register(c *cobra.Command) {
	fs := c.Flags()
	fs.StringSliceVarP(&f.userIDs, "user-id", "u", nil, "user GUID(s), repeatable or comma separated")
	fs.StringVarP(&f.userName, "user-name", "n", "", "search text for users by name")
	fs.StringSliceVarP(&f.queueIDs, "queue-id", "q", nil, "queue GUID(s), repeatable or comma separated")
	fs.StringVarP(&f.queueName, "queue-name", "Q", "", "search text for queues by name")
	fs.StringVarP(&f.interaction, "interaction", "i", "", "conversation GUID to show")
	fs.BoolVar(&f.copy, "copy", false, "copy the conversation URL without asking")
	fs.BoolVar(&f.noCopy, "no-copy", false, "never copy the conversation URL")
	c.MarkFlagsMutuallyExclusive("copy", "no-copy")
}

func (f *lookupFlags) copyMode() copyMode {
	switch {
	case f.copy:
		return copyAlways
	case f.noCopy:
		return copyNever
	default:
		return copyAsk
	}
}

// runLookup is the core of the root command.
//
// Flow:
//  1. Load configuration; run setup first when no credentials exist yet.
//  2. Authenticate.
//  3. Ask what to look up when the query is empty.
//  4. Show the interaction (offering to copy its URL), then run the rest.
func runLookup(ctx context.Context, p lookupParams) error {
	logger := p.app.Logger

	cfg, err := loadCredentials(ctx, p)
	if err != nil {
		return err
	}

	client := p.app.NewClient(cfg, logger)
	if _, err := client.Authenticate(ctx, cfg.ClientID, cfg.ClientSecret); err != nil {
		return issue.NewErrorContext().
			WithOperation("authenticate").
			WithResource(cfg.Region.LoginURL()).
			WithIssue(issue.AuthenticationFailedId).
			WithSuggestion("Check CLIENT_ID, CLIENT_SECRET and GENESYS_CLOUD_REGION with 'lookup config show'").
			Wrap(err).
			BuildError()
	}
	logger.Debug("authenticated", "region", cfg.Region)

	q := p.query
	q.Normalize()
	if q.IsEmpty() {
		if q, err = promptQuery(ctx, p); err != nil {
			return err
		}
	}

	runner := lookup.NewRunner(client, lookup.Options{
		Stdout: p.stdout,
		Logger: logger,
		Delay:  cfg.RequestDelay,
	})

	if q.Interaction != "" {
		if err := runner.Interaction(ctx, q.Interaction); err != nil {
			return describeLookupError(err)
		}
		if err := offerCopy(ctx, p, lookup.ConversationURL(cfg.Region, q.Interaction)); err != nil {
			return err
		}
		q.Interaction = ""
	}

	return describeLookupError(runner.Run(ctx, q))
}

// loadCredentials loads the configuration. When the default env file does
// not exist and nothing was exported, setup runs first, as on a first start.
func loadCredentials(ctx context.Context, p lookupParams) (*config.Config, error) {
	cfg, err := p.app.Config.Load(ctx, p.loadOpts)
	if err != nil {
		return nil, err
	}
	envFile, err := p.loadOpts.EnvFile()
	if err != nil {
		return nil, err
	}

	if cfg.Validate() != nil && p.loadOpts.EnvFilePath == "" && !fileExists(envFile) && p.app.Interactive() {
		fmt.Fprintln(p.stderr, SubtitleStyle.Render("No credentials found, starting setup."))
		if err := runSetup(ctx, setupParams{
			stdout:   p.stderr,
			prompter: p.app.Prompts,
			envFile:  envFile,
		}); err != nil {
			return nil, err
		}
		if cfg, err = p.app.Config.Load(ctx, p.loadOpts); err != nil {
			return nil, err
		}
	}

	if err := config.RequireCredentials(cfg, envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}

// promptQuery asks for the lookup kind and search value.
func promptQuery(ctx context.Context, p lookupParams) (lookup.Query, error) {
	var q lookup.Query
	if !p.app.Interactive() {
		return q, issue.NewErrorContext().
			WithOperation("choose lookup").
			WithSuggestion("Pass a lookup flag, e.g. 'lookup --user-id <guid>'").
			WithSuggestion("See 'lookup --help' for all flags").
			Wrap(errors.New("no lookup requested and stdin is not a terminal")).
			BuildError()
	}

	kinds := lookup.Kinds()
	options := make([]string, len(kinds))
	for i, k := range kinds {
		options[i] = string(k)
	}

	choice, err := p.app.Prompts.Choose(ctx, "What kind of lookup would you like?", options)
	if err != nil {
		return q, err
	}
	value, err := p.app.Prompts.Input(ctx, "Search value")
	if err != nil {
		return q, err
	}
	if err := q.Set(lookup.Kind(choice), value); err != nil {
		return q, err
	}
	return q, nil
}

// offerCopy copies the conversation URL according to p.copy. Without a
// terminal to ask on, the URL is printed instead.
func offerCopy(ctx context.Context, p lookupParams, url string) error {
	switch p.copy {
	case copyNever:
		return nil
	case copyAsk:
		if !p.app.Interactive() {
			fmt.Fprintln(p.stdout, url)
			return nil
		}
		ok, err := p.app.Prompts.Confirm(ctx, "Copy Conversation URL?", true)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := p.app.Clipboard.WriteAll(url); err != nil {
		p.app.Logger.Debug("clipboard write failed", "err", err)
		fmt.Fprintln(p.stderr, WarningStyle.Render("Could not copy to clipboard: "+err.Error()))
		fmt.Fprintln(p.stdout, url)
		return nil
	}
	fmt.Fprintln(p.stderr, SubtitleStyle.Render("Conversation URL copied to clipboard."))
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
