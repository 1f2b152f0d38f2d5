// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/subosito/gotenv"
)

// ErrEmptySecret is returned by Setup when no client secret was entered.
var ErrEmptySecret = errors.New("CLIENT_SECRET cannot be empty.") //nolint:staticcheck // shown verbatim to the user

type (
	// Question is a single setup prompt.
	Question struct {
		Key     string
		Title   string
		Default string
		Secret  bool
	}

	// Prompter asks the user a question and returns the raw answer.
	Prompter interface {
		Ask(ctx context.Context, q Question) (string, error)
	}

	// SetupOptions configures Setup.
	SetupOptions struct {
		// EnvFilePath is the file to write.
		EnvFilePath string
		// Force re-prompts even when the file exists.
		Force    bool
		Prompter Prompter
		Stdout   io.Writer
	}
)

// Setup prompts for region, client id and client secret and writes them to
// the env file. An existing file is left alone unless Force is set; in that
// case Setup reports false. An empty secret prints a message, writes
// nothing and returns ErrEmptySecret.
func Setup(ctx context.Context, opts SetupOptions) (bool, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	if !opts.Force && fileExists(opts.EnvFilePath) {
		return false, nil
	}

	region, err := opts.Prompter.Ask(ctx, Question{
		Key:     KeyRegion,
		Title:   fmt.Sprintf("Enter your region [%s]", DefaultRegion),
		Default: DefaultRegion.String(),
	})
	if err != nil {
		return false, err
	}
	region = strings.TrimSpace(region)
	if region == "" {
		region = DefaultRegion.String()
	}
	if err := Region(region).Validate(); err != nil {
		return false, err
	}

	clientID, err := opts.Prompter.Ask(ctx, Question{Key: KeyClientID, Title: "Enter your CLIENT_ID"})
	if err != nil {
		return false, err
	}

	secret, err := opts.Prompter.Ask(ctx, Question{Key: KeyClientSecret, Title: "Enter your CLIENT_SECRET", Secret: true})
	if err != nil {
		return false, err
	}
	secret = strings.TrimSpace(secret)
	if secret == "" {
		fmt.Fprintln(stdout, ErrEmptySecret.Error())
		return false, ErrEmptySecret
	}

	cfg := &Config{ClientID: strings.TrimSpace(clientID), ClientSecret: secret, Region: Region(region)}
	if err := WriteEnvFile(opts.EnvFilePath, cfg); err != nil {
		return false, err
	}
	return true, nil
}

// WriteEnvFile stores the credentials of cfg in path with mode 0600,
// creating the parent directory with mode 0700 when needed.
func WriteEnvFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if filepath.Base(dir) == AppDirName {
		if err := os.Chmod(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to restrict config directory: %w", err)
		}
	}

	body, err := gotenv.Marshal(gotenv.Env{
		KeyClientID:     cfg.ClientID,
		KeyClientSecret: cfg.ClientSecret,
		KeyRegion:       cfg.Region.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.WriteFile(path, []byte(body+"\n"), filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(path, filePerm); err != nil {
		return fmt.Errorf("failed to restrict config file: %w", err)
	}
	return nil
}
