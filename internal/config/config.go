// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gclookup/gclookup/internal/issue"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// AppDirName is the configuration directory under $HOME.
	AppDirName = ".gclookup"
	// EnvFileName is the dotenv file inside AppDirName.
	EnvFileName = ".env"

	KeyClientID     = "CLIENT_ID"
	KeyClientSecret = "CLIENT_SECRET"
	KeyRegion       = "GENESYS_CLOUD_REGION"
	KeyRequestDelay = "LOOKUP_REQUEST_DELAY"
	KeyHTTPTimeout  = "LOOKUP_HTTP_TIMEOUT"

	// DefaultRegion is used when GENESYS_CLOUD_REGION is unset.
	DefaultRegion Region = "usw2.pure.cloud"
	// DefaultRequestDelay is the pause between by-ID lookups.
	DefaultRequestDelay = 250 * time.Millisecond
	// DefaultHTTPTimeout bounds each HTTP exchange.
	DefaultHTTPTimeout = 30 * time.Second

	dirPerm  os.FileMode = 0o700
	filePerm os.FileMode = 0o600
)

// Dir returns ~/.gclookup.
func Dir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, AppDirName), nil
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		Region:       DefaultRegion,
		RequestDelay: DefaultRequestDelay,
		HTTPTimeout:  DefaultHTTPTimeout,
	}
}

// loadWithOptions reads the env file (when present) and the process
// environment into a Config. A missing env file is not an error; credentials
// may come from the environment alone.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	path, err := opts.EnvFile()
	if err != nil {
		return nil, "", err
	}

	v := viper.New()
	v.SetConfigType("env")

	defaults := DefaultConfig()
	v.SetDefault(KeyRegion, defaults.Region.String())
	v.SetDefault(KeyRequestDelay, defaults.RequestDelay.String())
	v.SetDefault(KeyHTTPTimeout, defaults.HTTPTimeout.String())
	for _, key := range []string{KeyClientID, KeyClientSecret, KeyRegion, KeyRequestDelay, KeyHTTPTimeout} {
		if err := v.BindEnv(key); err != nil {
			return nil, "", fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if fileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that every line has the form KEY=value").
				WithSuggestion("Re-create the file with 'lookup setup --force'").
				Wrap(err).
				BuildError()
		}
	} else if opts.EnvFilePath != "" {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(path).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Omit --config to use " + filepath.Join("~", AppDirName, EnvFileName)).
			Wrap(fmt.Errorf("config file not found: %s", path)).
			BuildError()
	}

	cfg := &Config{
		ClientID:     strings.TrimSpace(v.GetString(KeyClientID)),
		ClientSecret: strings.TrimSpace(v.GetString(KeyClientSecret)),
		Region:       Region(strings.TrimSpace(v.GetString(KeyRegion))),
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.RequestDelay, err = parseDuration(v, KeyRequestDelay); err != nil {
		return nil, "", durationError(path, err)
	}
	if cfg.HTTPTimeout, err = parseDuration(v, KeyHTTPTimeout); err != nil {
		return nil, "", durationError(path, err)
	}

	return cfg, path, nil
}

// RequireCredentials validates cfg for use against the API and turns a
// failure into an actionable error pointing at envFile.
func RequireCredentials(cfg *Config, envFile string) error {
	err := cfg.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrCredentialsMissing):
		return issue.NewErrorContext().
			WithOperation("load credentials").
			WithResource(envFile).
			WithIssue(issue.CredentialsMissingId).
			WithSuggestion("Run 'lookup setup' to store CLIENT_ID and CLIENT_SECRET").
			WithSuggestion("Or export CLIENT_ID and CLIENT_SECRET in your shell").
			Wrap(err).
			BuildError()
	default:
		return issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(envFile).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Set GENESYS_CLOUD_REGION to a host suffix such as " + DefaultRegion.String()).
			Wrap(err).
			BuildError()
	}
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %s", key, raw)
	}
	return d, nil
}

func durationError(path string, err error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithIssue(issue.ConfigLoadFailedId).
		WithSuggestion("Durations use Go syntax, e.g. 250ms or 30s").
		Wrap(err).
		BuildError()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
