// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// EnvFilePath forces loading from a specific env file when set. The
	// file must exist.
	EnvFilePath string
	// DirPath overrides the ~/.gclookup lookup when set.
	DirPath string
}

// EnvFile resolves the env file path these options point at.
func (o LoadOptions) EnvFile() (string, error) {
	if o.EnvFilePath != "" {
		return homedir.Expand(o.EnvFilePath)
	}
	dir := o.DirPath
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return filepath.Join(dir, EnvFileName), nil
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
