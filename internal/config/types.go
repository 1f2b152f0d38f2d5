// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrInvalidRegion is returned when a Region value is not a host suffix.
	ErrInvalidRegion = errors.New("invalid region")
	// ErrCredentialsMissing is returned when CLIENT_ID or CLIENT_SECRET is unset.
	ErrCredentialsMissing = errors.New("credentials missing")
)

type (
	// Region is the Genesys Cloud host suffix, e.g. "usw2.pure.cloud". The
	// login, API and web app hosts are derived from it.
	Region string

	// InvalidRegionError is returned when a Region value is not usable as a
	// host suffix. It wraps ErrInvalidRegion for errors.Is() compatibility.
	InvalidRegionError struct {
		Value Region
	}

	// Config is the effective lookup configuration.
	Config struct {
		ClientID     string
		ClientSecret string
		Region       Region
		// RequestDelay is the pause between successive by-ID lookups.
		RequestDelay time.Duration
		// HTTPTimeout bounds every HTTP exchange with Genesys Cloud.
		HTTPTimeout time.Duration
	}
)

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("invalid region %q (expected a host suffix such as %q)", e.Value, DefaultRegion)
}

func (e *InvalidRegionError) Unwrap() error { return ErrInvalidRegion }

// String returns the string representation of the Region.
func (r Region) String() string { return string(r) }

// Validate rejects empty values and values carrying a scheme, path or
// whitespace.
func (r Region) Validate() error {
	s := string(r)
	if s == "" || strings.ContainsAny(s, "/: \t\n") || !strings.Contains(s, ".") {
		return &InvalidRegionError{Value: r}
	}
	return nil
}

// LoginURL is the OAuth host for the region.
func (r Region) LoginURL() string { return "https://login." + string(r) }

// APIURL is the platform API host for the region.
func (r Region) APIURL() string { return "https://api." + string(r) }

// AppsURL is the web application host for the region.
func (r Region) AppsURL() string { return "https://apps." + string(r) }

// Validate checks that both credentials are present and the region is usable.
func (c *Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.ClientID) == "" {
		missing = append(missing, KeyClientID)
	}
	if strings.TrimSpace(c.ClientSecret) == "" {
		missing = append(missing, KeyClientSecret)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s not set", ErrCredentialsMissing, strings.Join(missing, " and "))
	}
	return c.Region.Validate()
}

// MaskedSecret returns the client secret with all but the last four
// characters replaced.
func (c *Config) MaskedSecret() string {
	return mask(c.ClientSecret)
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
