// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for lookup.
//
// The root command runs Genesys Cloud lookups (users, queues, interactions).
// Subcommands install the binary into ~/bin, store credentials and show the
// effective configuration. Every command keeps its core logic in a run*
// function taking a params struct, so it can be tested without Cobra.
package cmd
