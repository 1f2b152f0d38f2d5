// SPDX-License-Identifier: MPL-2.0

// Package install puts the lookup binary on the user's PATH.
//
// An Installer runs four steps, each safe to repeat:
//   - EnsureBinDir creates ~/bin when it is missing
//   - InstallArtifact copies ./lookup over ~/bin/lookup
//   - RegisterPath appends the PATH export line to the shell profile once
//   - Notify tells the user to reload the profile
//
// A failure stops the run and leaves completed steps in place; running the
// Installer again resumes where it stopped.
package install
