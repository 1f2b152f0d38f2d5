// SPDX-License-Identifier: MPL-2.0

// Package tui provides the terminal prompts used by lookup: a single-choice
// menu, a text input (optionally masked) and a yes/no confirmation.
//
// All prompts are huh forms. When stdin is not a terminal, or ACCESSIBLE is
// set, forms run in huh's accessible mode and write to stderr, so piped
// output stays clean.
package tui
