// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Styles for the chrome around lookup output. Lookup results themselves are
// printed unstyled so they can be piped.
var (
	accent = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FF6A3D"}
	muted  = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A8A29E"}

	TitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	SubtitleStyle = lipgloss.NewStyle().Foreground(muted)
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DC2626"))
	WarningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706"))
	KeyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB"))
)
