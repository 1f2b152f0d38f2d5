// SPDX-License-Identifier: MPL-2.0

package install

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// ShellZsh selects ~/.zshrc. It is the default.
	ShellZsh Shell = "zsh"
	// ShellBash selects ~/.bashrc.
	ShellBash Shell = "bash"
	// ShellAuto picks zsh or bash from the $SHELL path.
	ShellAuto Shell = "auto"
)

// Shell names the shell whose profile receives the PATH entry.
type Shell string

// ParseShell validates a --shell flag value. The empty string means zsh.
func ParseShell(s string) (Shell, error) {
	switch Shell(strings.ToLower(strings.TrimSpace(s))) {
	case "", ShellZsh:
		return ShellZsh, nil
	case ShellBash:
		return ShellBash, nil
	case ShellAuto:
		return ShellAuto, nil
	}
	return "", fmt.Errorf("unsupported shell %q (want zsh, bash or auto)", s)
}

// DetectShell maps a $SHELL value to zsh or bash, defaulting to zsh.
func DetectShell(shellPath string) Shell {
	if strings.Contains(filepath.Base(shellPath), "bash") {
		return ShellBash
	}
	return ShellZsh
}

// Resolve turns ShellAuto into a concrete shell using shellPath.
func (s Shell) Resolve(shellPath string) Shell {
	if s == ShellAuto {
		return DetectShell(shellPath)
	}
	if s == "" {
		return ShellZsh
	}
	return s
}

// ProfileName is the profile file name relative to the home directory.
func (s Shell) ProfileName() string {
	if s == ShellBash {
		return ".bashrc"
	}
	return ".zshrc"
}
