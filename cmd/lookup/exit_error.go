// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	// exitUser is used for failures the user can correct.
	exitUser = 1
	// exitUnexpected is used for transient or unexpected failures.
	exitUnexpected = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers. The error has already been shown to the user.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
