// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gclookup/gclookup/internal/config"
	"github.com/gclookup/gclookup/internal/genesys"
	"github.com/gclookup/gclookup/internal/install"
	"github.com/gclookup/gclookup/internal/issue"
	"github.com/gclookup/gclookup/internal/lookup"
	"github.com/gclookup/gclookup/internal/tui"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/term"
)

// describeLookupError attaches guidance to a single lookup failure.
// Aggregated per-id failures were already reported line by line and are
// returned unchanged.
func describeLookupError(err error) error {
	if err == nil {
		return nil
	}
	var ae *issue.ActionableError
	var merr *multierror.Error
	if errors.As(err, &ae) || errors.As(err, &merr) {
		return err
	}

	ec := issue.NewErrorContext().WithOperation("look up").Wrap(err)
	switch {
	case errors.Is(err, lookup.ErrInvalidID):
		var idErr *lookup.IDError
		if errors.As(err, &idErr) {
			ec.WithResource(idErr.Resource + " " + idErr.ID)
		}
		ec.WithIssue(issue.InvalidIdentifierId).
			WithSuggestion("Copy the id from the Genesys Cloud admin UI or the address bar")
	case errors.Is(err, genesys.ErrUnauthorized):
		ec.WithIssue(issue.AuthenticationFailedId).
			WithSuggestion("Check the roles granted to the OAuth client")
	case errors.Is(err, genesys.ErrNotFound):
		ec.WithIssue(issue.RecordNotFoundId)
	default:
		return err
	}
	return ec.BuildError()
}

// classifyExitCode maps an error to the process exit code. Failures the
// user can fix exit with 1; everything else exits with 2.
func classifyExitCode(err error) int {
	var merr *multierror.Error
	switch {
	case issue.IssueFor(err) != nil,
		errors.As(err, &merr),
		errors.Is(err, tui.ErrCancelled),
		errors.Is(err, config.ErrEmptySecret),
		errors.Is(err, config.ErrInvalidRegion),
		errors.Is(err, install.ErrMissingSourceFile),
		errors.Is(err, install.ErrPermissionDenied),
		errors.Is(err, os.ErrPermission):
		return exitUser
	default:
		return exitUnexpected
	}
}

// reportError prints err to w and wraps it in an ExitError. A linked issue
// guide is rendered below the message.
func reportError(w io.Writer, err error, verbose bool) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, tui.ErrCancelled):
		// The user pressed Ctrl-C; nothing more to say.
	case errors.Is(err, config.ErrEmptySecret):
		// Setup already printed the reason.
	default:
		fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		if linked := issue.IssueFor(err); linked != nil {
			if rendered, renderErr := linked.Render(glamourStyle(w)); renderErr == nil {
				fmt.Fprint(w, rendered)
			}
		}
	}

	return &ExitError{Code: classifyExitCode(err), Err: err}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// glamourStyle picks a colored style for terminals and plain text otherwise.
func glamourStyle(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "dark"
	}
	return "notty"
}
