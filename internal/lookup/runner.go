// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/gclookup/gclookup/internal/config"
	"github.com/gclookup/gclookup/internal/genesys"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
)

const (
	banner = "#######################################################"
	// unknown stands in for a missing participant purpose or name.
	unknown = "UNK"
	// noStartTime stands in for a missing conversation start time.
	noStartTime = "??"
)

// ErrInvalidID is returned for an identifier that is not a GUID.
var ErrInvalidID = errors.New("not a valid GUID")

type (
	// API is the subset of *genesys.Client used by the runner.
	API interface {
		GetUser(ctx context.Context, id string) (*genesys.User, error)
		SearchUsers(ctx context.Context, text string) ([]genesys.User, error)
		GetQueue(ctx context.Context, id string) (*genesys.Queue, error)
		SearchQueues(ctx context.Context, text string) ([]genesys.Queue, error)
		GetConversation(ctx context.Context, id string) (*genesys.Conversation, error)
	}

	// Options configures a Runner.
	Options struct {
		// Stdout receives the lookup output (default: io.Discard).
		Stdout io.Writer
		// Logger receives debug output (default: discard).
		Logger *log.Logger
		// Delay is the pause between successive by-ID lookups.
		Delay time.Duration
		// Sleep waits for d or until ctx is done (default: a timer).
		Sleep func(ctx context.Context, d time.Duration) error
	}

	// IDError records a failed by-ID lookup.
	IDError struct {
		Resource string // "user" or "queue"
		ID       string
		Err      error
	}

	// Runner executes queries.
	Runner struct {
		api    API
		stdout io.Writer
		logger *log.Logger
		delay  time.Duration
		sleep  func(ctx context.Context, d time.Duration) error
	}
)

func (e *IDError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Resource, e.ID, e.Err)
}

func (e *IDError) Unwrap() error { return e.Err }

// NewRunner creates a Runner backed by api.
func NewRunner(api API, opts Options) *Runner {
	r := &Runner{
		api:    api,
		stdout: opts.Stdout,
		logger: opts.Logger,
		delay:  opts.Delay,
		sleep:  opts.Sleep,
	}
	if r.stdout == nil {
		r.stdout = io.Discard
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if r.sleep == nil {
		r.sleep = sleepContext
	}
	return r
}

// Run executes every lookup in q in the fixed order. Failed ids are
// reported inline and returned together as a *multierror.Error once all
// lookups completed. Interaction and search failures stop the run.
func (r *Runner) Run(ctx context.Context, q Query) error {
	var failures *multierror.Error

	if q.Interaction != "" {
		if err := r.Interaction(ctx, q.Interaction); err != nil {
			return err
		}
	}
	if len(q.UserIDs) > 0 {
		if err := r.Users(ctx, q.UserIDs); err != nil {
			failures = multierror.Append(failures, err)
		}
	}
	if len(q.QueueIDs) > 0 {
		if err := r.Queues(ctx, q.QueueIDs); err != nil {
			failures = multierror.Append(failures, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return multierror.Append(failures, err)
	}
	if q.UserName != "" {
		if err := r.FindUsers(ctx, q.UserName); err != nil {
			return err
		}
	}
	if q.QueueName != "" {
		if err := r.FindQueues(ctx, q.QueueName); err != nil {
			return err
		}
	}

	if failures != nil {
		failures.ErrorFormat = formatFailures
	}
	return failures.ErrorOrNil()
}

// Users prints "name (email)" for every id, or a failure line.
func (r *Runner) Users(ctx context.Context, ids []string) error {
	fmt.Fprintln(r.stdout, "Getting User(s)")
	return r.eachID(ctx, "user", ids, func(id string) error {
		u, err := r.api.GetUser(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.stdout, "%s (%s)\n", u.Name, u.Email)
		return nil
	})
}

// Queues prints "name : id" for every id, or a failure line.
func (r *Runner) Queues(ctx context.Context, ids []string) error {
	fmt.Fprintln(r.stdout, "Getting Queue(s)")
	return r.eachID(ctx, "queue", ids, func(id string) error {
		q, err := r.api.GetQueue(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.stdout, "%s : %s\n", q.Name, id)
		return nil
	})
}

// FindUsers prints "name, email, id" for every user whose name contains text.
func (r *Runner) FindUsers(ctx context.Context, text string) error {
	fmt.Fprintln(r.stdout, "Finding User(s)")
	users, err := r.api.SearchUsers(ctx, text)
	if err != nil {
		return err
	}
	r.logger.Debug("user search", "text", text, "results", len(users))
	for _, u := range users {
		fmt.Fprintf(r.stdout, "%s, %s, %s\n", u.Name, u.Email, u.ID)
	}
	return nil
}

// FindQueues prints "name, id" for every queue whose name matches text.
func (r *Runner) FindQueues(ctx context.Context, text string) error {
	fmt.Fprintln(r.stdout, "Finding Queue(s)")
	queues, err := r.api.SearchQueues(ctx, text)
	if err != nil {
		return err
	}
	r.logger.Debug("queue search", "text", text, "results", len(queues))
	for _, q := range queues {
		fmt.Fprintf(r.stdout, "%s, %s\n", q.Name, q.ID)
	}
	return nil
}

// Interaction prints the banner, start time and participants of a
// conversation. Participant attributes are listed in key order.
func (r *Runner) Interaction(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return &IDError{Resource: "interaction", ID: id, Err: err}
	}
	conv, err := r.api.GetConversation(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(r.stdout, banner)
	fmt.Fprintf(r.stdout, "#  Interaction %s\n", id)
	fmt.Fprintln(r.stdout, banner)
	fmt.Fprintf(r.stdout, "Start Time: %s\n", orDefault(conv.StartTime, noStartTime))
	for _, p := range conv.Participants {
		fmt.Fprintf(r.stdout, "%s — %s\n", orDefault(p.Purpose, unknown), orDefault(p.Name, unknown))
		keys := make([]string, 0, len(p.Attributes))
		for k := range p.Attributes {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(r.stdout, "%s: %v\n", k, p.Attributes[k])
		}
	}
	return nil
}

// ConversationURL is the admin details page of a conversation in the web app.
func ConversationURL(region config.Region, id string) string {
	return region.AppsURL() + "/directory/#/analytics/interactions/" + id + "/admin/details"
}

// eachID runs fetch for every id, pausing r.delay between ids. A failure
// prints "Failed to fetch details for <resource> <id>" and the loop goes on.
func (r *Runner) eachID(ctx context.Context, resource string, ids []string, fetch func(id string) error) error {
	var failures *multierror.Error
	for i, id := range ids {
		if i > 0 && r.delay > 0 {
			if err := r.sleep(ctx, r.delay); err != nil {
				return multierror.Append(failures, err)
			}
		}

		err := validateID(id)
		if err == nil {
			err = fetch(id)
		}
		if err != nil {
			r.logger.Debug("lookup failed", "resource", resource, "id", id, "err", err)
			fmt.Fprintf(r.stdout, "Failed to fetch details for %s %s\n", resource, id)
			failures = multierror.Append(failures, &IDError{Resource: resource, ID: id, Err: err})
		}
	}
	return failures.ErrorOrNil()
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// formatFailures renders aggregated failures on one line per failure.
func formatFailures(errs []error) string {
	if len(errs) == 1 {
		return fmt.Sprintf("1 lookup failed: %v", errs[0])
	}
	lines := make([]string, 0, len(errs))
	for _, err := range errs {
		lines = append(lines, "  "+err.Error())
	}
	return fmt.Sprintf("%d lookups failed:\n%s", len(errs), strings.Join(lines, "\n"))
}
