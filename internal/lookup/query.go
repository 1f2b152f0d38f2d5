// SPDX-License-Identifier: MPL-2.0

package lookup

import (
	"fmt"
	"slices"
	"strings"
)

const (
	KindUserID      Kind = "User by ID"
	KindUserName    Kind = "User by Name"
	KindQueueID     Kind = "Queue by ID"
	KindQueueName   Kind = "Queue by Name"
	KindInteraction Kind = "Interaction by ID"
)

type (
	// Kind is one of the interactive lookup choices.
	Kind string

	// Query is a set of lookups to run.
	Query struct {
		UserIDs     []string
		UserName    string
		QueueIDs    []string
		QueueName   string
		Interaction string
	}
)

// Kinds lists the interactive choices in menu order.
func Kinds() []Kind {
	return []Kind{KindUserID, KindUserName, KindQueueID, KindQueueName, KindInteraction}
}

// IsEmpty reports whether no lookup was requested.
func (q *Query) IsEmpty() bool {
	return len(q.UserIDs) == 0 && q.UserName == "" && len(q.QueueIDs) == 0 &&
		q.QueueName == "" && q.Interaction == ""
}

// Set fills the field selected by kind with value. ID kinds receive a
// single-element list.
func (q *Query) Set(kind Kind, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("empty search value for %q", kind)
	}
	switch kind {
	case KindUserID:
		q.UserIDs = []string{value}
	case KindUserName:
		q.UserName = value
	case KindQueueID:
		q.QueueIDs = []string{value}
	case KindQueueName:
		q.QueueName = value
	case KindInteraction:
		q.Interaction = value
	default:
		return fmt.Errorf("unknown lookup kind %q", kind)
	}
	return nil
}

// Normalize trims every value and drops empty ids.
func (q *Query) Normalize() {
	clean := func(ids []string) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if id = strings.TrimSpace(id); id != "" {
				out = append(out, id)
			}
		}
		return slices.Clip(out)
	}
	q.UserIDs = clean(q.UserIDs)
	q.QueueIDs = clean(q.QueueIDs)
	q.UserName = strings.TrimSpace(q.UserName)
	q.QueueName = strings.TrimSpace(q.QueueName)
	q.Interaction = strings.TrimSpace(q.Interaction)
}
