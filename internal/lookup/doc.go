// SPDX-License-Identifier: MPL-2.0

// Package lookup runs user, queue and interaction lookups against Genesys
// Cloud and prints the results in a fixed plain-text format.
//
// A Query may combine several lookups. They always run in the same order:
// interaction, user ids, queue ids, user name search, queue name search.
// A failed id is reported inline and the run continues; the failures are
// returned together at the end.
package lookup
