// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown guides
// for the failures users of lookup run into most: missing credentials,
// rejected authentication, a missing install artifact and permission problems.
package issue
