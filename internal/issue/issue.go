// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Id identifies a catalog entry.
type Id int

const (
	MissingSourceFileId Id = iota + 1
	PermissionDeniedId
	CredentialsMissingId
	AuthenticationFailedId
	ConfigLoadFailedId
	RecordNotFoundId
	InvalidIdentifierId
)

type (
	// MarkdownMsg is the Markdown body of a guide.
	MarkdownMsg string

	// HttpLink is a documentation URL appended to a guide.
	HttpLink string

	// Issue is a Markdown guide shown after an error the user can fix.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns a copy of the guide's documentation links.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the guide with the given glamour style ("dark", "light",
// "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	missingSourceFileIssue = &Issue{
		id: MissingSourceFileId,
		mdMsg: `
# No lookup binary to install!

The installer copies a file named ` + "`lookup`" + ` from the current directory
into ` + "`~/bin`" + `, and that file is not there.

## Things you can try:
- Change into the directory that holds the built binary and re-run:
~~~
$ cd path/to/release
$ ./lookup install
~~~

- Or point the installer at the binary explicitly:
~~~
$ lookup install --source ./dist/lookup
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

The installer could not create ` + "`~/bin`" + `, write ` + "`~/bin/lookup`" + `
or append to your shell profile.

## Common causes:
- ` + "`~/bin`" + ` or the profile is owned by another user (for example after a ` + "`sudo`" + ` run)
- The home directory is mounted read-only

## Things you can try:
- Check ownership:
~~~
$ ls -ld ~/bin ~/.zshrc
~~~

- Fix it and re-run the installer; every step is safe to repeat.`,
	}

	credentialsMissingIssue = &Issue{
		id: CredentialsMissingId,
		mdMsg: `
# Genesys Cloud credentials are not configured!

lookup authenticates with an OAuth **Client Credentials** grant and needs a
client id and secret.

## Things you can try:
- Run the interactive setup:
~~~
$ lookup setup
~~~

- Or export the variables for one session:
~~~
$ export CLIENT_ID=...
$ export CLIENT_SECRET=...
$ export GENESYS_CLOUD_REGION=usw2.pure.cloud
~~~`,
		docLinks: []HttpLink{"https://developer.genesys.cloud/authorization/platform-auth/use-client-credentials"},
	}

	authenticationFailedIssue = &Issue{
		id: AuthenticationFailedId,
		mdMsg: `
# Authentication with Genesys Cloud failed!

The login service rejected the client credentials.

## Common causes:
- The client id or secret was mistyped during setup
- The OAuth client was deleted or its grant type is not **Client Credentials**
- The region does not match the organization (for example ` + "`mypurecloud.com`" + ` vs ` + "`usw2.pure.cloud`" + `)

## Things you can try:
~~~
$ lookup config show
$ lookup setup --force
~~~`,
		docLinks: []HttpLink{"https://developer.genesys.cloud/platform/api/"},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The credentials file could not be read or parsed.

## Things you can try:
- Show where lookup looks for it:
~~~
$ lookup config path
~~~

- Each line must be ` + "`KEY=value`" + `, for example:
~~~
CLIENT_ID=0b6f...
CLIENT_SECRET=...
GENESYS_CLOUD_REGION=usw2.pure.cloud
~~~`,
	}

	recordNotFoundIssue = &Issue{
		id: RecordNotFoundId,
		mdMsg: `
# Record not found!

Genesys Cloud has no record with that id, or the OAuth client's role cannot
see it.

## Things you can try:
- Search by name instead:
~~~
$ lookup --user-name "Jane"
$ lookup --queue-name "Support"
~~~

- Check the roles granted to the OAuth client`,
	}

	invalidIdentifierIssue = &Issue{
		id: InvalidIdentifierId,
		mdMsg: `
# Invalid identifier!

Users, queues and conversations are identified by GUIDs such as
` + "`3f2c1e9a-7b1d-4c8e-9f00-2a6b5c4d3e21`" + `.

## Things you can try:
- Copy the id again from the admin UI or the interaction URL
- Search by name when you do not have the id`,
	}

	issues = map[Id]*Issue{
		missingSourceFileIssue.Id():    missingSourceFileIssue,
		permissionDeniedIssue.Id():     permissionDeniedIssue,
		credentialsMissingIssue.Id():   credentialsMissingIssue,
		authenticationFailedIssue.Id(): authenticationFailedIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		recordNotFoundIssue.Id():       recordNotFoundIssue,
		invalidIdentifierIssue.Id():    invalidIdentifierIssue,
	}
)

// Values returns every guide ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

// Get returns the guide for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
