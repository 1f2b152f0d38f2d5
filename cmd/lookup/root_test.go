// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(testApp(&staticConfig{cfg: validConfig()}, &fakeClient{}, &fakePrompts{}, &fakeClipboard{}, false))

	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"install", "setup", "config", "completion"})
}

func TestRootCommand_LookupFlags(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	root := NewRootCommand(testApp(&staticConfig{cfg: validConfig()}, client, &fakePrompts{}, &fakeClipboard{}, false))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"-u", adaID, "-q", "22222222-2222-4222-8222-222222222222", "-n", "ada", "-Q", "supp"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, []string{
		"auth:id",
		"user:" + adaID,
		"queue:22222222-2222-4222-8222-222222222222",
		"find-users:ada",
		"find-queues:supp",
	}, client.calls)
	assert.Equal(t, "Getting User(s)\n"+
		"Ada Lovelace (ada@example.com)\n"+
		"Getting Queue(s)\n"+
		"Support : 22222222-2222-4222-8222-222222222222\n"+
		"Finding User(s)\n"+
		"Ada Lovelace, ada@example.com, "+adaID+"\n"+
		"Finding Queue(s)\n"+
		"Support EMEA, q1\n", out.String())
}

func TestRootCommand_RepeatedUserIDs(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	root := NewRootCommand(testApp(&staticConfig{cfg: validConfig()}, client, &fakePrompts{}, &fakeClipboard{}, false))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	other := "33333333-3333-4333-8333-333333333333"
	root.SetArgs([]string{"-u", adaID + "," + other, "--user-id", adaID})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"auth:id", "user:" + adaID, "user:" + other, "user:" + adaID}, client.calls)
}

func TestRootCommand_CopyFlagsExclusive(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	root := NewRootCommand(testApp(&staticConfig{cfg: validConfig()}, client, &fakePrompts{}, &fakeClipboard{}, false))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"-i", convID, "--copy", "--no-copy"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
	assert.Empty(t, client.calls)
}

func TestRootCommand_VerboseSetsDebug(t *testing.T) {
	t.Parallel()

	app := testApp(&staticConfig{cfg: validConfig()}, &fakeClient{}, &fakePrompts{}, &fakeClipboard{}, false)
	root := NewRootCommand(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--verbose", "-u", adaID})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, log.DebugLevel, app.Logger.GetLevel())
}

func TestGetVersionString(t *testing.T) {
	assert.Equal(t, "dev (built from source)", getVersionString())
}

func TestCompletionCommand(t *testing.T) {
	t.Parallel()

	for shell := range completionGenerators {
		t.Run(shell, func(t *testing.T) {
			t.Parallel()

			root := NewRootCommand(testApp(&staticConfig{cfg: validConfig()}, &fakeClient{}, &fakePrompts{}, &fakeClipboard{}, false))
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})

			require.NoError(t, root.ExecuteContext(context.Background()))
			assert.Contains(t, out.String(), "lookup")
		})
	}

	root := NewRootCommand(testApp(&staticConfig{cfg: validConfig()}, &fakeClient{}, &fakePrompts{}, &fakeClipboard{}, false))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, root.ExecuteContext(context.Background()))
}
