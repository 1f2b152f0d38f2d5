// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gclookup/gclookup/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_MasksSecret(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.ClientSecret = "supersecretvalue"
	opts := config.LoadOptions{DirPath: t.TempDir()}

	var out bytes.Buffer
	require.NoError(t, showConfig(context.Background(), &out, &staticConfig{cfg: cfg}, opts))

	got := out.String()
	assert.Contains(t, got, "Current Configuration")
	assert.Contains(t, got, "************alue")
	assert.NotContains(t, got, "supersecretvalue")
	assert.Contains(t, got, config.DefaultRegion.String())
	assert.Contains(t, got, "(not found)")
}

func TestShowConfig_UnsetValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFileName), []byte("CLIENT_ID=x\n"), 0o600))

	var out bytes.Buffer
	require.NoError(t, showConfig(context.Background(), &out, &staticConfig{cfg: &config.Config{Region: config.DefaultRegion}}, config.LoadOptions{DirPath: dir}))

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "(not set)"))
	assert.NotContains(t, got, "(not found)")
}

func TestShowConfig_LoadError(t *testing.T) {
	t.Parallel()

	provider := &staticConfig{err: config.ErrCredentialsMissing}
	err := showConfig(context.Background(), &bytes.Buffer{}, provider, config.LoadOptions{DirPath: t.TempDir()})
	require.ErrorIs(t, err, config.ErrCredentialsMissing)
}

func TestRunSetup(t *testing.T) {
	t.Parallel()

	envFile := filepath.Join(t.TempDir(), config.AppDirName, config.EnvFileName)
	prompts := &fakePrompts{answers: map[string]string{
		config.KeyRegion:       "mypurecloud.ie",
		config.KeyClientID:     "cid",
		config.KeyClientSecret: "csecret",
	}}

	var out bytes.Buffer
	p := setupParams{stdout: &out, prompter: prompts, envFile: envFile}
	require.NoError(t, runSetup(context.Background(), p))
	assert.Contains(t, out.String(), "Saved credentials to "+envFile)

	cfg, err := config.NewProvider().Load(context.Background(), config.LoadOptions{EnvFilePath: envFile})
	require.NoError(t, err)
	assert.Equal(t, config.Region("mypurecloud.ie"), cfg.Region)

	out.Reset()
	prompts.asked = nil
	require.NoError(t, runSetup(context.Background(), p))
	assert.Contains(t, out.String(), "use --force to replace them")
	assert.Empty(t, prompts.asked)
}

func TestRunSetup_EmptySecret(t *testing.T) {
	t.Parallel()

	envFile := filepath.Join(t.TempDir(), config.EnvFileName)
	prompts := &fakePrompts{answers: map[string]string{config.KeyClientID: "cid"}}

	var out, stderr bytes.Buffer
	err := runSetup(context.Background(), setupParams{stdout: &out, prompter: prompts, envFile: envFile})
	require.ErrorIs(t, err, config.ErrEmptySecret)
	assert.Equal(t, "CLIENT_SECRET cannot be empty.\n", out.String())
	assert.NoFileExists(t, envFile)

	require.Error(t, reportError(&stderr, err, false))
	assert.Empty(t, stderr.String())
}

func TestConfigPathCommand(t *testing.T) {
	t.Parallel()

	envFile := filepath.Join(t.TempDir(), "creds.env")
	app := testApp(&staticConfig{cfg: validConfig()}, &fakeClient{}, &fakePrompts{}, &fakeClipboard{}, false)
	root := NewRootCommand(app)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"config", "path", "--config", envFile})

	require.NoError(t, root.ExecuteContext(context.Background()))
	assert.Equal(t, envFile+"\n", out.String())
}
