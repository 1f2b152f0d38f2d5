// SPDX-License-Identifier: MPL-2.0

package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gclookup/gclookup/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/otiai10/copy"
)

const (
	// ArtifactName is the binary copied into the bin directory.
	ArtifactName = "lookup"
	// BinDirName is the directory under $HOME that receives the binary.
	BinDirName = "bin"
	// PathExportLine is the exact line registered in the shell profile.
	PathExportLine = `export PATH="$HOME/bin:$PATH"`

	// MsgPathAdded is printed when the PATH line was appended.
	MsgPathAdded = "Added ~/bin to your PATH"
	// MsgPathPresent is printed when the profile already holds the line.
	MsgPathPresent = "~/bin is already in your PATH"

	binDirPerm  os.FileMode = 0o755
	profilePerm os.FileMode = 0o644
)

var (
	// ErrMissingSourceFile reports that the artifact to install does not exist.
	ErrMissingSourceFile = errors.New("missing source file")
	// ErrPermissionDenied reports that the filesystem refused a create or write.
	ErrPermissionDenied = errors.New("permission denied")
)

type (
	// Options configures an Installer. Zero values pick the defaults.
	Options struct {
		// Home overrides the home directory (default: go-homedir).
		Home string
		// Source is the artifact to install (default: ./lookup).
		Source string
		// Shell selects the profile file (default: zsh).
		Shell Shell
		// ShellPath is the $SHELL value used when Shell is ShellAuto.
		ShellPath string
		// Stdout receives the user-facing messages (default: io.Discard).
		Stdout io.Writer
		// Logger receives debug output (default: discard).
		Logger *log.Logger
	}

	// Result summarizes a completed run.
	Result struct {
		BinDir    string
		Target    string
		Profile   string
		PathAdded bool
	}

	// StepError is returned by a failed step. Kind is ErrMissingSourceFile,
	// ErrPermissionDenied or nil for other I/O failures.
	StepError struct {
		Step string
		Path string
		Kind error
		Err  error
	}

	// Installer places the lookup binary in ~/bin and registers ~/bin on PATH.
	Installer struct {
		source  string
		binDir  string
		target  string
		profile string
		shell   Shell
		stdout  io.Writer
		logger  *log.Logger
	}
)

// Error formats the step, path and cause.
func (e *StepError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

// Unwrap exposes both the kind sentinel and the underlying cause.
func (e *StepError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// New resolves paths and returns an Installer. It touches no files.
func New(opts Options) (*Installer, error) {
	home := opts.Home
	if home == "" {
		h, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		home = h
	}

	source := opts.Source
	if source == "" {
		source = ArtifactName
	}
	source, err := homedir.Expand(source)
	if err != nil {
		return nil, fmt.Errorf("expanding source path: %w", err)
	}
	if abs, absErr := filepath.Abs(source); absErr == nil {
		source = abs
	}

	shell := opts.Shell.Resolve(opts.ShellPath)
	binDir := filepath.Join(home, BinDirName)

	in := &Installer{
		source:  source,
		binDir:  binDir,
		target:  filepath.Join(binDir, ArtifactName),
		profile: filepath.Join(home, shell.ProfileName()),
		shell:   shell,
		stdout:  opts.Stdout,
		logger:  opts.Logger,
	}
	if in.stdout == nil {
		in.stdout = io.Discard
	}
	if in.logger == nil {
		in.logger = log.New(io.Discard)
	}
	return in, nil
}

// Profile returns the absolute path of the shell profile in use.
func (in *Installer) Profile() string { return in.profile }

// Target returns the absolute destination of the binary.
func (in *Installer) Target() string { return in.target }

// Run executes all four steps in order. The context is checked between
// steps; a step that has started always completes.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	res := &Result{BinDir: in.binDir, Target: in.target, Profile: in.profile}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := in.EnsureBinDir(); err != nil {
		return res, in.actionable(err)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := in.InstallArtifact(); err != nil {
		return res, in.actionable(err)
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	added, err := in.RegisterPath()
	if err != nil {
		return res, in.actionable(err)
	}
	res.PathAdded = added

	in.Notify()
	return res, nil
}

// EnsureBinDir creates ~/bin when it does not exist.
func (in *Installer) EnsureBinDir() error {
	in.logger.Debug("ensuring bin directory", "path", in.binDir)
	if err := os.MkdirAll(in.binDir, binDirPerm); err != nil {
		return newStepError("create directory", in.binDir, err)
	}
	return nil
}

// InstallArtifact copies the source binary over ~/bin/lookup. The copy goes
// to a temp file in ~/bin first and is renamed into place, so the
// destination is either the old or the new binary, never a partial one.
func (in *Installer) InstallArtifact() error {
	info, err := os.Stat(in.source)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &StepError{Step: "copy", Path: in.source, Kind: ErrMissingSourceFile, Err: err}
	case err != nil:
		return newStepError("copy", in.source, err)
	case info.IsDir():
		return &StepError{Step: "copy", Path: in.source, Kind: ErrMissingSourceFile, Err: errors.New("is a directory")}
	}

	tmp, err := os.CreateTemp(in.binDir, "."+ArtifactName+"-install-*")
	if err != nil {
		return newStepError("copy", in.binDir, err)
	}
	tmpPath := tmp.Name()
	if closeErr := tmp.Close(); closeErr != nil {
		_ = os.Remove(tmpPath)
		return newStepError("copy", tmpPath, closeErr)
	}

	renamed := false
	defer func() {
		if !renamed {
			_ = os.Remove(tmpPath)
		}
	}()

	in.logger.Debug("copying artifact", "from", in.source, "to", in.target)
	opts := copy.Options{
		Sync: true,
		// A linked ./lookup installs the file it points at.
		OnSymlink: func(string) copy.SymlinkAction { return copy.Deep },
	}
	if err := copy.Copy(in.source, tmpPath, opts); err != nil {
		return newStepError("copy", in.target, err)
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()|0o111); err != nil {
		return newStepError("copy", in.target, err)
	}
	if err := os.Rename(tmpPath, in.target); err != nil {
		return newStepError("copy", in.target, err)
	}
	renamed = true
	return nil
}

// RegisterPath appends PathExportLine to the profile unless the profile
// already contains it as a substring. A missing profile is created. It
// reports whether the line was added and prints the matching message.
func (in *Installer) RegisterPath() (bool, error) {
	data, err := os.ReadFile(in.profile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, newStepError("read profile", in.profile, err)
	}

	if bytes.Contains(data, []byte(PathExportLine)) {
		in.logger.Debug("PATH entry already registered", "profile", in.profile)
		fmt.Fprintln(in.stdout, MsgPathPresent)
		return false, nil
	}

	line := PathExportLine + "\n"
	if len(data) > 0 && data[len(data)-1] != '\n' {
		line = "\n" + line
	}

	f, err := os.OpenFile(in.profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, profilePerm)
	if err != nil {
		return false, newStepError("write profile", in.profile, err)
	}
	if _, err := f.WriteString(line); err != nil {
		_ = f.Close()
		return false, newStepError("write profile", in.profile, err)
	}
	if err := f.Close(); err != nil {
		return false, newStepError("write profile", in.profile, err)
	}

	in.logger.Debug("PATH entry appended", "profile", in.profile)
	fmt.Fprintln(in.stdout, MsgPathAdded)
	return true, nil
}

// Notify prints the reload instruction.
func (in *Installer) Notify() {
	fmt.Fprintf(in.stdout, "Run 'source ~/%s' or open a new terminal to start using %s.\n",
		in.shell.ProfileName(), ArtifactName)
}

// newStepError classifies err as ErrPermissionDenied when the filesystem
// refused access.
func newStepError(step, path string, err error) *StepError {
	se := &StepError{Step: step, Path: path, Err: err}
	if errors.Is(err, fs.ErrPermission) {
		se.Kind = ErrPermissionDenied
	}
	return se
}

// actionable attaches remediation hints to a step failure.
func (in *Installer) actionable(err error) error {
	ec := issue.NewErrorContext().WithOperation("install " + ArtifactName).Wrap(err)

	switch {
	case errors.Is(err, ErrMissingSourceFile):
		ec.WithResource(in.source).
			WithIssue(issue.MissingSourceFileId).
			WithSuggestion("Run the installer from the directory that contains the lookup binary").
			WithSuggestion("Or pass the binary explicitly: lookup install --source <path>")
	case errors.Is(err, ErrPermissionDenied):
		ec.WithIssue(issue.PermissionDeniedId).
			WithSuggestion(fmt.Sprintf("Check that you own %s and %s", in.binDir, in.profile)).
			WithSuggestion("Re-run the installer once fixed; completed steps are kept")
	default:
		ec.WithSuggestion("Re-run the installer; every step is safe to repeat")
	}
	return ec.BuildError()
}
