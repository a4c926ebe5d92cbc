// Package helper runs the command-line dialog helpers (kdialog, zenity,
// osascript) and normalizes their process-level behavior: stdout is the
// selection, exit status 1 is a dismissed dialog, anything else is a
// failure. The dialog rendering itself belongs entirely to the helper.
package helper

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/tejashwikalptaru/crossdialog/internal/domain"
)

// Runner invokes one helper binary. It is safe for concurrent use; all
// state is read-only after construction except what the cwd callback
// reads.
type Runner struct {
	candidates []string
	logger     *slog.Logger

	// cwd returns the preferred working directory for the helper, or ""
	// to inherit the process working directory. Helpers such as kdialog
	// open relative to their cwd, which is how the last-directory memory
	// reaches them.
	cwd func() string
}

// New creates a Runner for the given candidate binaries. The first
// candidate found on PATH is used; listing several supports drop-in
// replacements (yad answers the zenity argument conventions).
func New(logger *slog.Logger, cwd func() string, candidates ...string) *Runner {
	if cwd == nil {
		cwd = func() string { return "" }
	}
	return &Runner{
		candidates: candidates,
		logger:     logger,
		cwd:        cwd,
	}
}

// Binary returns the first candidate present on PATH, or "" when none is.
func (r *Runner) Binary() string {
	for _, name := range r.candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}

// Available reports whether a usable helper binary exists on PATH.
func (r *Runner) Available(_ context.Context) bool {
	return r.Binary() != ""
}

// Output runs the helper with the given arguments and returns its
// trimmed stdout.
//
// Exit status 1 means the user dismissed the dialog and maps to
// domain.ErrCancelled. Other failures, including a missing binary and a
// cancelled context, return a wrapped error. Helper stderr is never part
// of the result; it is forwarded to the log at debug level.
func (r *Runner) Output(ctx context.Context, args ...string) (string, error) {
	return r.OutputEnv(ctx, nil, args...)
}

// OutputEnv behaves like Output with extra "KEY=value" entries appended
// to the helper's environment.
func (r *Runner) OutputEnv(ctx context.Context, extraEnv []string, args ...string) (string, error) {
	binary := r.Binary()
	if binary == "" {
		return "", errors.New(r.candidates[0] + " not found on PATH")
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	if dir := r.cwd(); dir != "" {
		cmd.Dir = dir
	}
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("running dialog helper",
		slog.String("binary", binary),
		slog.Any("args", args))

	err := cmd.Run()

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		r.logger.Debug("dialog helper stderr",
			slog.String("binary", binary),
			slog.String("stderr", msg))
	}

	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", domain.ErrCancelled
		}
		return "", err
	}

	return strings.TrimSpace(stdout.String()), nil
}
