// Package osascript implements the dialog backend for macOS, driving the
// system chooser through AppleScript's "choose file"/"choose folder"
// family. Every script is wrapped so a dismissed dialog (AppleScript
// error -128) returns empty output instead of a failure.
package osascript

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/helper"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/filter"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// Name is the identifier used in preference lists.
const Name = "osascript"

// Picker invokes osascript.
type Picker struct {
	runner *helper.Runner
	logger *slog.Logger
}

var _ ports.Picker = (*Picker)(nil)

// New creates the osascript backend. cwd supplies the preferred working
// directory for the helper process; it may be nil.
func New(log *slog.Logger, cwd func() string) *Picker {
	log = log.With(slog.String("picker", Name))
	return &Picker{
		runner: helper.New(log, cwd, "osascript"),
		logger: log,
	}
}

// Name implements ports.Picker.
func (p *Picker) Name() string { return Name }

// Available implements ports.Picker.
func (p *Picker) Available(ctx context.Context) bool {
	return p.runner.Available(ctx)
}

// Pick implements ports.Picker.
func (p *Picker) Pick(ctx context.Context, req domain.Request) ([]string, error) {
	out, err := p.runner.Output(ctx, "-e", script(req))
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) || ctx.Err() != nil {
			return nil, err
		}
		return nil, domain.NewDialogError(Name, req.Kind.String(), "osascript call failed", err)
	}
	if out == "" {
		// The on-error wrapper turns a dismissed dialog into empty output.
		return nil, domain.ErrCancelled
	}

	if !req.Kind.Multiple() {
		return []string{cleanPath(out, req.Kind)}, nil
	}

	lines := strings.Split(out, "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			paths = append(paths, line)
		}
	}
	if len(paths) == 0 {
		return nil, domain.ErrCancelled
	}
	return paths, nil
}

// cleanPath strips the trailing slash "POSIX path of" appends to folder
// results, keeping the root path intact.
func cleanPath(path string, kind domain.Kind) string {
	if kind == domain.KindChooseFolder && len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// script builds the AppleScript program for a request.
func script(req domain.Request) string {
	var b strings.Builder

	b.WriteString("try\n")
	switch req.Kind {
	case domain.KindOpenMultiple:
		// "choose file" with multiple selections returns a list; emit one
		// POSIX path per line so the caller can split on newlines.
		b.WriteString("  set theFiles to ")
		b.WriteString(chooseClause(req))
		b.WriteString("\n  set out to \"\"\n")
		b.WriteString("  repeat with f in theFiles\n")
		b.WriteString("    set out to out & POSIX path of f & \"\\n\"\n")
		b.WriteString("  end repeat\n")
		b.WriteString("  return out\n")
	default:
		b.WriteString("  return POSIX path of (")
		b.WriteString(chooseClause(req))
		b.WriteString(")\n")
	}
	b.WriteString("on error number -128\n")
	b.WriteString("  return \"\"\n")
	b.WriteString("end try")

	return b.String()
}

// chooseClause builds the "choose ..." expression for a request.
func chooseClause(req domain.Request) string {
	var b strings.Builder

	switch req.Kind {
	case domain.KindSaveFile:
		b.WriteString("choose file name")
	case domain.KindChooseFolder:
		b.WriteString("choose folder")
	default:
		b.WriteString("choose file")
	}

	b.WriteString(" with prompt ")
	b.WriteString(quote(req.Title))

	if req.Kind == domain.KindOpenMultiple {
		b.WriteString(" with multiple selections allowed")
	}

	if req.Kind.Filterable() {
		// AppleScript filters on bare extensions only; a filter it cannot
		// express is dropped rather than mistranslated.
		if exts, ok := filter.Extensions(req.Filter); ok && len(exts) > 0 {
			quoted := make([]string, len(exts))
			for i, ext := range exts {
				quoted[i] = quote(ext)
			}
			b.WriteString(" of type {")
			b.WriteString(strings.Join(quoted, ", "))
			b.WriteString("}")
		}
	}

	if req.StartDir != "" {
		b.WriteString(" default location (POSIX file ")
		b.WriteString(quote(req.StartDir))
		b.WriteString(")")
	}

	return b.String()
}

// quote renders a Go string as an AppleScript string literal. Line
// breaks must be escaped too: a raw newline inside the literal ends the
// script statement.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return `"` + s + `"`
}
