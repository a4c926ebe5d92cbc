// Package zenity implements the dialog backend for GNOME's zenity helper.
// yad accepts the same file-selection arguments and is used as a drop-in
// when zenity itself is absent.
package zenity

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
const Name = "zenity"

// separator joins multiple selections on stdout. Newline cannot appear
// in a POSIX path returned by the chooser, so splitting on it is safe.
const separator = "\n"

// Picker invokes zenity (or yad).
type Picker struct {
	runner *helper.Runner
	logger *slog.Logger
}

var _ ports.Picker = (*Picker)(nil)

// New creates the zenity backend. cwd supplies the preferred working
// directory for the helper process; it may be nil.
func New(log *slog.Logger, cwd func() string) *Picker {
	log = log.With(slog.String("picker", Name))
	return &Picker{
		runner: helper.New(log, cwd, "zenity", "yad"),
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
	out, err := p.runner.Output(ctx, args(req)...)
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) || ctx.Err() != nil {
			return nil, err
		}
		return nil, domain.NewDialogError(Name, req.Kind.String(), "zenity call failed", err)
	}
	if out == "" {
		return nil, domain.ErrCancelled
	}

	if !req.Kind.Multiple() {
		return []string{out}, nil
	}

	parts := strings.Split(out, separator)
	paths := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			paths = append(paths, part)
		}
	}
	if len(paths) == 0 {
		return nil, domain.ErrCancelled
	}
	return paths, nil
}

// args translates a request into the zenity argument list.
func args(req domain.Request) []string {
	argv := []string{"--file-selection", "--title=" + req.Title}

	switch req.Kind {
	case domain.KindOpenMultiple:
		argv = append(argv, "--multiple", "--separator="+separator)
	case domain.KindSaveFile:
		argv = append(argv, "--save", "--confirm-overwrite")
	case domain.KindChooseFolder:
		argv = append(argv, "--directory")
	}

	if req.StartDir != "" {
		// The trailing separator makes zenity treat the value as a
		// directory to start in rather than a file name to preselect.
		argv = append(argv, "--filename="+strings.TrimRight(req.StartDir, "/")+"/")
	}

	if req.Kind.Filterable() {
		for _, f := range filter.Zenity(req.Filter) {
			argv = append(argv, "--file-filter="+f)
		}
	}

	return argv
}
