// Package kdialog implements the dialog backend for KDE's kdialog helper.
//
// Argument conventions: the operation flag first, then the start
// directory and the filter string as positionals, then --title. Multiple
// selection uses --multiple --separate-output, which prints one path per
// line.
package kdialog

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
const Name = "kdialog"

// Picker invokes kdialog.
type Picker struct {
	runner *helper.Runner
	logger *slog.Logger
}

var _ ports.Picker = (*Picker)(nil)

// New creates the kdialog backend. cwd supplies the preferred working
// directory for the helper process; it may be nil.
func New(log *slog.Logger, cwd func() string) *Picker {
	log = log.With(slog.String("picker", Name))
	return &Picker{
		runner: helper.New(log, cwd, "kdialog"),
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
		return nil, domain.NewDialogError(Name, req.Kind.String(), "kdialog call failed", err)
	}
	if out == "" {
		return nil, domain.ErrCancelled
	}

	if !req.Kind.Multiple() {
		return []string{out}, nil
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

// args translates a request into the kdialog argument list.
func args(req domain.Request) []string {
	var argv []string

	switch req.Kind {
	case domain.KindOpenFile:
		argv = append(argv, "--getopenfilename")
	case domain.KindOpenMultiple:
		argv = append(argv, "--getopenfilename", "--multiple", "--separate-output")
	case domain.KindSaveFile:
		argv = append(argv, "--getsavefilename")
	case domain.KindChooseFolder:
		argv = append(argv, "--getexistingdirectory")
	}

	filterArg := ""
	if req.Kind.Filterable() {
		filterArg = filter.KDialog(req.Filter)
	}

	// kdialog reads the start directory and the filter as positionals, in
	// that order. A filter without an explicit start directory still needs
	// the directory slot occupied.
	switch {
	case req.StartDir != "" && filterArg != "":
		argv = append(argv, req.StartDir, filterArg)
	case req.StartDir != "":
		argv = append(argv, req.StartDir)
	case filterArg != "":
		argv = append(argv, ".", filterArg)
	}

	return append(argv, "--title", req.Title)
}
