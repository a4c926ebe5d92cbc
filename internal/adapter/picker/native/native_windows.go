//go:build windows

// Package native implements the dialog backend for the Windows common
// dialogs, via github.com/sqweek/dialog. Multi-selection is not exposed
// by that library, so the open-multiple operation drives the
// System.Windows.Forms dialog through PowerShell instead.
package native

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	sqweek "github.com/sqweek/dialog"

	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/helper"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/filter"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// Name is the identifier used in preference lists.
const Name = "native"

// cancelMarker is printed by the PowerShell script on dismissal, keeping
// cancellation distinct from an aborted script.
const cancelMarker = "CANCELLED"

// multiSelectScript shows an OpenFileDialog with multi-selection and
// prints one selected path per line.
const multiSelectScript = `
Add-Type -AssemblyName System.Windows.Forms
$dialog = New-Object System.Windows.Forms.OpenFileDialog
$dialog.Multiselect = $true
$dialog.Title = $env:CROSSDIALOG_TITLE
if ($env:CROSSDIALOG_START_DIR) { $dialog.InitialDirectory = $env:CROSSDIALOG_START_DIR }
if ($env:CROSSDIALOG_FILTER) { $dialog.Filter = $env:CROSSDIALOG_FILTER }
$result = $dialog.ShowDialog()
if ($result -eq [System.Windows.Forms.DialogResult]::OK) {
    $dialog.FileNames | ForEach-Object { Write-Output $_ }
} else {
    Write-Output "CANCELLED"
}
`

// Picker drives the Windows common dialogs.
type Picker struct {
	runner *helper.Runner
	logger *slog.Logger
}

var _ ports.Picker = (*Picker)(nil)

// New creates the Windows backend. cwd supplies the preferred working
// directory for the PowerShell helper; it may be nil.
func New(log *slog.Logger, cwd func() string) *Picker {
	log = log.With(slog.String("picker", Name))
	return &Picker{
		runner: helper.New(log, cwd, "powershell"),
		logger: log,
	}
}

// Name implements ports.Picker.
func (p *Picker) Name() string { return Name }

// Available implements ports.Picker.
// The common dialogs are part of the platform; on Windows this backend
// always works.
func (p *Picker) Available(_ context.Context) bool { return true }

// Pick implements ports.Picker.
func (p *Picker) Pick(ctx context.Context, req domain.Request) ([]string, error) {
	if req.Kind == domain.KindOpenMultiple {
		return p.pickMultiple(ctx, req)
	}

	path, err := p.pickSingle(req)
	switch {
	case errors.Is(err, sqweek.ErrCancelled):
		return nil, domain.ErrCancelled
	case err != nil:
		return nil, domain.NewDialogError(Name, req.Kind.String(), "common dialog failed", err)
	case path == "":
		return nil, domain.ErrCancelled
	}
	return []string{path}, nil
}

func (p *Picker) pickSingle(req domain.Request) (string, error) {
	if req.Kind == domain.KindChooseFolder {
		b := sqweek.Directory().Title(req.Title)
		if req.StartDir != "" {
			b = b.SetStartDir(req.StartDir)
		}
		return b.Browse()
	}

	b := sqweek.File().Title(req.Title)
	if req.StartDir != "" {
		b = b.SetStartDir(req.StartDir)
	}
	if req.Kind.Filterable() {
		for _, g := range req.Filter {
			if exts, ok := filter.Extensions([]domain.FilterGroup{g}); ok && len(exts) > 0 {
				b = b.Filter(filter.Label(g), exts...)
			}
		}
	}

	if req.Kind == domain.KindSaveFile {
		return b.Save()
	}
	return b.Load()
}

func (p *Picker) pickMultiple(ctx context.Context, req domain.Request) ([]string, error) {
	// Dialog parameters travel as environment variables so the script
	// needs no string interpolation.
	env := []string{
		"CROSSDIALOG_TITLE=" + req.Title,
		"CROSSDIALOG_START_DIR=" + req.StartDir,
		"CROSSDIALOG_FILTER=" + formsFilter(req.Filter),
	}

	out, err := p.runner.OutputEnv(ctx, env, "-NoProfile", "-Command", multiSelectScript)
	if err != nil {
		if errors.Is(err, domain.ErrCancelled) || ctx.Err() != nil {
			return nil, err
		}
		return nil, domain.NewDialogError(Name, req.Kind.String(), "powershell dialog failed", err)
	}
	if out == "" || out == cancelMarker {
		return nil, domain.ErrCancelled
	}

	lines := strings.Split(out, "\n")
	paths := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" && line != cancelMarker {
			paths = append(paths, line)
		}
	}
	if len(paths) == 0 {
		return nil, domain.ErrCancelled
	}
	return paths, nil
}

// formsFilter renders the System.Windows.Forms filter syntax:
// "Images (*.png)|*.png;*.jpg|Text|*.txt".
func formsFilter(groups []domain.FilterGroup) string {
	parts := make([]string, 0, len(groups)*2)
	for _, g := range groups {
		parts = append(parts, filter.Label(g), strings.Join(g.Patterns, ";"))
	}
	return strings.Join(parts, "|")
}
