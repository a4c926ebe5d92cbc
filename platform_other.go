//go:build !linux && !darwin && !windows

package crossdialog

import (
	"log/slog"

	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/kdialog"
	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/portal"
	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/zenity"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// defaultPickerOrder covers the remaining Unix-likes (the BSDs), which
// run the same desktop stacks as Linux; New reports ErrNoImplementation
// when none of the backends is installed.
func defaultPickerOrder() []string {
	return []string{kdialog.Name, portal.Name, zenity.Name}
}

// platformPickers constructs every backend this platform knows.
func platformPickers(log *slog.Logger, cwd func() string) []ports.Picker {
	return []ports.Picker{
		kdialog.New(log, cwd),
		portal.New(log),
		zenity.New(log, cwd),
	}
}
