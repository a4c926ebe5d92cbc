//go:build linux

package crossdialog

import (
	"log/slog"

	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/kdialog"
	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/portal"
	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/zenity"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// defaultPickerOrder returns the Linux backend priority: kdialog first,
// the desktop portal (which renders the desktop's own GTK or Qt
// chooser), then zenity.
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
