//go:build darwin

package crossdialog

import (
	"log/slog"

	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/osascript"
	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/zenity"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// defaultPickerOrder returns the macOS backend priority: the system
// chooser via osascript, then zenity for setups that installed it.
func defaultPickerOrder() []string {
	return []string{osascript.Name, zenity.Name}
}

// platformPickers constructs every backend this platform knows.
func platformPickers(log *slog.Logger, cwd func() string) []ports.Picker {
	return []ports.Picker{
		osascript.New(log, cwd),
		zenity.New(log, cwd),
	}
}
