//go:build windows

package crossdialog

import (
	"log/slog"

	"github.com/tejashwikalptaru/crossdialog/internal/adapter/picker/native"
	"github.com/tejashwikalptaru/crossdialog/internal/ports"
)

// defaultPickerOrder returns the Windows backend priority: only the
// common dialogs, which are always present.
func defaultPickerOrder() []string {
	return []string{native.Name}
}

// platformPickers constructs every backend this platform knows.
func platformPickers(log *slog.Logger, cwd func() string) []ports.Picker {
	return []ports.Picker{
		native.New(log, cwd),
	}
}
