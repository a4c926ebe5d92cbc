// Package domain contains core models and logic with no external dependencies.
// This package defines the fundamental entities of the crossdialog library.
package domain

// Kind identifies one of the four dialog operations.
type Kind int

const (
	// KindOpenFile selects a single existing file.
	KindOpenFile Kind = iota

	// KindOpenMultiple selects one or more existing files.
	KindOpenMultiple

	// KindSaveFile picks a target path to save to. The file may not exist yet.
	KindSaveFile

	// KindChooseFolder selects a directory.
	KindChooseFolder
)

// String returns a short identifier for the kind, used in logs and errors.
func (k Kind) String() string {
	switch k {
	case KindOpenFile:
		return "open_file"
	case KindOpenMultiple:
		return "open_multiple"
	case KindSaveFile:
		return "save_file"
	case KindChooseFolder:
		return "choose_folder"
	default:
		return "unknown"
	}
}

// DefaultTitle returns the dialog title used when the caller provides none.
func (k Kind) DefaultTitle() string {
	switch k {
	case KindOpenFile:
		return "Choose a file"
	case KindOpenMultiple:
		return "Choose one or more files"
	case KindSaveFile:
		return "Enter the name of the file to save to"
	case KindChooseFolder:
		return "Choose a folder"
	default:
		return "Choose"
	}
}

// Multiple reports whether the kind can yield more than one path.
func (k Kind) Multiple() bool {
	return k == KindOpenMultiple
}

// Filterable reports whether a file-type filter applies to the kind.
// Save and folder dialogs take no filter, matching the helper tools.
func (k Kind) Filterable() bool {
	return k == KindOpenFile || k == KindOpenMultiple
}

// FilterGroup is one entry of a normalized file-type filter: an optional
// human-readable description plus one or more glob patterns.
type FilterGroup struct {
	// Description is the label shown next to the patterns ("Images").
	// May be empty, in which case backends show the patterns themselves.
	Description string

	// Patterns are shell-style wildcards such as "*.png".
	Patterns []string
}

// Request describes a single dialog invocation in backend-neutral form.
// Backends translate it into their own argument conventions.
type Request struct {
	// Kind selects the operation.
	Kind Kind

	// Title is the dialog window title. Never empty; the session fills in
	// the kind's default title before dispatch.
	Title string

	// StartDir is the directory the dialog should start in. May be empty,
	// in which case the backend uses its own default.
	StartDir string

	// Filter restricts the selectable file types. Only meaningful when
	// Kind.Filterable() is true; empty means "all files".
	Filter []FilterGroup
}
