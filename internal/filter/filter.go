// Package filter renders normalized file-type filters into each backend's
// own filter syntax. The public crossdialog.Filter type produces the
// normalized []domain.FilterGroup form; everything here is pure string
// assembly on top of it.
package filter

import (
	"strings"

	"github.com/tejashwikalptaru/crossdialog/internal/domain"
)

// Clean drops empty patterns and empty groups. A filter that cleans down
// to nothing behaves as "all files".
func Clean(groups []domain.FilterGroup) []domain.FilterGroup {
	out := make([]domain.FilterGroup, 0, len(groups))
	for _, g := range groups {
		patterns := make([]string, 0, len(g.Patterns))
		for _, p := range g.Patterns {
			p = strings.TrimSpace(p)
			if p != "" {
				patterns = append(patterns, p)
			}
		}
		if len(patterns) == 0 {
			continue
		}
		out = append(out, domain.FilterGroup{
			Description: strings.TrimSpace(g.Description),
			Patterns:    patterns,
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// KDialog renders the kdialog filter argument: groups joined by " | ",
// each group "Description (*.a *.b)", or the bare pattern list when the
// group has no description.
//
//	Images (*.png *.jpg) | Text files (*.txt)
func KDialog(groups []domain.FilterGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		patterns := strings.Join(g.Patterns, " ")
		if g.Description == "" {
			parts = append(parts, patterns)
			continue
		}
		parts = append(parts, g.Description+" ("+patterns+")")
	}
	return strings.Join(parts, " | ")
}

// Zenity renders one value per group for zenity's repeatable
// --file-filter option: "Description | *.a *.b", or just the patterns
// when the group has no description.
func Zenity(groups []domain.FilterGroup) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		patterns := strings.Join(g.Patterns, " ")
		if g.Description == "" {
			out = append(out, patterns)
			continue
		}
		out = append(out, g.Description+" | "+patterns)
	}
	return out
}

// Label returns the text a backend should display for a group when it
// requires a non-empty name (the portal does): the description, or the
// pattern list when there is none.
func Label(g domain.FilterGroup) string {
	if g.Description != "" {
		return g.Description
	}
	return strings.Join(g.Patterns, " ")
}

// Extensions flattens all groups into a list of bare extensions for
// backends that filter on extension only (AppleScript's "of type",
// the Windows common dialog): "*.png" becomes "png".
//
// The second result is false when any pattern cannot be expressed as a
// bare extension (for example "README*" or "*"); such a filter must be
// dropped rather than mistranslated.
func Extensions(groups []domain.FilterGroup) ([]string, bool) {
	var exts []string
	seen := make(map[string]struct{})
	for _, g := range groups {
		for _, p := range g.Patterns {
			ext, ok := extension(p)
			if !ok {
				return nil, false
			}
			if _, dup := seen[ext]; dup {
				continue
			}
			seen[ext] = struct{}{}
			exts = append(exts, ext)
		}
	}
	return exts, true
}

// extension extracts "png" from "*.png". Anything else is not
// expressible as a plain extension filter.
func extension(pattern string) (string, bool) {
	rest, ok := strings.CutPrefix(pattern, "*.")
	if !ok || rest == "" {
		return "", false
	}
	if strings.ContainsAny(rest, "*?[]/ ") {
		return "", false
	}
	return rest, true
}
