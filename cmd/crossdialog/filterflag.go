package main

import (
	"strings"

	"github.com/tejashwikalptaru/crossdialog"
)

// parseFilters converts repeated --filter values into a library filter.
//
// Each value is either "Description|*.pat *.pat" or a bare
// space-separated pattern list. Described values become named groups;
// bare values share one unnamed group.
func parseFilters(values []string) crossdialog.Filter {
	if len(values) == 0 {
		return crossdialog.Filter{}
	}

	named := make(map[string][]string)
	var bare []string

	for _, value := range values {
		desc, patterns, found := strings.Cut(value, "|")
		if !found {
			bare = append(bare, strings.Fields(value)...)
			continue
		}
		desc = strings.TrimSpace(desc)
		named[desc] = append(named[desc], strings.Fields(patterns)...)
	}

	if len(named) == 0 {
		return crossdialog.FilterPatterns(bare...)
	}
	if len(bare) > 0 {
		named[""] = append(named[""], bare...)
	}
	return crossdialog.FilterMap(named)
}
