package crossdialog

import (
	"sort"

	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/filter"
)

// Filter restricts the file types an open dialog offers. The zero value
// means "all files". Build one with FilterPattern, FilterPatterns,
// FilterGroups or FilterMap; each backend renders the same filter into
// its own syntax.
type Filter struct {
	raw []domain.FilterGroup
}

// FilterPattern accepts a single wildcard:
//
//	crossdialog.FilterPattern("*.txt")
func FilterPattern(pattern string) Filter {
	return FilterPatterns(pattern)
}

// FilterPatterns accepts a flat list of wildcards shown as one group:
//
//	crossdialog.FilterPatterns("*.png", "*.jpg")
func FilterPatterns(patterns ...string) Filter {
	return Filter{raw: []domain.FilterGroup{{Patterns: patterns}}}
}

// FilterGroups accepts wildcard groups, each selectable on its own:
//
//	crossdialog.FilterGroups([]string{"*.png", "*.jpg"}, []string{"*.txt"})
func FilterGroups(groups ...[]string) Filter {
	raw := make([]domain.FilterGroup, 0, len(groups))
	for _, patterns := range groups {
		raw = append(raw, domain.FilterGroup{Patterns: patterns})
	}
	return Filter{raw: raw}
}

// FilterMap accepts a description-to-wildcards mapping:
//
//	crossdialog.FilterMap(map[string][]string{
//		"Images":     {"*.png", "*.jpg"},
//		"Text files": {"*.txt"},
//	})
//
// Groups are ordered by description so the rendered filter is
// deterministic.
func FilterMap(m map[string][]string) Filter {
	descriptions := make([]string, 0, len(m))
	for desc := range m {
		descriptions = append(descriptions, desc)
	}
	sort.Strings(descriptions)

	raw := make([]domain.FilterGroup, 0, len(m))
	for _, desc := range descriptions {
		raw = append(raw, domain.FilterGroup{Description: desc, Patterns: m[desc]})
	}
	return Filter{raw: raw}
}

// normalized returns the cleaned group form backends consume.
func (f Filter) normalized() []domain.FilterGroup {
	return filter.Clean(f.raw)
}
