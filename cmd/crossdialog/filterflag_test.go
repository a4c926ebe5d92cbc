package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tejashwikalptaru/crossdialog"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   crossdialog.Filter
	}{
		{
			name: "empty",
			want: crossdialog.Filter{},
		},
		{
			name:   "bare patterns",
			values: []string{"*.png *.jpg", "*.gif"},
			want:   crossdialog.FilterPatterns("*.png", "*.jpg", "*.gif"),
		},
		{
			name:   "described group",
			values: []string{"Images|*.png *.jpg"},
			want:   crossdialog.FilterMap(map[string][]string{"Images": {"*.png", "*.jpg"}}),
		},
		{
			name:   "mixed",
			values: []string{"Images|*.png", "*.txt"},
			want: crossdialog.FilterMap(map[string][]string{
				"Images": {"*.png"},
				"":       {"*.txt"},
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseFilters(tt.values))
		})
	}
}
