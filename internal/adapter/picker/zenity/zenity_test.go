package zenity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tejashwikalptaru/crossdialog/internal/domain"
	"github.com/tejashwikalptaru/crossdialog/internal/logger"
)

func TestArgs(t *testing.T) {
	images := []domain.FilterGroup{
		{Description: "Images", Patterns: []string{"*.png", "*.jpg"}},
		{Patterns: []string{"*.gif"}},
	}

	tests := []struct {
		name string
		req  domain.Request
		want []string
	}{
		{
			name: "open file",
			req:  domain.Request{Kind: domain.KindOpenFile, Title: "Choose a file"},
			want: []string{"--file-selection", "--title=Choose a file"},
		},
		{
			name: "open file with filters",
			req:  domain.Request{Kind: domain.KindOpenFile, Title: "Open", Filter: images},
			want: []string{
				"--file-selection", "--title=Open",
				"--file-filter=Images | *.png *.jpg",
				"--file-filter=*.gif",
			},
		},
		{
			name: "open multiple",
			req:  domain.Request{Kind: domain.KindOpenMultiple, Title: "Pick"},
			want: []string{"--file-selection", "--title=Pick", "--multiple", "--separator=\n"},
		},
		{
			name: "save",
			req:  domain.Request{Kind: domain.KindSaveFile, Title: "Save", StartDir: "/home/me"},
			want: []string{"--file-selection", "--title=Save", "--save", "--confirm-overwrite", "--filename=/home/me/"},
		},
		{
			name: "save ignores filter",
			req:  domain.Request{Kind: domain.KindSaveFile, Title: "Save", Filter: images},
			want: []string{"--file-selection", "--title=Save", "--save", "--confirm-overwrite"},
		},
		{
			name: "choose folder",
			req:  domain.Request{Kind: domain.KindChooseFolder, Title: "Folder", StartDir: "/tmp/"},
			want: []string{"--file-selection", "--title=Folder", "--directory", "--filename=/tmp/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, args(tt.req))
		})
	}
}

func TestName(t *testing.T) {
	p := New(logger.NewTestLogger(), nil)
	assert.Equal(t, "zenity", p.Name())
}
