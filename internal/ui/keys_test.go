package ui

import (
	"testing"

	"parkview/internal/nav"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		key  string
		want nav.Action
	}{
		{"q", nav.ActionQuit},
		{"ctrl+c", nav.ActionQuit},
		{"h", nav.ActionHome},
		{"home", nav.ActionHome},
		{"b", nav.ActionBoards},
		{"tab", nav.ActionBoards},
		{"up", nav.ActionUp},
		{"k", nav.ActionUp},
		{"down", nav.ActionDown},
		{"j", nav.ActionDown},
		{"x", nav.ActionNone},
		{"enter", nav.ActionNone},
		{"", nav.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := actionFor(tt.key); got != tt.want {
				t.Errorf("actionFor(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
