package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitEntities(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		delims string
		want   []string
	}{
		{
			name:   "single value",
			raw:    "Bruins",
			delims: GroupDelims,
			want:   []string{"Bruins"},
		},
		{
			name:   "slash separated",
			raw:    "Bruins/Leafs",
			delims: GroupDelims,
			want:   []string{"Bruins", "Leafs"},
		},
		{
			name:   "mixed delimiters with padding",
			raw:    "Bruins / Leafs, Canadiens | Rangers",
			delims: GroupDelims,
			want:   []string{"Bruins", "Leafs", "Canadiens", "Rangers"},
		},
		{
			name:   "duplicates removed first-seen order kept",
			raw:    "Leafs/Bruins/Leafs",
			delims: GroupDelims,
			want:   []string{"Leafs", "Bruins"},
		},
		{
			name:   "ampersand kept in group context",
			raw:    "Stars & Stripes",
			delims: GroupDelims,
			want:   []string{"Stars & Stripes"},
		},
		{
			name:   "ampersand splits in display context",
			raw:    "Stars & Stripes",
			delims: DisplayDelims,
			want:   []string{"Stars", "Stripes"},
		},
		{
			name:   "empty input",
			raw:    "",
			delims: GroupDelims,
			want:   nil,
		},
		{
			name:   "delimiters only",
			raw:    "/, |",
			delims: GroupDelims,
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitEntities(tt.raw, tt.delims))
		})
	}
}

func TestDedupBadge(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "empty", value: "", want: ""},
		{name: "blank", value: "   ", want: ""},
		{name: "single part unadorned", value: "RC", want: "RC"},
		{name: "repeated part collapses", value: "RC-RC", want: "RC"},
		{name: "distinct parts rejoined", value: "RC/Auto", want: "RC-Auto"},
		{name: "mixed delimiters", value: "RC, Auto | Patch", want: "RC-Auto-Patch"},
		{name: "trailing delimiter leaves no artifact", value: "RC-", want: "RC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DedupBadge(tt.value))
		})
	}
}

func TestDedupBadgeIdempotent(t *testing.T) {
	inputs := []string{"", "RC", "RC-RC", "RC/Auto", "a, b | c - a", "Gold-Gold-Gold"}
	for _, in := range inputs {
		once := DedupBadge(in)
		assert.Equal(t, once, DedupBadge(once), "input %q", in)
	}
}
