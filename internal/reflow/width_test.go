package reflow

import "testing"

func TestLineWidth(t *testing.T) {
	cases := []struct {
		s       string
		tabstop int
		want    int
	}{
		{"", 8, 0},
		{"abc", 8, 3},
		{"\t", 8, 8},
		{"\t", 4, 4},
		{"ab\t", 8, 8},
		{"ab\tc", 8, 9},
		{"\t\t", 8, 16},
		{"abcdefgh\t", 8, 16},
		{"日本", 8, 4}, // wide runes are two columns each
	}
	for _, tc := range cases {
		if got := lineWidth(tc.s, tc.tabstop); got != tc.want {
			t.Errorf("lineWidth(%q, %d) = %d, want %d", tc.s, tc.tabstop, got, tc.want)
		}
	}
}

func TestAdvanceFromColumn(t *testing.T) {
	// A tab's width depends on the column it starts at.
	if got := advance("\t", 3, 8); got != 8 {
		t.Errorf("advance(tab from col 3) = %d, want 8", got)
	}
	if got := advance("\t", 8, 8); got != 16 {
		t.Errorf("advance(tab from col 8) = %d, want 16", got)
	}
}
