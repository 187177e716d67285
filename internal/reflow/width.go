package reflow

import "github.com/mattn/go-runewidth"

// lineWidth returns the number of columns s occupies when printed
// starting at column 0, with tabs expanded to the given tabstop.
func lineWidth(s string, tabstop int) int {
	return advance(s, 0, tabstop)
}

// advance returns the column reached after writing s starting at col.
// Tabs jump to the next tabstop; everything else is measured by its
// rune display width, so wide runes count as two columns.
func advance(s string, col, tabstop int) int {
	for _, r := range s {
		if r == '\t' {
			col += tabstop - col%tabstop
		} else {
			col += runewidth.RuneWidth(r)
		}
	}
	return col
}
