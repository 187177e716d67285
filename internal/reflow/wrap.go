package reflow

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrappedLine is one output row before justification: a prefix and the
// words assigned to the row. Verbatim rows keep their whole text in
// prefix and have no words.
type wrappedLine struct {
	prefix string
	words  []string
}

// text renders the line with single spaces between words.
func (l wrappedLine) text() string {
	if len(l.words) == 0 {
		return l.prefix
	}
	return l.prefix + strings.Join(l.words, " ")
}

// wrap splits a unit's words greedily into lines no wider than the
// target. The first line is seeded with the unit prefix, later lines
// with the continuation prefix. A word too wide to fit next to its
// prefix is placed alone, oversized, and reported through the warn
// hook; the stream continues.
func (e *Engine) wrap(u unit) []wrappedLine {
	cfg := e.cfg
	if u.verbatim {
		return []wrappedLine{{prefix: u.raw}}
	}
	// A unit still backed by a single source line that already fits is
	// kept byte for byte, preserving its internal spacing.
	if u.raw != "" && !cfg.Justify && lineWidth(u.raw, cfg.TabStop) <= cfg.Width {
		return []wrappedLine{{prefix: u.raw}}
	}
	if len(u.words) == 0 {
		return []wrappedLine{{prefix: u.prefix}}
	}

	var lines []wrappedLine
	cur := wrappedLine{prefix: u.prefix}
	col := lineWidth(u.prefix, cfg.TabStop)
	first := func(word string) {
		// Words contain no tabs; strings.Fields removed them.
		w := runewidth.StringWidth(word)
		if col+w > cfg.Width {
			e.warnf("%q does not fit in width %d; emitting oversized line", word, cfg.Width)
		}
		cur.words = append(cur.words, word)
		col += w
	}
	first(u.words[0])
	for _, word := range u.words[1:] {
		w := runewidth.StringWidth(word)
		if col+1+w <= cfg.Width {
			cur.words = append(cur.words, word)
			col += 1 + w
			continue
		}
		lines = append(lines, cur)
		cur = wrappedLine{prefix: u.contPrefix}
		col = lineWidth(u.contPrefix, cfg.TabStop)
		first(word)
	}
	return append(lines, cur)
}
