package reflow

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// finish applies the configured justification to one unit's wrapped
// lines and renders the final output rows.
func (e *Engine) finish(u unit, lines []wrappedLine) ([]string, error) {
	cfg := e.cfg
	out := make([]string, 0, len(lines))
	switch {
	case cfg.Justify && !u.verbatim:
		for i, l := range lines {
			// The unit's last line stays ragged, and a lone word has
			// no gaps to stretch.
			if i == len(lines)-1 || len(l.words) < 2 {
				out = append(out, l.text())
				continue
			}
			s, err := stretch(l, cfg.Width, cfg.TabStop)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	case cfg.RightAlign && !u.verbatim:
		widest := 0
		for _, l := range lines {
			if w := lineWidth(l.text(), cfg.TabStop); w > widest {
				widest = w
			}
		}
		pad := cfg.Width - widest
		if pad < 0 {
			pad = 0
		}
		margin := strings.Repeat(" ", pad)
		for _, l := range lines {
			out = append(out, margin+l.text())
		}
	default:
		for _, l := range lines {
			out = append(out, l.text())
		}
	}
	return out, nil
}

// stretch widens the gaps between words so the line spans exactly
// width columns. The slack divides evenly across the gaps; the
// remainder goes to the leftmost gaps, one extra column each. A line
// the wrapper packed correctly always has at least one column per gap;
// anything less is an upstream defect and aborts the pass.
func stretch(l wrappedLine, width, tabstop int) (string, error) {
	prefixW := lineWidth(l.prefix, tabstop)
	sum := 0
	for _, w := range l.words {
		sum += runewidth.StringWidth(w)
	}
	gaps := len(l.words) - 1
	slack := width - prefixW - sum
	if slack < gaps {
		return "", fmt.Errorf("reflow: internal error: justifying %q: %d columns of slack for %d gaps at width %d",
			l.text(), slack, gaps, width)
	}
	base, extra := slack/gaps, slack%gaps
	var b strings.Builder
	b.WriteString(l.prefix)
	for i, w := range l.words {
		if i > 0 {
			n := base
			if i-1 < extra {
				n++
			}
			b.WriteString(strings.Repeat(" ", n))
		}
		b.WriteString(w)
	}
	return b.String(), nil
}
