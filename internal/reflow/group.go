package reflow

import "strings"

// unit is the atomic block the wrapper reflows: a shared prefix, the
// continuation prefix used from the second output line on, and the
// flattened word stream. Verbatim units (blank lines and code-mode
// pass-through) carry their original text and skip wrapping entirely.
type unit struct {
	prefix     string
	contPrefix string
	words      []string
	verbatim   bool
	raw        string // original text while the unit spans one source line
}

// grouper merges classified lines into units. It carries one piece of
// state across the pass: the currently open unit, or nil when closed.
// A blank line, a verbatim line, or an incompatible prefix closes it.
type grouper struct {
	cfg  Config
	open *unit
}

func newGrouper(cfg Config) *grouper {
	return &grouper{cfg: cfg}
}

// push feeds one classified line and returns the units completed by
// it, in order.
func (g *grouper) push(cl classifiedLine) []unit {
	var done []unit
	if cl.blank {
		done = g.close(done)
		return append(done, unit{verbatim: true, raw: cl.raw})
	}
	if g.cfg.Code && !cl.leader {
		// Not a comment: code passes through untouched.
		done = g.close(done)
		return append(done, unit{verbatim: true, raw: cl.raw})
	}
	if !g.flowing() {
		return append(done, openUnit(cl))
	}
	if g.open != nil && cl.bullet == nil &&
		(cl.prefix == g.open.prefix || cl.prefix == g.open.contPrefix) {
		g.open.words = append(g.open.words, strings.Fields(cl.content)...)
		g.open.raw = "" // spans multiple source lines now
		return done
	}
	done = g.close(done)
	u := openUnit(cl)
	g.open = &u
	return done
}

// flush closes whatever is still open at end of input.
func (g *grouper) flush() []unit {
	return g.close(nil)
}

// flowing reports whether lines accumulate across source lines. In
// code mode only leader lines reach this point, and those flow.
func (g *grouper) flowing() bool {
	return g.cfg.Flow || g.cfg.Code
}

func (g *grouper) close(done []unit) []unit {
	if g.open != nil {
		done = append(done, *g.open)
		g.open = nil
	}
	return done
}

func openUnit(cl classifiedLine) unit {
	u := unit{
		prefix:     cl.prefix,
		contPrefix: cl.prefix,
		words:      strings.Fields(cl.content),
		raw:        cl.raw,
	}
	if cl.bullet != nil {
		u.contPrefix = cl.bullet.contPrefix
	}
	return u
}
