package reflow

import "strings"

// classifiedLine is one input line split into its structural prefix
// and remaining content. prefix+content always reconstructs the line
// exactly; there are no unclassifiable lines.
type classifiedLine struct {
	raw     string // the line as read, trailing whitespace stripped
	prefix  string
	content string
	blank   bool
	leader  bool        // prefix ends in a recognized comment leader
	bullet  *bulletInfo // set when the line opens a bulleted unit
}

// bulletInfo carries a bullet marker and the all-spaces prefix that
// wrapped continuation lines use, so their text lines up under the
// bullet's first content column rather than under the marker.
type bulletInfo struct {
	marker     string
	contPrefix string
}

type prefixKind int

const (
	prefixComment prefixKind = iota
	prefixBullet
)

// prefixMatch is the structured result of one matcher: the kind of
// structure recognized and the exact text it consumed.
type prefixMatch struct {
	kind prefixKind
	text string
}

// matcher inspects the text that follows the indentation and reports
// what it matched, if anything. atCol0 is true when the line has no
// indentation, which some matchers need for their protections.
type matcher func(rest string, atCol0 bool) (prefixMatch, bool)

// leaderMatcher matches a fixed comment token. One space after the
// token, when present, is consumed into the prefix as well.
func leaderMatcher(token string) matcher {
	return func(rest string, _ bool) (prefixMatch, bool) {
		if !strings.HasPrefix(rest, token) {
			return prefixMatch{}, false
		}
		n := len(token)
		if n < len(rest) && rest[n] == ' ' {
			n++
		}
		return prefixMatch{kind: prefixComment, text: rest[:n]}, true
	}
}

// hashLeader is the '#' comment leader with preprocessor directives
// protected: #ifdef, #ifndef and #endif at column 0 are code, not
// comments, and must not flow.
func hashLeader(rest string, atCol0 bool) (prefixMatch, bool) {
	if !strings.HasPrefix(rest, "#") {
		return prefixMatch{}, false
	}
	if atCol0 {
		for _, dir := range []string{"#ifdef", "#ifndef", "#endif"} {
			if strings.HasPrefix(rest, dir) {
				return prefixMatch{}, false
			}
		}
	}
	n := 1
	if n < len(rest) && rest[n] == ' ' {
		n++
	}
	return prefixMatch{kind: prefixComment, text: rest[:n]}, true
}

// starLeader matches the body lines of a block comment: a star
// followed by a space. Requiring the space keeps lines like "*p = x"
// out of the comment flow.
func starLeader(rest string, _ bool) (prefixMatch, bool) {
	if strings.HasPrefix(rest, "* ") {
		return prefixMatch{kind: prefixComment, text: rest[:2]}, true
	}
	return prefixMatch{}, false
}

// commentMatchers is tried in order; the first match wins.
var commentMatchers = []matcher{
	leaderMatcher("//"),
	hashLeader,
	leaderMatcher("--"),
	starLeader,
}

// bulletMarker matches a bullet token followed by at least one space
// or tab: *, -, +, or a run of digits closed by '.' or ')'. The
// matched text includes the whitespace run after the token.
func bulletMarker(rest string, _ bool) (prefixMatch, bool) {
	n := 0
	switch {
	case len(rest) > 0 && (rest[0] == '*' || rest[0] == '-' || rest[0] == '+'):
		n = 1
	default:
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 || n >= len(rest) || (rest[n] != '.' && rest[n] != ')') {
			return prefixMatch{}, false
		}
		n++
	}
	if n >= len(rest) || (rest[n] != ' ' && rest[n] != '\t') {
		return prefixMatch{}, false
	}
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
		n++
	}
	return prefixMatch{kind: prefixBullet, text: rest[:n]}, true
}

// classify splits one line into prefix and content. Indentation is
// always part of the prefix; in code mode a comment leader may extend
// it, in flow mode a bullet marker may. cfg must be normalized.
func classify(line string, cfg Config) classifiedLine {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	indent, rest := line[:i], line[i:]
	cl := classifiedLine{raw: line, prefix: indent, content: rest}
	switch {
	case cfg.Code:
		for _, m := range commentMatchers {
			if match, ok := m(rest, indent == ""); ok {
				cl.prefix = indent + match.text
				cl.content = rest[len(match.text):]
				cl.leader = true
				break
			}
		}
	case cfg.Flow:
		if match, ok := bulletMarker(rest, indent == ""); ok {
			cl.prefix = indent + match.text
			cl.content = rest[len(match.text):]
			cl.bullet = &bulletInfo{
				marker:     match.text,
				contPrefix: continuationFor(indent, match.text, cfg.TabStop),
			}
		}
	}
	cl.blank = cl.content == ""
	return cl
}

// continuationFor builds the continuation prefix for a bulleted unit:
// the indentation as written, then spaces spanning the same columns as
// the marker and its trailing gap.
func continuationFor(indent, marker string, tabstop int) string {
	start := lineWidth(indent, tabstop)
	return indent + strings.Repeat(" ", advance(marker, start, tabstop)-start)
}
