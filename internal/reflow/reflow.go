// Package reflow rewraps plain-text and source files to a target
// width, preserving document structure: indentation, comment leaders
// and bulleted lists survive rewrapping, and code lines pass through
// untouched in code mode.
//
// The pass is a strict pipeline: each input line is classified into a
// structural prefix and content, consecutive compatible lines group
// into paragraph units, each unit is greedily rewrapped, and an
// optional justification pass adjusts spacing. No state outlives a
// single Run.
package reflow

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Config controls one reformatting pass.
type Config struct {
	// Width is the target column width. Required.
	Width int
	// TabStop is the distance between tab stops. Defaults to 8.
	TabStop int
	// Flow merges consecutive compatible lines into paragraphs before
	// wrapping. Without it every source line rewraps on its own.
	Flow bool
	// Justify stretches inter-word spacing so every non-final line of
	// a paragraph spans exactly Width columns. Implies Flow.
	Justify bool
	// RightAlign pushes each paragraph right so its longest line ends
	// at column Width. Mutually exclusive with Justify.
	RightAlign bool
	// Code restricts flowing to recognized comment lines (//, #, --,
	// block-comment *); all other lines pass through verbatim.
	Code bool
	// Warn, when set, receives recoverable per-line anomalies, such as
	// a word too wide for the target width.
	Warn func(format string, args ...any)
}

// Engine reformats input streams according to a validated Config. It
// keeps no state between runs; every Run is an independent pass.
type Engine struct {
	cfg Config
}

// New validates cfg and returns an Engine for it.
func New(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("reflow: width must be positive, got %d", cfg.Width)
	}
	if cfg.TabStop <= 0 {
		cfg.TabStop = 8
	}
	if cfg.Justify && cfg.RightAlign {
		return nil, fmt.Errorf("reflow: justify and right-align are mutually exclusive")
	}
	if cfg.Justify {
		cfg.Flow = true
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) warnf(format string, args ...any) {
	if e.cfg.Warn != nil {
		e.cfg.Warn(format, args...)
	}
}

// Run reads lines from in, reformats them, and writes each output
// line to out with a trailing newline. Trailing whitespace on input
// lines is dropped before classification.
func (e *Engine) Run(in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	g := newGrouper(e.cfg)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		if err := e.emit(w, g.push(classify(line, e.cfg))); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reflow: read: %w", err)
	}
	if err := e.emit(w, g.flush()); err != nil {
		return err
	}
	return w.Flush()
}

func (e *Engine) emit(w *bufio.Writer, units []unit) error {
	for _, u := range units {
		lines, err := e.finish(u, e.wrap(u))
		if err != nil {
			return err
		}
		for _, line := range lines {
			w.WriteString(line)
			w.WriteByte('\n')
		}
	}
	return nil
}
