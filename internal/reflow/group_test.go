package reflow

import (
	"strings"
	"testing"
)

// collect runs the grouper over lines and gathers every unit.
func collect(cfg Config, lines ...string) []unit {
	g := newGrouper(cfg)
	var units []unit
	for _, line := range lines {
		units = append(units, g.push(classify(line, cfg))...)
	}
	return append(units, g.flush()...)
}

func words(u unit) string {
	return strings.Join(u.words, " ")
}

func TestGroupDefaultOneUnitPerLine(t *testing.T) {
	cfg := Config{Width: 80, TabStop: 8}
	units := collect(cfg, "one two", "three", "  four")
	if len(units) != 3 {
		t.Fatalf("got %d units, want 3: %+v", len(units), units)
	}
	if words(units[0]) != "one two" || words(units[1]) != "three" || words(units[2]) != "four" {
		t.Errorf("unexpected unit words: %+v", units)
	}
	if units[2].prefix != "  " {
		t.Errorf("indented unit prefix = %q, want two spaces", units[2].prefix)
	}
}

func TestGroupFlowMergesCompatibleLines(t *testing.T) {
	cfg := Config{Width: 80, TabStop: 8, Flow: true}
	units := collect(cfg, "foo bar", "baz", "", "quux")
	if len(units) != 3 {
		t.Fatalf("got %d units, want 3: %+v", len(units), units)
	}
	if words(units[0]) != "foo bar baz" {
		t.Errorf("merged unit words = %q, want %q", words(units[0]), "foo bar baz")
	}
	if !units[1].verbatim || units[1].raw != "" {
		t.Errorf("blank separator not preserved as verbatim unit: %+v", units[1])
	}
	if words(units[2]) != "quux" {
		t.Errorf("trailing unit words = %q, want %q", words(units[2]), "quux")
	}
}

func TestGroupFlowPrefixChangeOpensNewUnit(t *testing.T) {
	cfg := Config{Width: 80, TabStop: 8, Flow: true}
	units := collect(cfg, "top level", "  indented")
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2: %+v", len(units), units)
	}
	if units[0].prefix != "" || units[1].prefix != "  " {
		t.Errorf("unit prefixes = %q, %q; want \"\" and two spaces",
			units[0].prefix, units[1].prefix)
	}
}

func TestGroupBullets(t *testing.T) {
	cfg := Config{Width: 80, TabStop: 8, Flow: true}
	units := collect(cfg,
		"* first item",
		"  continues here",
		"* second item",
	)
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2: %+v", len(units), units)
	}
	if words(units[0]) != "first item continues here" {
		t.Errorf("bullet unit words = %q", words(units[0]))
	}
	if units[0].prefix != "* " || units[0].contPrefix != "  " {
		t.Errorf("bullet unit prefixes = %q / %q", units[0].prefix, units[0].contPrefix)
	}
	// A fresh marker starts a fresh unit even though its prefix
	// matches the previous one exactly.
	if words(units[1]) != "second item" {
		t.Errorf("second bullet words = %q", words(units[1]))
	}
}

func TestGroupCodeMode(t *testing.T) {
	cfg := Config{Width: 80, TabStop: 8, Code: true}
	units := collect(cfg,
		"// first comment line",
		"// second comment line",
		"int x = 1;",
		"#ifdef GUARD",
	)
	if len(units) != 3 {
		t.Fatalf("got %d units, want 3: %+v", len(units), units)
	}
	if words(units[0]) != "first comment line second comment line" {
		t.Errorf("comment unit words = %q", words(units[0]))
	}
	if !units[1].verbatim || units[1].raw != "int x = 1;" {
		t.Errorf("code line not verbatim: %+v", units[1])
	}
	if !units[2].verbatim || units[2].raw != "#ifdef GUARD" {
		t.Errorf("preprocessor line not verbatim: %+v", units[2])
	}
}

func TestGroupLeaderChangeSplitsUnits(t *testing.T) {
	cfg := Config{Width: 80, TabStop: 8, Code: true}
	units := collect(cfg, "// one", "  // two")
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2: %+v", len(units), units)
	}
}
