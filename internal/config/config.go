// Package config loads optional formatting defaults from an
// .ifmt.toml file found in the working directory or any parent.
// Command-line flags always win over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the defaults file searched for.
const FileName = ".ifmt.toml"

// File holds the defaults an .ifmt.toml may set. Nil fields were
// absent from the file.
type File struct {
	Width   *int  `toml:"width"`
	TabStop *int  `toml:"tabstop"`
	Flow    *bool `toml:"flow"`
	Justify *bool `toml:"justify"`
	Right   *bool `toml:"right"`
	Code    *bool `toml:"code"`

	// Path is where the file was found.
	Path string `toml:"-"`
}

// Find walks from startDir up to the filesystem root looking for
// FileName. ok is false when no such file exists.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("config: resolving %q: %w", startDir, err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("config: stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load parses the defaults file at path.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return &f, nil
}
