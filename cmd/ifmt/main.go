package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mknyszek/ifmt/internal/config"
	"github.com/mknyszek/ifmt/internal/reflow"
)

// version can be overridden at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ifmt [flags] [file ...]",
	Short: "Reformat text files while preserving document structure",
	Long: `ifmt rewraps plain-text and source files to a target width while
preserving indentation, comment leaders and bulleted lists. With no
file arguments, or with "-", it reads standard input.`,
	RunE: run,
}

func init() {
	rootCmd.Version = version
	fl := rootCmd.Flags()
	fl.IntP("width", "w", 0, "maximum number of columns (default: terminal width, else 80)")
	fl.IntP("tabstop", "t", 8, "number of columns between tabstops")
	fl.BoolP("flow", "f", false, "treat consecutive non-empty lines as one block of text")
	fl.BoolP("justify", "j", false, "justify output to both margins (implies --flow)")
	fl.BoolP("right", "r", false, "push each block right so it ends at the target width")
	fl.Bool("code", false, "flow comment lines only; pass code through unchanged")
	fl.StringP("output", "o", "", "output file (default: stdout)")
	fl.BoolP("overwrite", "O", false, "rewrite each input file in place")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var warnColor = color.New(color.FgYellow)

func warnf(format string, args ...any) {
	warnColor.Fprintf(os.Stderr, "ifmt: warning: "+format+"\n", args...)
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	fl := cmd.Flags()
	width, _ := fl.GetInt("width")
	tabstop, _ := fl.GetInt("tabstop")
	flow, _ := fl.GetBool("flow")
	justify, _ := fl.GetBool("justify")
	right, _ := fl.GetBool("right")
	code, _ := fl.GetBool("code")
	output, _ := fl.GetString("output")
	overwrite, _ := fl.GetBool("overwrite")

	if output != "" && overwrite {
		return fmt.Errorf("--output and --overwrite cannot be combined")
	}
	if justify && right {
		return fmt.Errorf("--justify and --right cannot be combined")
	}
	if code && (flow || justify) {
		return fmt.Errorf("--code decides per line whether to flow; drop --flow/--justify")
	}
	if justify && fl.Changed("flow") {
		warnf("--justify already implies --flow")
	}

	// Fill in defaults from an .ifmt.toml, if one is in scope, for
	// every flag not given on the command line.
	if path, ok, err := config.Find("."); err != nil {
		return err
	} else if ok {
		def, err := config.Load(path)
		if err != nil {
			return err
		}
		if !fl.Changed("width") && def.Width != nil {
			width = *def.Width
		}
		if !fl.Changed("tabstop") && def.TabStop != nil {
			tabstop = *def.TabStop
		}
		if !fl.Changed("flow") && def.Flow != nil {
			flow = *def.Flow
		}
		if !fl.Changed("justify") && def.Justify != nil {
			justify = *def.Justify
		}
		if !fl.Changed("right") && def.Right != nil {
			right = *def.Right
		}
		if !fl.Changed("code") && def.Code != nil {
			code = *def.Code
		}
	}
	if width == 0 {
		width = 80
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
	}

	eng, err := reflow.New(reflow.Config{
		Width:      width,
		TabStop:    tabstop,
		Flow:       flow,
		Justify:    justify,
		RightAlign: right,
		Code:       code,
		Warn:       warnf,
	})
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	if overwrite {
		for _, path := range args {
			if path == "-" {
				return fmt.Errorf("--overwrite cannot rewrite standard input")
			}
			if err := rewriteFile(eng, path); err != nil {
				return err
			}
		}
		return nil
	}

	out := os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	for _, path := range args {
		if err := formatTo(eng, path, out); err != nil {
			return err
		}
	}
	return nil
}

func formatTo(eng *reflow.Engine, path string, out io.Writer) error {
	if path == "-" {
		return eng.Run(os.Stdin, out)
	}
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()
	if err := eng.Run(in, out); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// rewriteFile reformats path into a temporary file beside it, then
// renames the result over the original so the rewrite is atomic.
func rewriteFile(eng *reflow.Engine, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	info, err := in.Stat()
	if err != nil {
		in.Close()
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".ifmt*")
	if err != nil {
		in.Close()
		return err
	}
	err = eng.Run(in, tmp)
	in.Close()
	if err == nil {
		err = tmp.Chmod(info.Mode().Perm())
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
