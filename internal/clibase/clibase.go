// internal/clibase/clibase.go

// Package clibase holds CLI plumbing shared by the four tools: the usage
// banner, the figure-size flag type, and the flag block common to the two
// plotting commands.
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"blasthits/internal/render"
	"blasthits/internal/version"
)

// SizeFlag parses a figure size given as "WIDTHxHEIGHT" in inches.
type SizeFlag struct {
	Width, Height float64
	set           bool
}

func (s *SizeFlag) String() string {
	if !s.set {
		return ""
	}
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func (s *SizeFlag) Set(v string) error {
	w, h, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return fmt.Errorf("size %q: want WIDTHxHEIGHT, e.g. 15x8", v)
	}
	width, errW := strconv.ParseFloat(w, 64)
	height, errH := strconv.ParseFloat(h, 64)
	if errW != nil || errH != nil {
		return fmt.Errorf("size %q: want WIDTHxHEIGHT, e.g. 15x8", v)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("size %q: dimensions must be positive", v)
	}
	s.Width, s.Height = width, height
	s.set = true
	return nil
}

// IsSet reports whether the flag was supplied.
func (s *SizeFlag) IsSet() bool { return s.set }

// Or returns the flag's size, or def when unset.
func (s *SizeFlag) Or(def render.Size) render.Size {
	if s.set {
		return render.Size{W: s.Width, H: s.Height}
	}
	return def
}

// PlotCommon holds the flags shared by hit-plot and hit-bubble.
type PlotCommon struct {
	Output     string
	Size       SizeFlag
	DPI        int
	NoSimplify bool
}

// RegisterPlot wires the shared plotting flags onto fs.
func RegisterPlot(fs *flag.FlagSet, c *PlotCommon, defaultOutput string) {
	fs.StringVar(&c.Output, "output", defaultOutput, "output image path (.png/.pdf/.svg) ["+defaultOutput+"]")
	fs.StringVar(&c.Output, "o", defaultOutput, "alias of --output")
	fs.Var(&c.Size, "size", "figure size WxH in inches (default: auto)")
	fs.IntVar(&c.DPI, "dpi", render.DefaultDPI, "raster resolution in dots per inch [300]")
	fs.BoolVar(&c.NoSimplify, "no-simplify", false, "do not simplify query/genome names [false]")
}

// ValidatePlot applies the shared plotting invariants.
func ValidatePlot(c *PlotCommon) error {
	if c.Output == "" {
		return errors.New("--output must not be empty")
	}
	if c.DPI <= 0 {
		return errors.New("--dpi must be > 0")
	}
	return nil
}

// Usage installs a shared Usage() handler on fs: banner, examples, then the
// flag defaults.
func Usage(fs *flag.FlagSet, name, tagline string, examples []string) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		if len(examples) > 0 {
			fmt.Fprintln(out, "Examples:")
			for _, ex := range examples {
				fmt.Fprintf(out, "  %s\n", ex)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, "Flags:")
		fs.PrintDefaults()
	}
}

// PrintVersion writes the standard version line.
func PrintVersion(w io.Writer, name string) {
	fmt.Fprintf(w, "%s version %s\n", name, version.Version)
}
