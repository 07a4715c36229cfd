// internal/bubblecli/options.go
package bubblecli

import (
	"errors"
	"flag"

	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
)

// Options holds the hit-bubble flags and arguments.
type Options struct {
	clibase.PlotCommon

	Input      string
	MinHits    int
	MaxBubbles int
	Version    bool
}

// NewFlagSet returns the hit-bubble FlagSet with usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "bubble plot of the query × genome hit matrix", []string{
		name + " hit_matrix.tsv",
		name + " -o bubbles.png --max-bubbles 500 matrix.tsv",
		name + " --min-hits 5 --size 25x20 matrix.tsv",
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	clibase.RegisterPlot(fs, &opt.PlotCommon, "bubble_plot.png")
	fs.IntVar(&opt.MinHits, "min-hits", 1, "minimum hit count for a cell to get a bubble [1]")
	fs.IntVar(&opt.MaxBubbles, "max-bubbles", 1000, "cap on bubbles drawn, keeping the highest counts (0 = no cap) [1000]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	in, err := cliutil.InputPath(posArgs, "hit_matrix.tsv")
	if err != nil {
		return opt, err
	}
	opt.Input = in

	if opt.MinHits < 1 {
		return opt, errors.New("--min-hits must be ≥ 1")
	}
	if opt.MaxBubbles < 0 {
		return opt, errors.New("--max-bubbles must be ≥ 0")
	}
	return opt, clibase.ValidatePlot(&opt.PlotCommon)
}
