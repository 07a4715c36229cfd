// internal/plotcli/options.go
package plotcli

import (
	"errors"
	"flag"
	"fmt"

	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
)

// Axis / metric / type values.
const (
	AxisQuery  = "query"
	AxisGenome = "genome"

	MetricHits     = "hits"
	MetricPartners = "partners"
	MetricCombined = "combined"

	TypeBar        = "bar"
	TypeHorizontal = "horizontal"
	TypeCombined   = "combined"
)

// Options holds the hit-plot flags and arguments.
type Options struct {
	clibase.PlotCommon

	Input   string
	Axis    string
	Metric  string
	Type    string
	Top     int
	Version bool
}

// NewFlagSet returns the hit-plot FlagSet with usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "plot per-query or per-genome hit totals from a hit matrix", []string{
		name + " hit_matrix.tsv",
		name + " --axis genome --top 15 -o genomes.png matrix.tsv",
		name + " --metric combined --size 15x10 -o combined.pdf matrix.tsv",
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	clibase.RegisterPlot(fs, &opt.PlotCommon, "hit_plot.png")
	fs.StringVar(&opt.Axis, "axis", AxisQuery, "axis to summarize: query | genome [query]")
	fs.StringVar(&opt.Metric, "metric", MetricHits, "metric: hits | partners | combined [hits]")
	fs.StringVar(&opt.Type, "type", TypeBar, "plot type: bar | horizontal | combined [bar]")
	fs.StringVar(&opt.Type, "t", TypeBar, "alias of --type")
	fs.IntVar(&opt.Top, "top", 0, "show only the top N entities (0 = all) [0]")
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

	switch opt.Axis {
	case AxisQuery, AxisGenome:
	default:
		return opt, fmt.Errorf("invalid --axis %q", opt.Axis)
	}
	switch opt.Metric {
	case MetricHits, MetricPartners, MetricCombined:
	default:
		return opt, fmt.Errorf("invalid --metric %q", opt.Metric)
	}
	switch opt.Type {
	case TypeBar, TypeHorizontal, TypeCombined:
	default:
		return opt, fmt.Errorf("invalid --type %q", opt.Type)
	}
	if opt.Top < 0 {
		return opt, errors.New("--top must be ≥ 0")
	}
	return opt, clibase.ValidatePlot(&opt.PlotCommon)
}
