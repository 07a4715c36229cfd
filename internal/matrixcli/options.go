// internal/matrixcli/options.go
package matrixcli

import (
	"errors"
	"flag"

	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
)

// Options holds the hit-matrix flags and arguments.
type Options struct {
	Input      string
	Output     string
	MinHits    int
	TopQueries int
	TopGenomes int
	Summary    int
	NoSummary  bool
	Version    bool
}

// NewFlagSet returns the hit-matrix FlagSet with usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "pivot a flat hit table into a query × genome matrix", []string{
		name + " parsed_results.tsv",
		name + " -o matrix.tsv --min-hits 5 results.tsv",
		name + " --top-queries 20 --top-genomes 30 results.tsv",
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Output, "output", "hit_matrix.tsv", "output matrix TSV path [hit_matrix.tsv]")
	fs.StringVar(&opt.Output, "o", "hit_matrix.tsv", "alias of --output")
	fs.IntVar(&opt.MinHits, "min-hits", 0, "drop queries with fewer total hits (0 = keep all) [0]")
	fs.IntVar(&opt.TopQueries, "top-queries", 0, "keep only the N queries with the most hits (0 = all) [0]")
	fs.IntVar(&opt.TopGenomes, "top-genomes", 0, "keep only the N genomes with the most hits (0 = all) [0]")
	fs.IntVar(&opt.Summary, "summary", 10, "number of top entries in the printed summary [10]")
	fs.BoolVar(&opt.NoSummary, "no-summary", false, "skip printing the matrix summary [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	in, err := cliutil.InputPath(posArgs, "parsed_results.tsv")
	if err != nil {
		return opt, err
	}
	opt.Input = in

	// Validation happens before any file I/O.
	if opt.MinHits < 0 {
		return opt, errors.New("--min-hits must be ≥ 0")
	}
	if opt.TopQueries < 0 {
		return opt, errors.New("--top-queries must be ≥ 0")
	}
	if opt.TopGenomes < 0 {
		return opt, errors.New("--top-genomes must be ≥ 0")
	}
	if opt.Summary < 0 {
		return opt, errors.New("--summary must be ≥ 0")
	}
	return opt, nil
}
