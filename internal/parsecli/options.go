// internal/parsecli/options.go
package parsecli

import (
	"flag"

	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
)

// Options holds the pretty-parse flags and arguments.
type Options struct {
	DataDir string
	Output  string
	Full    bool
	Version bool
}

// NewFlagSet returns the pretty-parse FlagSet with usage installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Usage(fs, name, "parse BLAST .pretty files into a flat hit table", []string{
		name + " data",
		name + " -o results.tsv /path/to/pretty/files",
		name + " --full data",
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Output, "output", "parsed_results.tsv", "output TSV path [parsed_results.tsv]")
	fs.StringVar(&opt.Output, "o", "parsed_results.tsv", "alias of --output")
	fs.BoolVar(&opt.Full, "full", false, "emit all parsed columns, not just Query/Subject/Hits [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Version {
		return opt, nil
	}

	dir, err := cliutil.InputPath(posArgs, "data")
	if err != nil {
		return opt, err
	}
	opt.DataDir = dir
	return opt, nil
}
