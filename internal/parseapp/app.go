// internal/parseapp/app.go
package parseapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
	"blasthits/internal/hits"
	"blasthits/internal/parsecli"
	"blasthits/internal/pretty"
)

const name = "pretty-parse"

// Run executes pretty-parse: scan a directory of .pretty files and write the
// flat hit table.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := parsecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := parsecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		clibase.PrintVersion(outw, name)
		return 0
	}

	files, err := pretty.List(opts.DataDir)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(outw, "Found %d *.pretty files in %q\n", len(files), opts.DataDir)

	var all []hits.Record
	parsed := 0
	for _, f := range files {
		fmt.Fprintf(outw, "Processing %s...\n", f)
		recs, err := pretty.ParseFile(f)
		if err != nil {
			fmt.Fprintf(stderr, "warning: skipping %s: %v\n", f, err)
			continue
		}
		all = append(all, recs...)
		parsed++
	}

	out, err := os.Create(opts.Output)
	if err != nil {
		fmt.Fprintf(stderr, "create %s: %v\n", opts.Output, err)
		return 1
	}
	if err := hits.WriteTable(out, all, opts.Full); err != nil {
		out.Close()
		fmt.Fprintf(stderr, "write %s: %v\n", opts.Output, err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "close %s: %v\n", opts.Output, err)
		return 1
	}

	fmt.Fprintf(outw, "Parsed %d hits from %d files\n", len(all), parsed)
	fmt.Fprintf(outw, "Results written to %s\n", opts.Output)

	if err := outw.Flush(); err != nil && !cliutil.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
