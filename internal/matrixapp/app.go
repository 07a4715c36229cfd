// internal/matrixapp/app.go
package matrixapp

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
	"blasthits/internal/matrix"
	"blasthits/internal/matrixcli"
	"blasthits/internal/render"
)

const name = "hit-matrix"

// Run executes hit-matrix: read the flat hit table, pivot it into the
// query × genome matrix, filter, and write it out.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := matrixcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := matrixcli.ParseArgs(fs, argv)
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

	in, err := os.Open(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "open %s: %v\n", opts.Input, err)
		return 1
	}
	recs, err := hits.ReadTable(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(stderr, "read %s: %v\n", opts.Input, err)
		return 1
	}
	fmt.Fprintf(outw, "Found %d total hits\n", len(recs))

	m := matrix.Build(recs)
	m = m.FilterMinHits(opts.MinHits)
	m = m.TopQueries(opts.TopQueries)
	m = m.TopGenomes(opts.TopGenomes)

	out, err := os.Create(opts.Output)
	if err != nil {
		fmt.Fprintf(stderr, "create %s: %v\n", opts.Output, err)
		return 1
	}
	if err := m.Write(out, true); err != nil {
		out.Close()
		fmt.Fprintf(stderr, "write %s: %v\n", opts.Output, err)
		return 1
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(stderr, "close %s: %v\n", opts.Output, err)
		return 1
	}

	fmt.Fprintf(outw, "Matrix saved to %s\n", opts.Output)
	fmt.Fprintf(outw, "Matrix dimensions: %d queries × %d genomes\n", len(m.Queries), len(m.Genomes))
	fmt.Fprintf(outw, "Total hits in matrix: %d\n", m.Total())
	if cells := len(m.Queries) * len(m.Genomes); cells > 0 {
		fmt.Fprintf(outw, "Non-zero entries: %d (%.2f%%)\n", m.NonZero(), 100*float64(m.NonZero())/float64(cells))
	}

	if !opts.NoSummary && opts.Summary > 0 {
		printSummary(outw, m, opts.Summary)
	}

	if err := outw.Flush(); err != nil && !cliutil.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func printSummary(w io.Writer, m *matrix.Matrix, topN int) {
	queries := render.QuerySeries(m).Sorted(false).Top(topN)
	fmt.Fprintf(w, "\nTop %d queries by total hits:\n", queries.Len())
	for i, q := range queries.Names {
		fmt.Fprintf(w, "  %2d. %s: %d hits\n", i+1, q, queries.Hits[i])
	}

	genomes := render.GenomeSeries(m).Sorted(false).Top(topN)
	fmt.Fprintf(w, "\nTop %d genomes by total hits:\n", genomes.Len())
	for i, g := range genomes.Names {
		fmt.Fprintf(w, "  %2d. %s: %d hits\n", i+1, g, genomes.Hits[i])
	}
}
