// internal/bubbleapp/app.go
package bubbleapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"blasthits/internal/bubblecli"
	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
	"blasthits/internal/hits"
	"blasthits/internal/matrix"
	"blasthits/internal/render"
)

const name = "hit-bubble"

// Run executes hit-bubble: render the query × genome matrix as a bubble plot
// with marker area proportional to hit count.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := bubblecli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := bubblecli.ParseArgs(fs, argv)
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
	m, err := matrix.Read(in)
	in.Close()
	if err != nil {
		fmt.Fprintf(stderr, "read %s: %v\n", opts.Input, err)
		return 1
	}
	fmt.Fprintf(outw, "Matrix dimensions: %d queries × %d genomes\n", len(m.Queries), len(m.Genomes))

	cells := render.SelectCells(m, opts.MinHits, opts.MaxBubbles)
	fmt.Fprintf(outw, "Found %d query-genome pairs with ≥%d hits\n", len(cells), opts.MinHits)

	queryNames := append([]string(nil), m.Queries...)
	genomeNames := append([]string(nil), m.Genomes...)
	if !opts.NoSimplify {
		for i, n := range queryNames {
			queryNames[i] = hits.SimplifyQuery(n)
		}
		for i, n := range genomeNames {
			genomeNames[i] = hits.CleanGenome(n)
		}
	}

	p, err := render.BubblePlot(m, cells, queryNames, genomeNames)
	if err != nil {
		fmt.Fprintf(stderr, "build plot: %v\n", err)
		return 1
	}
	size := opts.Size.Or(render.AutoBubbleSize(len(m.Queries), len(m.Genomes)))
	if err := render.SavePlot(p, size, opts.DPI, opts.Output); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(outw, "Plot saved to %s\n", opts.Output)

	printSummary(outw, m, cells, queryNames, genomeNames)

	if err := outw.Flush(); err != nil && !cliutil.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func printSummary(w io.Writer, m *matrix.Matrix, cells []render.Cell, queryNames, genomeNames []string) {
	if total := len(m.Queries) * len(m.Genomes); total > 0 {
		fmt.Fprintf(w, "Matrix coverage: %d/%d (%.2f%%) cells drawn\n",
			len(cells), total, 100*float64(len(cells))/float64(total))
	}
	if len(cells) == 0 {
		return
	}

	top := append([]render.Cell(nil), cells...)
	sort.SliceStable(top, func(a, b int) bool { return top[a].Count > top[b].Count })
	if len(top) > 10 {
		top = top[:10]
	}
	fmt.Fprintf(w, "\nTop %d query-genome pairs by hits:\n", len(top))
	for i, c := range top {
		fmt.Fprintf(w, "  %2d. %s × %s: %d hits\n", i+1, queryNames[c.QueryIdx], genomeNames[c.GenomeIdx], c.Count)
	}
}
