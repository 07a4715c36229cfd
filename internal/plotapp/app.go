// internal/plotapp/app.go
package plotapp

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"blasthits/internal/clibase"
	"blasthits/internal/cliutil"
	"blasthits/internal/hits"
	"blasthits/internal/matrix"
	"blasthits/internal/plotcli"
	"blasthits/internal/render"
)

const name = "hit-plot"

// Run executes hit-plot: summarize one axis of the hit matrix and render a
// bar, horizontal bar, or combined two-panel chart.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := plotcli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := plotcli.ParseArgs(fs, argv)
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

	var (
		s            render.Series
		entityLabel  string
		partnerLabel string
		defaultSize  render.Size
	)
	if opts.Axis == plotcli.AxisGenome {
		s = render.GenomeSeries(m)
		entityLabel = "Genome"
		partnerLabel = "Unique Queries"
		defaultSize = render.Size{W: 12, H: 8}
		if !opts.NoSimplify {
			for i, n := range s.Names {
				s.Names[i] = hits.CleanGenome(n)
			}
		}
	} else {
		s = render.QuerySeries(m)
		entityLabel = "Query"
		partnerLabel = "Unique Genomes"
		defaultSize = render.Size{W: 15, H: 8}
		if !opts.NoSimplify {
			for i, n := range s.Names {
				s.Names[i] = hits.SimplifyQuery(n)
			}
		}
	}

	s = s.Sorted(opts.Metric == plotcli.MetricPartners).Top(opts.Top)

	size := opts.Size.Or(defaultSize)
	if opts.Metric == plotcli.MetricCombined || opts.Type == plotcli.TypeCombined {
		if !opts.Size.IsSet() {
			size.H *= 1.2
		}
		panels, err := render.CombinedPlots(s, entityLabel, partnerLabel)
		if err != nil {
			fmt.Fprintf(stderr, "build plot: %v\n", err)
			return 1
		}
		if err := render.SavePanels(panels, size, opts.DPI, opts.Output); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	} else {
		values := s.Hits
		valueLabel := "Total Number of Hits"
		title := "Total Hits per " + entityLabel
		if opts.Metric == plotcli.MetricPartners {
			values = s.Partners
			valueLabel = "Number of " + partnerLabel
			title = partnerLabel + " per " + entityLabel
		}
		p, err := render.BarPlot(title, entityLabel, valueLabel, s.Names, values, opts.Type == plotcli.TypeHorizontal)
		if err != nil {
			fmt.Fprintf(stderr, "build plot: %v\n", err)
			return 1
		}
		if err := render.SavePlot(p, size, opts.DPI, opts.Output); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	fmt.Fprintf(outw, "Plot saved to %s\n", opts.Output)

	printSummary(outw, s, entityLabel, partnerLabel)

	if err := outw.Flush(); err != nil && !cliutil.IsBrokenPipe(err) {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func printSummary(w io.Writer, s render.Series, entityLabel, partnerLabel string) {
	plural := "queries"
	if entityLabel == "Genome" {
		plural = "genomes"
	}
	fmt.Fprintf(w, "\nTotal hits across %d %s: %d\n", s.Len(), plural, s.TotalHits())
	if s.Len() > 0 {
		fmt.Fprintf(w, "Average hits per %s: %.1f\n", strings.ToLower(entityLabel), float64(s.TotalHits())/float64(s.Len()))
	}
	top := s.Top(10)
	fmt.Fprintf(w, "Top %d %s:\n", top.Len(), plural)
	for i, n := range top.Names {
		fmt.Fprintf(w, "  %2d. %s: %d hits, %d %s\n", i+1, n, top.Hits[i], top.Partners[i], partnerLabel)
	}
}
