// internal/render/bubble.go
package render

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"blasthits/internal/matrix"
)

// Cell is one nonzero matrix cell selected for the bubble plot.
type Cell struct {
	QueryIdx  int
	GenomeIdx int
	Count     int
}

// SelectCells picks the cells to draw: those with count ≥ minHits, capped at
// maxBubbles by keeping the highest counts (ties broken by row-major matrix
// order). minHits below 1 behaves as 1; maxBubbles ≤ 0 means no cap.
func SelectCells(m *matrix.Matrix, minHits, maxBubbles int) []Cell {
	if minHits < 1 {
		minHits = 1
	}
	var cells []Cell
	for i, row := range m.Cells {
		for j, v := range row {
			if v >= minHits {
				cells = append(cells, Cell{QueryIdx: i, GenomeIdx: j, Count: v})
			}
		}
	}
	if maxBubbles > 0 && len(cells) > maxBubbles {
		sort.SliceStable(cells, func(a, b int) bool { return cells[a].Count > cells[b].Count })
		cells = cells[:maxBubbles]
	}
	return cells
}

// Bubble marker radii in points; area scales with hit count, so radius scales
// with its square root (upstream sizing rule).
const (
	minRadius = vg.Length(2)
	maxRadius = vg.Length(12)
)

// BubblePlot builds the query × genome bubble chart. The full axes of m are
// kept as nominal ticks even when cells is a filtered subset, so bubble
// positions stay comparable across filter settings.
func BubblePlot(m *matrix.Matrix, cells []Cell, queryNames, genomeNames []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Query-Genome Hit Matrix (%d pairs)", len(cells))
	p.X.Label.Text = "Genomes"
	p.Y.Label.Text = "Queries"
	p.Add(plotter.NewGrid())

	if len(cells) > 0 {
		maxCount := 0
		for _, c := range cells {
			if c.Count > maxCount {
				maxCount = c.Count
			}
		}
		xys := make(plotter.XYs, len(cells))
		for i, c := range cells {
			xys[i] = plotter.XY{X: float64(c.GenomeIdx), Y: float64(c.QueryIdx)}
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			c := cells[i]
			scale := math.Sqrt(float64(c.Count)) / math.Sqrt(float64(maxCount))
			return draw.GlyphStyle{
				Color:  plotutil.Color(c.QueryIdx),
				Radius: minRadius + vg.Length(scale)*maxRadius,
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)
	}

	p.NominalX(genomeNames...)
	p.NominalY(queryNames...)
	rotateTicks(&p.X)
	return p, nil
}

// AutoBubbleSize scales the figure with the matrix dimensions, within the
// upstream bounds.
func AutoBubbleSize(nQueries, nGenomes int) Size {
	w := math.Max(20, 0.5*float64(nGenomes))
	h := math.Max(15, 0.3*float64(nQueries))
	return Size{W: math.Min(w, 50), H: math.Min(h, 40)}
}
