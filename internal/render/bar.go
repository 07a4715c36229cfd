// internal/render/bar.go
package render

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarPlot builds a bar chart of values per named entity. horizontal flips the
// bars; each bar carries its value as a text label, like the upstream plots.
func BarPlot(title, entityLabel, valueLabel string, names []string, values []int, horizontal bool) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title

	vals := make(plotter.Values, len(values))
	for i, v := range values {
		vals[i] = float64(v)
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(15))
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Width = 0
	bars.Color = plotutil.Color(0)
	bars.Horizontal = horizontal
	p.Add(bars)

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(values)),
		Labels: make([]string, len(values)),
	}
	for i, v := range values {
		if horizontal {
			labels.XYs[i] = plotter.XY{X: float64(v), Y: float64(i)}
		} else {
			labels.XYs[i] = plotter.XY{X: float64(i), Y: float64(v)}
		}
		labels.Labels[i] = strconv.Itoa(v)
	}
	txt, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(txt)

	if horizontal {
		p.NominalY(names...)
		p.X.Label.Text = valueLabel
		p.Y.Label.Text = entityLabel
	} else {
		p.NominalX(names...)
		p.X.Label.Text = entityLabel
		p.Y.Label.Text = valueLabel
		rotateTicks(&p.X)
	}
	return p, nil
}

// rotateTicks slants an axis' tick labels 45° so long entity names stay
// readable.
func rotateTicks(ax *plot.Axis) {
	ax.Tick.Label.Rotation = math.Pi / 4
	ax.Tick.Label.XAlign = draw.XRight
	ax.Tick.Label.YAlign = draw.YCenter
}

// CombinedPlots builds the two-panel layout: total hits on top, unique
// partner counts below, same entity ordering.
func CombinedPlots(s Series, entityLabel, partnerLabel string) ([][]*plot.Plot, error) {
	top, err := BarPlot("Total Hits per "+entityLabel, entityLabel, "Total Number of Hits", s.Names, s.Hits, false)
	if err != nil {
		return nil, err
	}
	bottom, err := BarPlot(partnerLabel+" per "+entityLabel, entityLabel, "Number of "+partnerLabel, s.Names, s.Partners, false)
	if err != nil {
		return nil, err
	}
	return [][]*plot.Plot{{top}, {bottom}}, nil
}
