// internal/render/render.go

// Package render turns hit matrices into chart images. It owns all gonum/plot
// presentation knowledge; the matrix package stays domain-only.
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Size is a figure size in inches.
type Size struct {
	W, H float64
}

// DefaultDPI matches the upstream savefig resolution.
const DefaultDPI = 300

type writerCanvas interface {
	vg.CanvasSizer
	io.WriterTo
}

// newCanvas picks the backend from the output file extension. DPI applies to
// raster formats only.
func newCanvas(path string, w, h vg.Length, dpi int) (writerCanvas, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case ".jpg", ".jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case ".tif", ".tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case ".pdf":
		return vgpdf.New(w, h), nil
	case ".svg":
		return vgsvg.New(w, h), nil
	default:
		return nil, fmt.Errorf("unsupported image format %q (use .png, .jpg, .tif, .pdf or .svg)", ext)
	}
}

// SavePanels renders a grid of plots (rows of one plot each) to path, stacked
// vertically and aligned.
func SavePanels(rows [][]*plot.Plot, size Size, dpi int, path string) error {
	w := vg.Length(size.W) * vg.Inch
	h := vg.Length(size.H) * vg.Inch

	c, err := newCanvas(path, w, h, dpi)
	if err != nil {
		return err
	}
	dc := draw.New(c)
	tiles := draw.Tiles{
		Rows: len(rows),
		Cols: 1,
		PadY: vg.Millimeter * 4,
	}
	canvases := plot.Align(rows, tiles, dc)
	for i, row := range rows {
		for j, p := range row {
			if p != nil {
				p.Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// SavePlot renders a single plot to path.
func SavePlot(p *plot.Plot, size Size, dpi int, path string) error {
	return SavePanels([][]*plot.Plot{{p}}, size, dpi, path)
}
