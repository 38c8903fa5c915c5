// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sayujks0071/life-sub001/modes"
	"github.com/sayujks0071/life-sub001/shape"
)

// figure size
var (
	FigWidth  = 8 * vg.Inch
	FigHeight = 5 * vg.Inch
)

// Curve holds one line of a figure
type Curve struct {
	Label string    // legend
	X     []float64 // x-values
	Y     []float64 // y-values
}

// Figure holds the data of one figure
type Figure struct {
	Title  string   // title
	Xlabel string   // x-axis label
	Ylabel string   // y-axis label
	Curves []*Curve // lines
}

// Save draws all curves and saves the figure to dirout/fnkey.png
func (o *Figure) Save(dirout, fnkey string) (fn string, err error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlabel
	p.Y.Label.Text = o.Ylabel
	p.Add(plotter.NewGrid())
	for i, c := range o.Curves {
		if len(c.X) != len(c.Y) {
			return "", chk.Err("figure %q: curve %q has inconsistent data: %d != %d", fnkey, c.Label, len(c.X), len(c.Y))
		}
		pts := make(plotter.XYs, len(c.X))
		for j := range c.X {
			pts[j].X = c.X[j]
			pts[j].Y = c.Y[j]
		}
		line, e := plotter.NewLine(pts)
		if e != nil {
			return "", chk.Err("figure %q: %v", fnkey, e)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Dashes = plotutil.Dashes(i)
		p.Add(line)
		if c.Label != "" {
			p.Legend.Add(c.Label, line)
		}
	}
	p.Legend.Top = true
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("figure %q: cannot create directory:\n%v", fnkey, err)
	}
	fn = filepath.Join(dirout, fnkey+".png")
	if err = p.Save(FigWidth, FigHeight, fn); err != nil {
		return "", chk.Err("figure %q: cannot save:\n%v", fnkey, err)
	}
	io.Pf("file <%s> written\n", fn)
	return
}

// PlotShapes plots y(x) of all shapes into <key>-shapes.png
func PlotShapes(dirout, key string, names []string, shapes ...*shape.Shape) (fn string, err error) {
	if len(names) != len(shapes) {
		return "", chk.Err("PlotShapes: number of names (%d) and shapes (%d) must be equal", len(names), len(shapes))
	}
	fig := &Figure{Title: "centreline", Xlabel: "x", Ylabel: "y"}
	for i, shp := range shapes {
		fig.Curves = append(fig.Curves, &Curve{Label: names[i], X: shp.X, Y: shp.Y})
	}
	return fig.Save(dirout, key+"-shapes")
}

// PlotModes plots all mode shapes into <key>-modes.png
func PlotModes(dirout, key string, s []float64, sp *modes.Spectrum) (fn string, err error) {
	if sp == nil {
		return "", chk.Err("PlotModes: spectrum is nil")
	}
	fig := &Figure{Title: "eigenmodes", Xlabel: "s", Ylabel: "V"}
	for i := 0; i < sp.Len(); i++ {
		fig.Curves = append(fig.Curves, &Curve{
			Label: io.Sf("V%d: ω=%.4g", i+1, sp.Omega[i]),
			X:     s,
			Y:     sp.Modes[i],
		})
	}
	return fig.Save(dirout, key+"-modes")
}
