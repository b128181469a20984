// Copyright (c) 2026 Starflight Team
// Starflight - interstellar mission planning toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/perihelion/starflight/internal/ship"
)

// WriteHistoryPlot renders the mission history as a PNG with three stacked
// panels sharing the time axis: velocity in c, fuel in kg and position in
// light years. A dashed rule marks the destination distance in the
// position panel.
func WriteHistoryPlot(logs ship.ParsedLogs, destinationLy float64, path string) error {
	if len(logs.TimesYears) == 0 {
		return fmt.Errorf("plot: empty logbook")
	}

	velocity, err := panelPlot("Velocity", "velocity (c)", logs.TimesYears, logs.VelocitiesC)
	if err != nil {
		return err
	}
	fuel, err := panelPlot("Fuel", "fuel (kg)", logs.TimesYears, logs.FuelsKg)
	if err != nil {
		return err
	}
	position, err := panelPlot("Position", "position (ly)", logs.TimesYears, logs.PositionsLy)
	if err != nil {
		return err
	}
	position.X.Label.Text = "time (years)"
	if destinationLy != 0 {
		if err := addDestinationRule(position, logs.TimesYears, destinationLy); err != nil {
			return err
		}
	}

	img := vgimg.New(7*vg.Inch, 9*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 3, Cols: 1, PadY: vg.Millimeter * 2}
	panels := [][]*plot.Plot{{velocity}, {fuel}, {position}}
	canvases := plot.Align(panels, tiles, dc)
	for r := range panels {
		panels[r][0].Draw(canvases[r][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("plot: write %s: %w", path, err)
	}
	return nil
}

func panelPlot(title, yLabel string, times, values []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i].X = times[i]
		pts[i].Y = values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: %s panel: %w", title, err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Add(plotter.NewGrid())
	return p, nil
}

// addDestinationRule draws a dashed horizontal line at the destination
// distance across the whole time range.
func addDestinationRule(p *plot.Plot, times []float64, destinationLy float64) error {
	rule := plotter.XYs{
		{X: times[0], Y: destinationLy},
		{X: times[len(times)-1], Y: destinationLy},
	}
	line, err := plotter.NewLine(rule)
	if err != nil {
		return fmt.Errorf("plot: destination rule: %w", err)
	}
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(line)
	return nil
}
