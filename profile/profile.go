// Package profile extracts intensity cross-sections from square diffraction
// pattern matrices and renders them as plots.
package profile

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	_ "gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SamplePoint is a single sampling location along a cross-section.
type SamplePoint struct {
	X, Y              float64 // pixel coordinates in the intensity matrix
	DistanceFromStart float64 // distance from the section start in pixels
}

// Point is one point of an extracted intensity profile.
type Point struct {
	Distance  float64 // distance from the section start in pixels
	Intensity float64 // interpolated intensity value
}

// CrossSection defines a sampling line through the center of a square
// intensity matrix at a chosen angle.
type CrossSection struct {
	AngleDegrees float64 // measured counter-clockwise from the +x axis
	GridSize     int     // side length of the matrix being sampled

	// Computed endpoints in pixel coordinates (row index grows downward).
	StartX, StartY float64
	EndX, EndY     float64
	SamplePoints   []SamplePoint
}

// ComputeEndpoints intersects the section line with the matrix bounds.
// The line always passes through the grid center, so it meets the boundary
// at two opposite points.
func (cs *CrossSection) ComputeEndpoints() error {
	if cs.GridSize < 2 {
		return errors.New("grid size must be at least 2")
	}

	c := float64(cs.GridSize-1) / 2.0
	theta := cs.AngleDegrees * math.Pi / 180.0
	dx := math.Cos(theta)
	dy := -math.Sin(theta) // row index grows downward while physical y points up

	// Distance from the center to the nearest boundary along the line.
	tMax := math.Inf(1)
	if math.Abs(dx) > 1e-12 {
		tMax = c / math.Abs(dx)
	}
	if math.Abs(dy) > 1e-12 {
		if t := c / math.Abs(dy); t < tMax {
			tMax = t
		}
	}

	cs.StartX = c - tMax*dx
	cs.StartY = c - tMax*dy
	cs.EndX = c + tMax*dx
	cs.EndY = c + tMax*dy
	return nil
}

// ComputeSamplePoints places samples at 1-pixel intervals along the section.
func (cs *CrossSection) ComputeSamplePoints() {
	xLength := cs.EndX - cs.StartX
	yLength := cs.EndY - cs.StartY
	length := math.Hypot(xLength, yLength)

	n := int(math.Round(length))
	if n < 2 {
		n = 2
	}
	distances := make([]float64, n)
	floats.Span(distances, 0, float64(n-1))

	dxPerStep := xLength / length
	dyPerStep := yLength / length

	cs.SamplePoints = cs.SamplePoints[:0]
	for _, t := range distances {
		cs.SamplePoints = append(cs.SamplePoints, SamplePoint{
			X:                 cs.StartX + t*dxPerStep,
			Y:                 cs.StartY + t*dyPerStep,
			DistanceFromStart: t,
		})
	}
}

// Extract samples the intensity matrix along the section using bilinear
// interpolation.
func Extract(intensityMatrix [][]float64, cs *CrossSection) []Point {
	if len(cs.SamplePoints) == 0 {
		cs.ComputeSamplePoints()
	}

	points := make([]Point, len(cs.SamplePoints))
	for i, sp := range cs.SamplePoints {
		points[i] = Point{
			Distance:  sp.DistanceFromStart,
			Intensity: interpolate(intensityMatrix, sp.X, sp.Y),
		}
	}
	return points
}

// interpolate performs bilinear interpolation on a square matrix at the
// given fractional (x, y) coordinates, clamping at the edges.
func interpolate(matrix [][]float64, x, y float64) float64 {
	n := len(matrix)
	if n == 0 {
		return 0
	}

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if x >= float64(n-1) {
		x = float64(n-1) - 1e-9
	}
	if y >= float64(n-1) {
		y = float64(n-1) - 1e-9
	}

	x0 := int(x)
	y0 := int(y)
	xFrac := x - float64(x0)
	yFrac := y - float64(y0)

	v0 := matrix[y0][x0]*(1-xFrac) + matrix[y0][x0+1]*xFrac
	v1 := matrix[y0+1][x0]*(1-xFrac) + matrix[y0+1][x0+1]*xFrac

	return v0*(1-yFrac) + v1*yFrac
}

// StepTicks is a tick marker with a fixed step between labels.
type StepTicks struct {
	Step   float64
	Format string
}

func (t StepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/t.Step) * t.Step
	for v := start; v <= max; v += t.Step {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: fmt.Sprintf(t.Format, v),
		})
	}
	return ticks
}

// Plot renders an extracted profile as a line plot of the requested pixel
// size and returns it as an image.
func Plot(points []Point, title string, wPx, hPx float64) (image.Image, error) {
	if len(points) == 0 {
		return nil, errors.New("no profile points to plot")
	}

	p := plot.New()

	p.Title.TextStyle.Font.Typeface = "Liberation"
	p.Title.TextStyle.Font.Variant = "Sans"
	p.Title.TextStyle.Font.Size = vg.Points(12)

	p.X.Label.TextStyle.Font.Typeface = "Liberation"
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)

	p.Y.Label.TextStyle.Font.Typeface = "Liberation"
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	p.X.Tick.Label.Font.Typeface = "Liberation"
	p.X.Tick.Label.Font.Variant = "Sans"
	p.X.Tick.Label.Font.Size = vg.Points(10)

	p.Y.Tick.Label.Font.Typeface = "Liberation"
	p.Y.Tick.Label.Font.Variant = "Sans"
	p.Y.Tick.Label.Font.Size = vg.Points(10)

	span := points[len(points)-1].Distance - points[0].Distance
	if span <= 0 {
		span = 1
	}

	p.Title.Text = title
	p.X.Label.Text = "distance from section start (pixels)"
	p.Y.Label.Text = "intensity"
	p.X.Tick.Marker = StepTicks{Step: span / 20, Format: "%.0f"}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(points))
	for i, pt := range points {
		pts[i].X = pt.Distance
		pts[i].Y = pt.Intensity
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	p.Add(line)

	// Render into an in-memory image; vg units map to pixels via DPI.
	const dpi = 96
	width := vg.Length(wPx) * vg.Inch / dpi
	height := vg.Length(hPx) * vg.Inch / dpi

	c := vgimg.New(width, height)
	dc := vgdraw.New(c)
	p.Draw(dc)

	return c.Image(), nil
}

// SavePlot renders a profile plot and writes it to a PNG file.
func SavePlot(filename string, points []Point, title string, wPx, hPx float64) (err error) {
	img, err := Plot(points, title, wPx, hPx)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}
