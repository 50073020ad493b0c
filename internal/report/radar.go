package report

import (
	"math"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/Veerenstael/QuickScan/internal/aggregate"
)

const (
	radarRadius = 55.0
	radarScale  = 5.0
)

// drawRadar plots the per-section averages on a 1..5 radar grid, first
// section at twelve o'clock, following sections clockwise. Sections without
// a valid average plot at zero.
func drawRadar(doc *fpdf.Fpdf, tr func(string) string, sections []aggregate.Section) {
	n := len(sections)
	if n == 0 {
		return
	}

	pageW, _ := doc.GetPageSize()
	cx := pageW / 2
	cy := doc.GetY() + radarRadius + 20

	angle := func(i int) float64 {
		return -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	point := func(i int, v float64) (float64, float64) {
		r := radarRadius * v / radarScale
		a := angle(i)
		return cx + r*math.Cos(a), cy + r*math.Sin(a)
	}

	// Grid rings and ring labels.
	doc.SetLineWidth(0.2)
	doc.SetDrawColor(200, 200, 200)
	for ring := 1; ring <= 5; ring++ {
		doc.Polygon(ringPoints(point, n, float64(ring)), "D")
	}
	doc.SetFont("Arial", "", 7)
	doc.SetTextColor(120, 120, 120)
	for ring := 1; ring <= 5; ring++ {
		doc.Text(cx+1.5, cy-radarRadius*float64(ring)/radarScale+1, strconv.Itoa(ring))
	}

	// Spokes and section labels.
	for i := range sections {
		sx, sy := point(i, radarScale)
		doc.Line(cx, cy, sx, sy)
	}
	doc.SetFont("Arial", "", 8)
	doc.SetTextColor(0, 0, 0)
	for i, sec := range sections {
		label := tr(sec.Name)
		lx, ly := point(i, radarScale+0.6)
		w := doc.GetStringWidth(label)
		doc.Text(lx-w/2, ly, label)
	}

	// Value polygon.
	values := make([]fpdf.PointType, n)
	for i, sec := range sections {
		v := 0.0
		if sec.HasAverage {
			v = sec.Average
		}
		x, y := point(i, v)
		values[i] = fpdf.PointType{X: x, Y: y}
	}
	doc.SetDrawColor(accent[0], accent[1], accent[2])
	doc.SetFillColor(accent[0], accent[1], accent[2])
	doc.SetLineWidth(0.5)
	doc.SetAlpha(0.25, "Normal")
	doc.Polygon(values, "F")
	doc.SetAlpha(1, "Normal")
	doc.Polygon(values, "D")

	doc.SetLineWidth(0.2)
	doc.SetDrawColor(0, 0, 0)
	doc.SetY(cy + radarRadius + 15)
}

func ringPoints(point func(int, float64) (float64, float64), n int, v float64) []fpdf.PointType {
	pts := make([]fpdf.PointType, n)
	for i := 0; i < n; i++ {
		x, y := point(i, v)
		pts[i] = fpdf.PointType{X: x, Y: y}
	}
	return pts
}
