package report

import (
	"github.com/go-pdf/fpdf"

	"github.com/Veerenstael/QuickScan/internal/aggregate"
)

// Traffic-light buckets for a section average on the 1..5 scale.
const (
	bucketRed    = "red"
	bucketYellow = "yellow"
	bucketGreen  = "green"
)

const (
	housingW   = 12.0
	housingH   = 26.0
	lampRadius = 3.0
	rowH       = 32.0
)

// bucketFor maps a section average into its traffic-light bucket:
// below 2.5 red, up to 3.5 yellow, above green.
func bucketFor(v float64) string {
	if v < 2.5 {
		return bucketRed
	}
	if v <= 3.5 {
		return bucketYellow
	}
	return bucketGreen
}

func lampColor(name string) [3]int {
	switch name {
	case bucketRed:
		return [3]int{217, 51, 51}
	case bucketYellow:
		return [3]int{255, 204, 0}
	case bucketGreen:
		return [3]int{0, 179, 77}
	default:
		return [3]int{153, 153, 153}
	}
}

func dimmed(c [3]int) [3]int {
	return [3]int{c[0] * 45 / 100, c[1] * 45 / 100, c[2] * 45 / 100}
}

// drawStoplight renders one traffic-light housing per section with the lamp
// for the section's bucket lit. Sections without a valid average show all
// lamps dimmed and "-" as their score.
func drawStoplight(doc *fpdf.Fpdf, tr func(string) string, sections []aggregate.Section) {
	_, pageH := doc.GetPageSize()
	left, _, _, bottom := doc.GetMargins()

	for _, sec := range sections {
		if doc.GetY()+rowH > pageH-bottom-3 {
			doc.AddPage()
		}
		x, y := left, doc.GetY()

		doc.SetFillColor(38, 43, 51)
		doc.RoundedRect(x, y, housingW, housingH, 2, "1234", "F")

		active := ""
		if sec.HasAverage {
			active = bucketFor(sec.Average)
		}

		lampX := x + housingW/2
		lamps := []string{bucketRed, bucketYellow, bucketGreen}
		for i, name := range lamps {
			lampY := y + housingH*(float64(i)+0.5)/float64(len(lamps))
			col := lampColor(name)
			if name != active {
				col = dimmed(col)
			}
			doc.SetFillColor(col[0], col[1], col[2])
			doc.SetDrawColor(255, 255, 255)
			lineW := 0.3
			if name == active {
				lineW = 0.6
			}
			doc.SetLineWidth(lineW)
			doc.Circle(lampX, lampY, lampRadius, "FD")
		}
		doc.SetLineWidth(0.2)
		doc.SetDrawColor(0, 0, 0)

		textX := x + housingW + 6
		doc.SetFont("Arial", "B", 11)
		doc.SetTextColor(darkBlue[0], darkBlue[1], darkBlue[2])
		doc.Text(textX, y+10, tr(sec.Name))
		doc.SetFont("Arial", "", 10)
		doc.SetTextColor(0, 0, 0)
		score := "-"
		if sec.HasAverage {
			score = FormatScore(sec.Average)
		}
		doc.Text(textX, y+17, tr("Score (klant): "+score))

		doc.SetY(y + rowH)
	}
}
