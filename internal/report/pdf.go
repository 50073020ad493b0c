// Package report renders the QuickScan result document. The layout follows
// the product's report: a dark header band, submitter metadata, per-section
// question tables with the customer score band per row, a radar chart of the
// section averages, and a stoplight overview of the section buckets.
package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Veerenstael/QuickScan/internal/aggregate"
)

// Version identifies the report build stamped into the footer.
const Version = "QS-2025-10-10"

// Renderer produces the binary report document.
type Renderer interface {
	Render(meta aggregate.Metadata, sections []aggregate.Section, generatedAt time.Time) ([]byte, error)
}

var (
	darkBlue = [3]int{34, 51, 68}
	accent   = [3]int{19, 209, 124}
	cellBand = [3]int{35, 49, 74}
)

const (
	cellPad   = 1.4
	lineH     = 7.0
	scoreBand = 8.0
)

// PDF renders reports with the FPDF engine.
type PDF struct{}

// NewPDF constructs the PDF renderer.
func NewPDF() *PDF {
	return &PDF{}
}

// Render produces the full report as a PDF byte slice. The returned slice is
// fully materialized; callers may dispatch it as soon as Render returns.
func (p *PDF) Render(meta aggregate.Metadata, sections []aggregate.Section, generatedAt time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle("Veerenstael Quick Scan", true)
	doc.SetCreationDate(generatedAt)
	doc.SetModificationDate(generatedAt)

	doc.SetHeaderFunc(func() {
		pageW, _ := doc.GetPageSize()
		doc.SetFillColor(darkBlue[0], darkBlue[1], darkBlue[2])
		doc.Rect(0, 0, pageW, 24, "F")
		doc.SetTextColor(255, 255, 255)
		doc.SetFont("Arial", "B", 14)
		doc.SetXY(0, 7)
		doc.CellFormat(0, 10, "Quick Scan", "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.SetY(26)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Arial", "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 8, tr("Veerenstael Quick Scan · "+Version), "", 0, "C", false, 0, "")
		doc.SetTextColor(0, 0, 0)
	})

	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()
	doc.Ln(2)

	keyValue(doc, tr, "Datum:", generatedAt.Format("2006-01-02 15:04"))
	keyValue(doc, tr, "Naam:", meta.Name)
	keyValue(doc, tr, "Bedrijf:", meta.Company)
	keyValue(doc, tr, "E-mail:", meta.Email)
	keyValue(doc, tr, "Telefoon:", meta.Phone)
	if meta.Intro != "" {
		doc.Ln(2)
		doc.SetFont("Arial", "", 11)
		doc.MultiCell(0, lineH, tr(meta.Intro), "", "L", false)
	}
	doc.Ln(3)

	sectionTitle(doc, tr, "Vragen en antwoorden")
	for _, sec := range sections {
		p.sectionTable(doc, tr, sec)
		doc.Ln(1)
	}

	if len(sections) > 0 {
		doc.AddPage()
		sectionTitle(doc, tr, "Gemiddelde score per onderwerp (klant)")
		drawRadar(doc, tr, sections)

		doc.AddPage()
		sectionTitle(doc, tr, "Stoplichtoverzicht per onderwerp")
		doc.Ln(2)
		drawStoplight(doc, tr, sections)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *PDF) sectionTable(doc *fpdf.Fpdf, tr func(string) string, sec aggregate.Section) {
	doc.SetFont("Arial", "B", 12)
	doc.SetTextColor(darkBlue[0], darkBlue[1], darkBlue[2])
	doc.CellFormat(0, 7, tr(sec.Name), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)

	w1, w2 := columnWidths(doc)

	doc.SetFont("Arial", "B", 11)
	doc.SetFillColor(darkBlue[0], darkBlue[1], darkBlue[2])
	doc.SetTextColor(255, 255, 255)
	doc.CellFormat(w1, 8, "Vraag", "1", 0, "L", true, 0, "")
	doc.CellFormat(w2, 8, tr("Antwoord / Cijfer (klant)"), "1", 1, "L", true, 0, "")
	doc.SetTextColor(0, 0, 0)

	for _, q := range sec.Questions {
		p.questionRow(doc, tr, w1, w2, q)
	}

	if sec.HasAverage {
		doc.SetFont("Arial", "B", 10)
		doc.CellFormat(0, 6, tr("Gemiddelde (klant): "+FormatScore(sec.Average)), "", 1, "R", false, 0, "")
	}
}

func (p *PDF) questionRow(doc *fpdf.Fpdf, tr func(string) string, w1, w2 float64, q aggregate.Question) {
	left := tr(q.Text)
	right := tr("Antwoord: " + q.Answer)

	doc.SetFont("Arial", "B", 11)
	leftLines := lineCount(doc, left, w1-2*cellPad)
	doc.SetFont("Arial", "", 11)
	rightLines := lineCount(doc, right, w2-2*cellPad)

	hLeft := float64(leftLines)*lineH + 2*cellPad
	hRight := float64(rightLines)*lineH + 2*cellPad + scoreBand
	h := hLeft
	if hRight > h {
		h = hRight
	}

	// Break the page before the row rather than splitting it.
	_, pageH := doc.GetPageSize()
	_, _, _, bottom := doc.GetMargins()
	if doc.GetY()+h > pageH-bottom-3 {
		doc.AddPage()
	}

	x0, y0 := doc.GetX(), doc.GetY()
	doc.Rect(x0, y0, w1, h, "D")
	doc.Rect(x0+w1, y0, w2, h, "D")

	doc.SetXY(x0+cellPad, y0+cellPad)
	doc.SetFont("Arial", "B", 11)
	doc.MultiCell(w1-2*cellPad, lineH, left, "", "L", false)

	doc.SetXY(x0+w1+cellPad, y0+cellPad)
	doc.SetFont("Arial", "", 11)
	doc.MultiCell(w2-2*cellPad, lineH, right, "", "L", false)

	bandY := y0 + h - scoreBand
	doc.SetFillColor(cellBand[0], cellBand[1], cellBand[2])
	doc.Rect(x0+w1, bandY, w2, scoreBand, "F")
	doc.SetTextColor(255, 255, 255)
	doc.SetXY(x0+w1+cellPad, bandY+1)
	doc.CellFormat(w2-cellPad, 6, tr("Cijfer klant: "+q.DisplayScore()), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)

	doc.SetXY(x0, y0+h)
}

// FormatScore renders an average with one decimal, e.g. "4.0".
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func sectionTitle(doc *fpdf.Fpdf, tr func(string) string, txt string) {
	doc.SetFont("Arial", "B", 12)
	doc.SetTextColor(accent[0], accent[1], accent[2])
	doc.CellFormat(0, 8, tr(txt), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
}

func keyValue(doc *fpdf.Fpdf, tr func(string) string, key, value string) {
	doc.SetFont("Arial", "", 11)
	doc.CellFormat(40, lineH, tr(key), "", 0, "L", false, 0, "")
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(0, lineH, tr(value), "", 1, "L", false, 0, "")
}

func columnWidths(doc *fpdf.Fpdf) (float64, float64) {
	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	total := pageW - left - right
	w1 := total * 0.48
	return w1, total - w1
}

func lineCount(doc *fpdf.Fpdf, txt string, w float64) int {
	lines := doc.SplitText(txt, w)
	if len(lines) == 0 {
		return 1
	}
	return len(lines)
}
