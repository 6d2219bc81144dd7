package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 842
	pageH     = 595
	margin    = 30
	rowH      = 14
	fontSize  = 7
	titleSize = 16
	chartH    = 90
)

var colWidths = []float64{20, 62, 36, 36, 50, 50, 50, 50, 28, 28, 150, 150, 72}

// PDF renders the battle as a landscape A4 document: a title block with the
// totals, a bar chart of score differences, then one row per engagement.
func PDF(b Battle) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 18, tr("Battle report: "+b.Name), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", fontSize+1)
	pdf.SetXY(margin, margin+20)
	info := fmt.Sprintf("Engagements: %d   Side 1 losses: %d   Side 2 losses: %d   Generated: %s",
		b.Stats.Engagements, b.Stats.Losses1, b.Stats.Losses2, b.Generated.Format("2006-01-02 15:04"))
	if !b.Created.IsZero() {
		info += "   Created: " + b.Created.Format("2006-01-02 15:04")
	}
	pdf.CellFormat(pageW-2*margin, 10, info, "", 0, "L", false, 0, "")

	y := float64(margin + 40)
	if len(b.Entries) > 0 {
		drawScoreChart(pdf, b, margin, y, pageW-2*margin, chartH)
		y += chartH + 16
	}

	y = drawHeader(pdf, tr, y)
	for i, row := range rows(b.Entries) {
		if y+rowH > pageH-margin {
			pdf.AddPage()
			y = drawHeader(pdf, tr, margin)
		}
		drawRow(pdf, tr, row, y, i%2 == 1)
		if b.Entries[i].TacticalTier >= 4 {
			drawSwords(pdf, margin+tableWidth()-rowH/2, y+rowH/2, rowH/2-3)
		}
		y += rowH
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tableWidth() float64 {
	w := 0.0
	for _, c := range colWidths {
		w += c
	}
	return w
}

func drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, y float64) float64 {
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(220, 224, 230)
	pdf.SetDrawColor(150, 150, 150)
	x := float64(margin)
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], rowH, tr(h), "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	return y + rowH
}

func drawRow(pdf *gofpdf.Fpdf, tr func(string) string, row []any, y float64, shaded bool) {
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetFillColor(244, 246, 248)
	x := float64(margin)
	for i, v := range row {
		text := []rune(fmt.Sprint(v))
		if limit := int(colWidths[i] / 3.2); len(text) > limit && limit > 3 {
			text = append(text[:limit-3], []rune("...")...)
		}
		align := "C"
		if i >= 10 {
			align = "L"
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], rowH, tr(string(text)), "1", 0, align, shaded, 0, "")
		x += colWidths[i]
	}
}

// drawScoreChart draws one bar per engagement for score 1 minus score 2,
// above the axis when side 1 scored higher.
func drawScoreChart(pdf *gofpdf.Fpdf, b Battle, x, y, w, h float64) {
	peak := 1
	for _, e := range b.Entries {
		d := e.Score1 - e.Score2
		if d < 0 {
			d = -d
		}
		peak = max(peak, d)
	}
	mid := y + h/2
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.5)
	pdf.Rect(x, y, w, h, "D")
	pdf.SetDashPattern([]float64{4, 3}, 0)
	pdf.Line(x, mid, x+w, mid)
	pdf.SetDashPattern([]float64{}, 0)

	step := w / float64(len(b.Entries))
	barW := step * 0.7
	for i, e := range b.Entries {
		d := e.Score1 - e.Score2
		bh := float64(d) / float64(peak) * (h/2 - 4)
		if d >= 0 {
			pdf.SetFillColor(60, 110, 170)
		} else {
			pdf.SetFillColor(180, 60, 50)
		}
		bx := x + float64(i)*step + (step-barW)/2
		if bh >= 0 {
			pdf.Rect(bx, mid-bh, barW, bh, "F")
		} else {
			pdf.Rect(bx, mid, barW, -bh, "F")
		}
	}
	pdf.SetLineWidth(1)
}

// drawSwords marks a decisive engagement with crossed lines.
func drawSwords(pdf *gofpdf.Fpdf, x, y, r float64) {
	pdf.SetDrawColor(180, 40, 40)
	pdf.SetLineWidth(1)
	pdf.Line(x-r, y-r, x+r, y+r)
	pdf.Line(x-r, y+r, x+r, y-r)
	pdf.SetDrawColor(150, 150, 150)
	pdf.SetLineWidth(0.5)
}
