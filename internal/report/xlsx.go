package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	engagementsSheet = "Engagements"
	summarySheet     = "Summary"
)

// XLSX renders the battle as a workbook with an engagement sheet and a
// summary sheet.
func XLSX(b Battle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", engagementsSheet); err != nil {
		return nil, err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(engagementsSheet, cell, h); err != nil {
			return nil, err
		}
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DCE0E6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(engagementsSheet, 1, 1, headerStyle); err != nil {
		return nil, err
	}

	for i, row := range rows(b.Entries) {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(engagementsSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(engagementsSheet, "B", "B", 18)
	_ = f.SetColWidth(engagementsSheet, "C", "J", 12)
	_ = f.SetColWidth(engagementsSheet, "K", "L", 40)
	_ = f.SetColWidth(engagementsSheet, "M", "M", 28)

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	summary := [][]any{
		{"Battle", b.Name},
		{"Engagements", b.Stats.Engagements},
		{"Side 1 losses", b.Stats.Losses1},
		{"Side 2 losses", b.Stats.Losses2},
		{"Generated", b.Generated.Format("2006-01-02 15:04")},
	}
	if !b.Created.IsZero() {
		summary = append(summary, []any{"Created", b.Created.Format("2006-01-02 15:04")})
	}
	for i, row := range summary {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 16)
	_ = f.SetColWidth(summarySheet, "B", "B", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
