package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/extrame/xls"
)

// extractXLSText flattens an .xls statement sheet into plain text, one row
// per line with cells joined by spaces, so spreadsheet exports go through the
// same strategy engine as raw text.
func extractXLSText(data []byte) (string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return "", fmt.Errorf("error opening workbook: %w", err)
	}

	rows := workbook.ReadAllCells(1000)
	if len(rows) == 0 {
		return "", fmt.Errorf("no data found in sheet")
	}

	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
