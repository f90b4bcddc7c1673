package parser

import (
	"strings"

	"github.com/Thomson-dev/bank-summary-agent/pkg/models"
)

// ProcessBytes parses a statement file's contents. Spreadsheet exports are
// flattened to text first; everything else is treated as raw statement text
// (which includes JSON transaction arrays).
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.Transaction, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xls") {
		p.logger.Debug("extracting spreadsheet rows", "filename", filename)
		text, err := extractXLSText(data)
		if err != nil {
			return nil, ParseError("%v", err)
		}
		return p.ParseText(text)
	}
	return p.ParseText(string(data))
}
