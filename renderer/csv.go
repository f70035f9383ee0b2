package renderer

import (
	"encoding/csv"
	"io"

	"github.com/kaspa-community/projector"
)

// csvHeader is the first record of every export. Prices and amounts are
// plain decimals without symbol or separators, ready for a spreadsheet.
var csvHeader = []string{"price", "portfolio_value", "market_cap", "position"}

// WriteCSV exports the projection table as CSV.
func WriteCSV(w io.Writer, p *projector.Projection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range p.Rows {
		record := []string{
			r.Price.Amount().StringFixed(2),
			r.Value.Amount().StringFixed(2),
			r.MarketCap.Amount().StringFixed(2),
			r.Position.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
