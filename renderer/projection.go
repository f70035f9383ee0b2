package renderer

import (
	"fmt"
	"strings"

	"github.com/kaspa-community/projector"
)

// ProjectionMarkdown renders the full projection table. The anchor row
// is flagged so it stands out once glamour styles the table.
func ProjectionMarkdown(p *projector.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Projection (%s)\n\n", p.Currency)
	fmt.Fprintln(&b, "| Price | Portfolio Value | Market Cap |   |")
	fmt.Fprintln(&b, "|---:|---:|---:|:---|")

	for _, r := range p.Rows {
		marker := ""
		if r.Position == projector.At {
			marker = "**← current**"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			r.Price.PreciseString(),
			r.Value.String(),
			r.MarketCap.String(),
			marker,
		)
	}
	return b.String()
}

// WindowMarkdown renders the rows around the given index, for terminals
// where 250 rows is noise. radius rows are kept on each side when they
// exist.
func WindowMarkdown(p *projector.Projection, center, radius int) string {
	if len(p.Rows) == 0 {
		return ProjectionMarkdown(p)
	}
	lo := max(center-radius, 0)
	hi := min(center+radius+1, len(p.Rows))
	window := &projector.Projection{Currency: p.Currency, Symbol: p.Symbol, Rows: p.Rows[lo:hi]}
	return ProjectionMarkdown(window)
}
