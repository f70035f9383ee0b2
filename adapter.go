package projector

import (
	"sort"

	"github.com/shopspring/decimal"
)

// usdRow is a projection row before display-currency conversion. All
// amounts are USD; position is already fixed against the USD anchor.
type usdRow struct {
	price     decimal.Decimal
	value     decimal.Decimal
	marketCap decimal.Decimal
	position  Position
}

// convertRows converts USD rows into the display currency. For USD it
// is the identity path: display price equals the base price, no second
// dedup pass, no reordering. For any other currency, rounding the
// converted prices to the cent can make formerly distinct USD prices
// collide, so the below- and above-sections are each re-sorted and
// collapsed, and a collapsed neighbour that lands on the anchor's
// display price is dropped: the anchor row is always unique and always
// retained.
func convertRows(usd []usdRow, currency string, rates ExchangeRateTable) []Row {
	rate := decimal.NewFromFloat(rates.Rate(currency))

	rows := make([]Row, 0, len(usd))
	for _, r := range usd {
		rows = append(rows, Row{
			USDPrice:  r.price,
			Price:     M(r.price.Mul(rate).Round(2), currency),
			Value:     M(r.value.Mul(rate), currency),
			MarketCap: M(r.marketCap.Mul(rate), currency),
			Position:  r.position,
		})
	}

	if currency == "USD" {
		return rows
	}

	var below, above []Row
	var anchor Row
	for _, r := range rows {
		switch r.Position {
		case Below:
			below = append(below, r)
		case At:
			anchor = r
		case Above:
			above = append(above, r)
		}
	}

	below = dedupSection(below)
	above = dedupSection(above)

	// Never show a row straddling the anchor with the anchor's own
	// display price.
	if n := len(below); n > 0 && below[n-1].Price.Equal(anchor.Price) {
		below = below[:n-1]
	}
	if len(above) > 0 && above[0].Price.Equal(anchor.Price) {
		above = above[1:]
	}

	out := make([]Row, 0, len(below)+1+len(above))
	out = append(out, below...)
	out = append(out, anchor)
	out = append(out, above...)
	return out
}

// dedupSection sorts rows by (display price, USD price) and keeps the
// first row seen for each display price: on a collision the smaller
// underlying USD price wins. The tie-break is load-bearing, changing it
// changes which rows silently disappear from the table.
func dedupSection(rows []Row) []Row {
	sort.SliceStable(rows, func(i, j int) bool {
		if c := rows[i].Price.Cmp(rows[j].Price); c != 0 {
			return c < 0
		}
		return rows[i].USDPrice.LessThan(rows[j].USDPrice)
	})

	seen := make(map[string]bool, len(rows))
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		key := r.Price.Amount().String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
