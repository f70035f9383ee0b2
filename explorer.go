package projector

import (
	"math"

	"github.com/shopspring/decimal"
)

// Explorer maps a normalized control position in [0,100] to a price and
// back, on a logarithmic scale. The floor tracks the rounded current
// price, so the control's domain rescales live as the spot price moves;
// the ceiling is a fixed upper bound.
type Explorer struct {
	Floor   float64
	Ceiling float64
}

// NewExplorer derives the explorer domain from the current USD price.
// The floor is the price rounded to the cent, never under one cent.
func NewExplorer(currentPrice, ceiling float64) Explorer {
	floor, _ := round2(currentPrice).Float64()
	if floor < 0.01 {
		floor = 0.01
	}
	return Explorer{Floor: floor, Ceiling: ceiling}
}

// PriceAt is the forward mapping: a pure geometric interpolation
// between floor and ceiling, so PriceAt(0) is the floor and
// PriceAt(100) the ceiling. Positions outside [0,100] are clamped.
// A degenerate domain (ceiling at or under the floor) pins the price
// to the floor.
func (e Explorer) PriceAt(position float64) float64 {
	position = clamp(position, 0, 100)
	if e.Floor <= 0 || e.Ceiling <= e.Floor {
		return e.Floor
	}
	return e.Floor * math.Pow(e.Ceiling/e.Floor, position/100)
}

// PositionOf is the inverse mapping, used when the user types a custom
// price: the price is clamped to [floor, ceiling] first, the resulting
// position to [0,100].
func (e Explorer) PositionOf(price float64) float64 {
	if e.Floor <= 0 || e.Ceiling <= e.Floor {
		return 0
	}
	price = clamp(price, e.Floor, e.Ceiling)
	position := 100 * math.Log(price/e.Floor) / math.Log(e.Ceiling/e.Floor)
	return clamp(position, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Nearest returns the index of the row whose display price is closest
// to price, for scroll-syncing the table with the explorer. Ties
// resolve to the earliest row scanned. A linear scan is fine against a
// sub-300-row table. Returns -1 on an empty table.
func (p *Projection) Nearest(price decimal.Decimal) int {
	best := -1
	var bestDiff decimal.Decimal
	for i, r := range p.Rows {
		diff := r.Price.Amount().Sub(price).Abs()
		if best < 0 || diff.LessThan(bestDiff) {
			best, bestDiff = i, diff
		}
	}
	return best
}
