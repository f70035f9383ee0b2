package projector

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Interval sampling bounds. The ceiling is deliberately absurd for a
// sub-dollar coin: geometric spacing keeps the upper rows meaningful
// (2x, 5x, 10x multiples) without an unbounded row count.
const (
	DefaultFloor   = 0.01
	DefaultCeiling = 1000.0

	belowPoints = 9
	abovePoints = 240
)

// PriceIntervals samples the hypothetical USD unit prices for a
// projection: belowPoints linearly spaced prices from the floor up to
// one cent under the anchor, the anchor itself (the current price
// rounded to the cent), and abovePoints geometrically spaced prices
// from one cent over the anchor up to the ceiling. Every sample is
// rounded to 2 decimals; the result is deduplicated and strictly
// ascending.
func PriceIntervals(currentPrice float64) []decimal.Decimal {
	return priceIntervals(currentPrice, DefaultFloor, DefaultCeiling, belowPoints, abovePoints)
}

func priceIntervals(currentPrice, floor, ceiling float64, below, above int) []decimal.Decimal {
	anchor := round2(currentPrice)
	a, _ := anchor.Float64()

	samples := linspace(floor, a-0.01, below)
	samples = append(samples, a)
	samples = append(samples, geomspace(a+0.01, ceiling, above)...)

	seen := make(map[string]bool, len(samples))
	prices := make([]decimal.Decimal, 0, len(samples))
	for _, s := range samples {
		p := round2(s)
		if k := p.String(); !seen[k] {
			seen[k] = true
			prices = append(prices, p)
		}
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })
	return prices
}

// round2 rounds a price to the cent.
func round2(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// linspace returns n evenly spaced samples from lo to hi inclusive.
// An inverted range yields no samples: when the anchor sits at the
// floor there simply is no below-section.
func linspace(lo, hi float64, n int) []float64 {
	if n <= 0 || hi < lo {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}

// geomspace returns n samples from lo to hi whose successive ratios are
// equal. Empty when lo reaches hi: a current price at or above the
// ceiling degenerates to a table with no above-section, which is
// accepted rather than an error.
func geomspace(lo, hi float64, n int) []float64 {
	if n <= 0 || lo <= 0 || hi <= lo {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	ratio := hi / lo
	for i := range out {
		out[i] = lo * math.Pow(ratio, float64(i)/float64(n-1))
	}
	return out
}
