package projector

import (
	"sort"
	"strings"
)

// ExchangeRateTable is an immutable snapshot of multiplicative
// conversion rates relative to USD, with optional display symbols. The
// fetch collaborator produces a fresh table per compute cycle; the
// engine only ever reads it, so a fetch in progress can never race a
// projection being computed.
type ExchangeRateTable struct {
	rates   map[string]float64
	symbols map[string]string
}

// NewExchangeRateTable copies both maps into a snapshot. Codes are
// normalized to upper case. symbols may be nil.
func NewExchangeRateTable(rates map[string]float64, symbols map[string]string) ExchangeRateTable {
	t := ExchangeRateTable{
		rates:   make(map[string]float64, len(rates)),
		symbols: make(map[string]string, len(symbols)),
	}
	for code, r := range rates {
		t.rates[strings.ToUpper(code)] = r
	}
	for code, s := range symbols {
		t.symbols[strings.ToUpper(code)] = s
	}
	return t
}

// Rate returns the USD-to-code rate. An unknown or non-positive entry
// degrades to 1.0 (USD-equivalent display), it never fails.
func (t ExchangeRateTable) Rate(code string) float64 {
	if r, ok := t.rates[strings.ToUpper(code)]; ok && r > 0 {
		return r
	}
	return 1.0
}

// Symbol resolves the display symbol for a currency: the snapshot's own
// symbol first, then the ISO currency data, then "$".
func (t ExchangeRateTable) Symbol(code string) string {
	if s, ok := t.symbols[strings.ToUpper(code)]; ok && s != "" {
		return s
	}
	return SymbolFor(code)
}

// Currencies lists the codes the snapshot has a rate for, sorted.
func (t ExchangeRateTable) Currencies() []string {
	codes := make([]string, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DefaultRates is the application's built-in table, good enough to run
// offline. Live rates come from coingecko.FetchRates.
func DefaultRates() ExchangeRateTable {
	return NewExchangeRateTable(
		map[string]float64{
			"USD": 1.0,
			"EUR": 0.92,
			"GBP": 0.79,
			"JPY": 149.50,
			"AUD": 1.55,
		},
		map[string]string{
			"USD": "$",
			"EUR": "€",
			"GBP": "£",
			"JPY": "¥",
			"AUD": "A$",
		},
	)
}
