package projector

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value in a display currency.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// SymbolFor returns the display symbol for a currency code, falling back
// to "$" when the code is not a known ISO currency.
func SymbolFor(code string) string {
	if cur := money.GetCurrency(code); cur != nil {
		return cur.Grapheme
	}
	return "$"
}

// String renders the value with its currency symbol, thousand separators
// and two fraction digits regardless of the currency's native fraction:
// the projection table displays cents even in JPY.
func (m Money) String() string {
	return m.format(2)
}

// PreciseString renders with four fraction digits, used for spot prices
// that move below the cent.
func (m Money) PreciseString() string {
	return m.format(4)
}

func (m Money) format(fraction int) string {
	f := money.NewFormatter(fraction, ".", ",", SymbolFor(m.cur), "$1")
	return f.Format(m.value.Round(int32(fraction)).Shift(int32(fraction)).IntPart())
}

func (m Money) Currency() string        { return m.cur }
func (m Money) Amount() decimal.Decimal { return m.value }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsPositive() bool        { return m.value.IsPositive() }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) Cmp(n Money) int         { return m.value.Cmp(n.value) }
func (m Money) Mul(q Quantity) Money    { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// Deprecated: AsFloat loses the exactness the engine computes with, it
// only serves boundary code that has to hand a float to a collaborator.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
