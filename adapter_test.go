package projector

import (
	"testing"

	"github.com/shopspring/decimal"
)

// testRows builds USD rows around a 0.12 anchor. With a 0.4 rate the
// display prices collide in interesting ways:
//
//	0.10 → 0.04    0.11 → 0.04 (collides, larger USD loses)
//	0.12 → 0.05    the anchor
//	0.13 → 0.05 (collides with the anchor, dropped by adjacency)
//	0.14 → 0.06    0.15 → 0.06 (collides, larger USD loses)
func testRows() []usdRow {
	rows := make([]usdRow, 0, 6)
	for _, s := range []string{"0.10", "0.11", "0.12", "0.13", "0.14", "0.15"} {
		p := dec(s)
		pos := Above
		switch p.Cmp(dec("0.12")) {
		case -1:
			pos = Below
		case 0:
			pos = At
		}
		rows = append(rows, usdRow{price: p, value: p, marketCap: p, position: pos})
	}
	return rows
}

func testRates() ExchangeRateTable {
	return NewExchangeRateTable(map[string]float64{"NOK": 0.4}, nil)
}

func TestConvertRows_CollisionKeepsSmallerUSDPrice(t *testing.T) {
	rows := convertRows(testRows(), "NOK", testRates())

	wantUSD := []string{"0.10", "0.12", "0.14"}
	wantDisplay := []string{"0.04", "0.05", "0.06"}
	if len(rows) != len(wantUSD) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(wantUSD))
	}
	for i, r := range rows {
		if !r.USDPrice.Equal(dec(wantUSD[i])) {
			t.Errorf("row %d: usd price = %v, want %v", i, r.USDPrice, wantUSD[i])
		}
		if !r.Price.Amount().Equal(dec(wantDisplay[i])) {
			t.Errorf("row %d: display price = %v, want %v", i, r.Price.Amount(), wantDisplay[i])
		}
	}
}

func TestConvertRows_AnchorAlwaysRetained(t *testing.T) {
	rows := convertRows(testRows(), "NOK", testRates())

	at := -1
	for i, r := range rows {
		if r.Position == At {
			if at >= 0 {
				t.Fatalf("two anchor rows, at %d and %d", at, i)
			}
			at = i
		}
	}
	if at < 0 {
		t.Fatal("anchor row was deduplicated away")
	}
	if !rows[at].USDPrice.Equal(dec("0.12")) {
		t.Errorf("anchor usd price = %v, want 0.12", rows[at].USDPrice)
	}
}

func TestConvertRows_USDIdentity(t *testing.T) {
	usd := testRows()
	rows := convertRows(usd, "USD", DefaultRates())

	if len(rows) != len(usd) {
		t.Fatalf("len(rows) = %d, want %d: the USD path must not collapse rows", len(rows), len(usd))
	}
	for i, r := range rows {
		if !r.USDPrice.Equal(usd[i].price) {
			t.Errorf("row %d reordered: usd price = %v, want %v", i, r.USDPrice, usd[i].price)
		}
		if !r.Price.Amount().Equal(usd[i].price) {
			t.Errorf("row %d: display price = %v, want base price %v", i, r.Price.Amount(), usd[i].price)
		}
	}
}

func TestConvertRows_UnknownCurrencyFallsBackToUnitRate(t *testing.T) {
	rows := convertRows(testRows(), "XXX", DefaultRates())

	for i, r := range rows {
		if !r.Price.Amount().Equal(r.USDPrice) {
			t.Errorf("row %d: display price = %v, want base price %v under the 1.0 fallback",
				i, r.Price.Amount(), r.USDPrice)
		}
	}
}

func TestDedupSection_FirstWins(t *testing.T) {
	mk := func(usd, display string) Row {
		return Row{USDPrice: dec(usd), Price: M(decimal.RequireFromString(display), "EUR")}
	}
	// Deliberately out of order: dedup sorts by (display, usd) first.
	rows := dedupSection([]Row{
		mk("0.30", "0.28"),
		mk("0.29", "0.27"),
		mk("0.28", "0.27"),
	})

	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}
	if !rows[0].USDPrice.Equal(dec("0.28")) {
		t.Errorf("collision winner = %v, want the smaller usd price 0.28", rows[0].USDPrice)
	}
	if !rows[1].USDPrice.Equal(dec("0.30")) {
		t.Errorf("second row = %v, want 0.30", rows[1].USDPrice)
	}
}
