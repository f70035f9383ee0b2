package renderer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/kaspa-community/projector"
)

func testProjection(t *testing.T) *projector.Projection {
	t.Helper()
	in := projector.Input{Holdings: 1000, Price: 0.25, SupplyBillions: 25, Currency: "USD"}
	return projector.NewProjection(in, projector.DefaultRates())
}

func TestProjectionMarkdown(t *testing.T) {
	p := testProjection(t)
	got := ProjectionMarkdown(p)

	if !strings.HasPrefix(got, "# Projection (USD)") {
		t.Errorf("ProjectionMarkdown() missing title, got %q...", got[:40])
	}
	if n := strings.Count(got, "← current"); n != 1 {
		t.Errorf("ProjectionMarkdown() has %d anchor markers, want 1", n)
	}
	// title, blank, header, separator, one line per row
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if want := len(p.Rows) + 4; len(lines) != want {
		t.Errorf("ProjectionMarkdown() has %d lines, want %d", len(lines), want)
	}
	if !strings.Contains(got, "| $250.00 |") {
		t.Error("ProjectionMarkdown() missing the anchor portfolio value $250.00")
	}
}

func TestWindowMarkdown(t *testing.T) {
	p := testProjection(t)
	got := WindowMarkdown(p, p.Anchor(), 2)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if want := 5 + 4; len(lines) != want {
		t.Errorf("WindowMarkdown() has %d lines, want %d", len(lines), want)
	}
	if n := strings.Count(got, "← current"); n != 1 {
		t.Errorf("WindowMarkdown() has %d anchor markers, want 1", n)
	}

	// a window near the edge is simply truncated
	got = WindowMarkdown(p, 0, 2)
	lines = strings.Split(strings.TrimRight(got, "\n"), "\n")
	if want := 3 + 4; len(lines) != want {
		t.Errorf("WindowMarkdown() at the edge has %d lines, want %d", len(lines), want)
	}
}

func TestFactsMarkdown(t *testing.T) {
	in := projector.Input{Holdings: 1000, Price: 0.25, SupplyBillions: 25, Currency: "USD"}
	f := projector.NewFacts(in, 1.25e12, projector.DefaultRates())
	got := FactsMarkdown(&f)

	for _, want := range []string{
		"# Portfolio Facts (USD)",
		"| Holdings | 1000 KAS |",
		"| Portfolio value | $250.00 |",
		"| Price for a $1M portfolio | $1,000.00 |",
		"| Multiples of Bitcoin to reach $1M | 20.0 |",
		"| Progress to $1M | 0.03% |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FactsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestFactsMarkdown_NoBitcoinBlock(t *testing.T) {
	in := projector.Input{Holdings: 1000, Price: 0.25, SupplyBillions: 25, Currency: "USD"}
	f := projector.NewFacts(in, 0, projector.DefaultRates())
	got := FactsMarkdown(&f)

	if strings.Contains(got, "Bitcoin") {
		t.Errorf("FactsMarkdown() renders the Bitcoin block without a market cap:\n%s", got)
	}
	if !strings.Contains(got, "| Progress to $1M | 0.03% |") {
		t.Errorf("FactsMarkdown() missing the progress line:\n%s", got)
	}
}

func TestWriteCSV(t *testing.T) {
	p := testProjection(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, p); err != nil {
		t.Fatalf("WriteCSV() unexpected error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back the CSV: %v", err)
	}
	if len(records) != len(p.Rows)+1 {
		t.Fatalf("CSV has %d records, want %d", len(records), len(p.Rows)+1)
	}
	if got := strings.Join(records[0], ","); got != "price,portfolio_value,market_cap,position" {
		t.Errorf("CSV header = %q", got)
	}
	anchor := records[p.Anchor()+1]
	if anchor[0] != "0.25" || anchor[3] != "at" {
		t.Errorf("anchor record = %v, want price 0.25 at position 'at'", anchor)
	}
}
