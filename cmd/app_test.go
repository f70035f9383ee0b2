package cmd

import (
	"strings"
	"testing"
)

func Test_inputFlags_resolveOffline(t *testing.T) {
	c := inputFlags{holdings: 100, price: 0.25, supply: 25, currency: "EUR", offline: true}

	in, rates, btc, err := c.resolve()
	if err != nil {
		t.Fatalf("resolve() unexpected error = %v", err)
	}
	if in.Price != 0.25 || in.SupplyBillions != 25 || in.Holdings != 100 {
		t.Errorf("resolve() in = %+v, want the flag values untouched", in)
	}
	if btc != 0 {
		t.Errorf("resolve() btc = %v, want 0 without a fetch", btc)
	}
	// offline falls back to the builtin table
	if got := rates.Rate("EUR"); got != 0.92 {
		t.Errorf("resolve() Rate(EUR) = %v, want the builtin 0.92", got)
	}
}

func Test_inputFlags_resolveOfflineMissingPrice(t *testing.T) {
	c := inputFlags{holdings: 100, supply: 25, offline: true}

	if _, _, _, err := c.resolve(); err == nil {
		t.Error("resolve() expected an error for -offline without -price")
	} else if !strings.Contains(err.Error(), "-offline") {
		t.Errorf("resolve() error = %v, want it to mention -offline", err)
	}
}
