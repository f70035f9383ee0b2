package projector

import "testing"

func TestInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		wantErr bool
	}{
		{"valid", Input{Holdings: 1367, Price: 0.2711, SupplyBillions: 25.6, Currency: "USD"}, false},
		{"zero holdings", Input{Holdings: 0, Price: 0.25, SupplyBillions: 25}, true},
		{"negative holdings", Input{Holdings: -1, Price: 0.25, SupplyBillions: 25}, true},
		{"zero price", Input{Holdings: 10, Price: 0, SupplyBillions: 25}, true},
		{"negative supply", Input{Holdings: 10, Price: 0.25, SupplyBillions: -1}, true},
		{"zero supply is fine", Input{Holdings: 10, Price: 0.25, SupplyBillions: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
