package projector

import "fmt"

// Validate rejects inputs the projection engine is not defined for.
// Callers run this once at the boundary; past it the engine is a total
// function and never raises for in-range numeric input.
func (in Input) Validate() error {
	if in.Holdings <= 0 {
		return fmt.Errorf("holdings must be a positive number of coins, got %v", in.Holdings)
	}
	if in.Price <= 0 {
		return fmt.Errorf("current price must be positive, got %v", in.Price)
	}
	if in.SupplyBillions < 0 {
		return fmt.Errorf("circulating supply cannot be negative, got %v", in.SupplyBillions)
	}
	return nil
}
