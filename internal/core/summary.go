package core

import "fmt"

// Extreme selects which end of the price range a PriceReport describes.
type Extreme int

const (
	Lowest Extreme = iota
	Highest
)

func (e Extreme) String() string {
	if e == Highest {
		return "Highest"
	}
	return "Lowest"
}

// PriceReport is the lowest or highest unit price paid for a product.
// Found is false when the product was never purchased.
type PriceReport struct {
	Kind        Extreme
	Product     string
	Found       bool
	Price       float64
	Supermarket string
	Month       string
}

// Format renders the report as a sentence using the given currency prefix.
func (r PriceReport) Format(currency string) string {
	if !r.Found {
		return fmt.Sprintf("No purchases found for '%s'.", r.Product)
	}
	return fmt.Sprintf("%s price for '%s': %s %s at %s (%s)",
		r.Kind, r.Product, currency, FormatAmount(r.Price), r.Supermarket, r.Month)
}

func (r PriceReport) String() string {
	return r.Format(DefaultCurrency)
}

// SupermarketReport names the supermarket with the lowest or highest
// spending in a month.
type SupermarketReport struct {
	Kind        Extreme
	Month       string
	Found       bool
	Supermarket string
	Total       float64
}

func (r SupermarketReport) String() string {
	if !r.Found {
		return "No purchases in this month."
	}
	return r.Supermarket
}

// SupermarketTotal is the amount spent at one supermarket.
type SupermarketTotal struct {
	Supermarket string
	Total       float64
}

// PlanComparison sets a product's planned price against what was spent on it
// in a month. Spent is a total while PlannedPrice is per unit; OverPlan
// compares the two as they are.
//
// Spent is summed exactly in decimal, so at the boundary the verdict can
// differ from plain float64 addition: purchases of 0.1 and 0.2 against a
// planned 0.3 are within plan here, while float64 sums to 0.30000000000000004
// and would report over plan.
type PlanComparison struct {
	Product      string
	Month        string
	PlannedPrice float64
	Spent        float64
	OverPlan     bool
}

// Lines renders the comparison the way the console prints it.
func (c PlanComparison) Lines(currency string) []string {
	verdict := "You spent within the planned price!"
	if c.OverPlan {
		verdict = "You spent MORE than planned."
	}
	return []string{
		fmt.Sprintf("Planned price for '%s': %s %s", c.Product, currency, FormatAmount(c.PlannedPrice)),
		fmt.Sprintf("Total spent in %s: %s %s", c.Month, currency, FormatAmount(c.Spent)),
		verdict,
	}
}
