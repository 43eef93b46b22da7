// Package shopping holds the in-memory shopping list: planned products,
// recorded purchases and the reports derived from them.
package shopping

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"spesa/internal/core"
)

// Manager owns the product and purchase collections. It is not safe for
// concurrent use; a single caller owns it for the life of the process.
type Manager struct {
	products  []core.Product
	purchases []core.Purchase
}

func NewManager() *Manager {
	return &Manager{}
}

// AddProduct appends a product. Names are not checked for duplicates; lookups
// resolve to the earliest product with a given name.
func (m *Manager) AddProduct(name, unit string, plannedQuantity uint32, plannedPrice float64) {
	m.products = append(m.products, core.Product{
		Name:            name,
		Unit:            unit,
		PlannedQuantity: plannedQuantity,
		PlannedPrice:    plannedPrice,
	})
}

// UpdatePlannedPrice sets the planned price of the first product named name.
// It reports whether such a product exists.
func (m *Manager) UpdatePlannedPrice(name string, price float64) bool {
	i := m.indexOf(name)
	if i < 0 {
		return false
	}
	m.products[i].PlannedPrice = price
	return true
}

// FindProduct returns the earliest-inserted product whose name equals name.
func (m *Manager) FindProduct(name string) (core.Product, bool) {
	i := m.indexOf(name)
	if i < 0 {
		return core.Product{}, false
	}
	return m.products[i], true
}

func (m *Manager) indexOf(name string) int {
	for i := range m.products {
		if m.products[i].Name == name {
			return i
		}
	}
	return -1
}

// ListProducts returns a copy of the products in insertion order.
func (m *Manager) ListProducts() []core.Product {
	return append([]core.Product(nil), m.products...)
}

// AddPurchase records a purchase of an existing product. It fails with an
// error wrapping core.ErrProductNotFound when no product is named productName.
func (m *Manager) AddPurchase(month, productName string, quantity uint32, price float64, supermarket string) error {
	if _, ok := m.FindProduct(productName); !ok {
		return fmt.Errorf("product '%s' does not exist: %w", productName, core.ErrProductNotFound)
	}
	m.purchases = append(m.purchases, core.Purchase{
		Month:          month,
		ProductName:    productName,
		QuantityBought: quantity,
		UnitPrice:      price,
		Supermarket:    supermarket,
	})
	return nil
}

// ListPurchases returns a copy of the purchases in insertion order.
func (m *Manager) ListPurchases() []core.Purchase {
	return append([]core.Purchase(nil), m.purchases...)
}

// TotalForMonth sums price * quantity over the purchases of month.
func (m *Manager) TotalForMonth(month string) float64 {
	total := decimal.Zero
	for _, p := range m.purchases {
		if p.Month == month {
			total = total.Add(core.LineTotal(p.UnitPrice, p.QuantityBought))
		}
	}
	return total.InexactFloat64()
}

func (m *Manager) LowestPriceDetails(product string) core.PriceReport {
	return m.priceDetails(product, core.Lowest)
}

func (m *Manager) HighestPriceDetails(product string) core.PriceReport {
	return m.priceDetails(product, core.Highest)
}

// priceDetails stable-sorts the product's purchases by unit price so that,
// among equal prices, the earliest purchase is reported.
func (m *Manager) priceDetails(product string, kind core.Extreme) core.PriceReport {
	report := core.PriceReport{Kind: kind, Product: product}

	var filtered []core.Purchase
	for _, p := range m.purchases {
		if p.ProductName == product {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return report
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if kind == core.Highest {
			return filtered[i].UnitPrice > filtered[j].UnitPrice
		}
		return filtered[i].UnitPrice < filtered[j].UnitPrice
	})

	best := filtered[0]
	report.Found = true
	report.Price = best.UnitPrice
	report.Supermarket = best.Supermarket
	report.Month = best.Month
	return report
}

// SupermarketTotals sums spending per supermarket in month, ordered by the
// first purchase made at each supermarket.
func (m *Manager) SupermarketTotals(month string) []core.SupermarketTotal {
	index := map[string]int{}
	var sums []decimal.Decimal
	var names []string
	for _, p := range m.purchases {
		if p.Month != month {
			continue
		}
		i, ok := index[p.Supermarket]
		if !ok {
			i = len(names)
			index[p.Supermarket] = i
			names = append(names, p.Supermarket)
			sums = append(sums, decimal.Zero)
		}
		sums[i] = sums[i].Add(core.LineTotal(p.UnitPrice, p.QuantityBought))
	}

	out := make([]core.SupermarketTotal, len(names))
	for i, name := range names {
		out[i] = core.SupermarketTotal{Supermarket: name, Total: sums[i].InexactFloat64()}
	}
	return out
}

func (m *Manager) CheapestSupermarketInMonth(month string) core.SupermarketReport {
	return m.supermarketExtreme(month, core.Lowest)
}

func (m *Manager) MostExpensiveSupermarketInMonth(month string) core.SupermarketReport {
	return m.supermarketExtreme(month, core.Highest)
}

// supermarketExtreme keeps the first supermarket on ties.
func (m *Manager) supermarketExtreme(month string, kind core.Extreme) core.SupermarketReport {
	report := core.SupermarketReport{Kind: kind, Month: month}
	totals := m.SupermarketTotals(month)
	if len(totals) == 0 {
		return report
	}

	best := totals[0]
	for _, t := range totals[1:] {
		if (kind == core.Lowest && t.Total < best.Total) || (kind == core.Highest && t.Total > best.Total) {
			best = t
		}
	}
	report.Found = true
	report.Supermarket = best.Supermarket
	report.Total = best.Total
	return report
}

// ComparePlannedPrice sets the product's planned unit price against the total
// spent on it in month. The boolean is false when the product does not exist.
func (m *Manager) ComparePlannedPrice(product, month string) (core.PlanComparison, bool) {
	p, ok := m.FindProduct(product)
	if !ok {
		return core.PlanComparison{}, false
	}

	spent := decimal.Zero
	for _, pu := range m.purchases {
		if pu.ProductName == product && pu.Month == month {
			spent = spent.Add(core.LineTotal(pu.UnitPrice, pu.QuantityBought))
		}
	}

	return core.PlanComparison{
		Product:      product,
		Month:        month,
		PlannedPrice: p.PlannedPrice,
		Spent:        spent.InexactFloat64(),
		OverPlan:     spent.GreaterThan(decimal.NewFromFloat(p.PlannedPrice)),
	}, true
}
