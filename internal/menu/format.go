package menu

import (
	"fmt"
	"io"

	"spesa/internal/core"
)

func writeProducts(w io.Writer, products []core.Product) {
	fmt.Fprintf(w, "%-15s %-10s %-15s %-15s\n", "Name", "Unit", "Planned Qty", "Planned Price")
	for _, p := range products {
		fmt.Fprintf(w, "%-15s %-10s %-15d %-15s\n", p.Name, p.Unit, p.PlannedQuantity, core.FormatAmount(p.PlannedPrice))
	}
}

func writePurchases(w io.Writer, purchases []core.Purchase) {
	fmt.Fprintf(w, "%-10s %-15s %-10s %-10s %-15s\n", "Month", "Product", "Qty", "Unit Price", "Supermarket")
	for _, p := range purchases {
		fmt.Fprintf(w, "%-10s %-15s %-10d %-10s %-15s\n", p.Month, p.ProductName, p.QuantityBought, core.FormatAmount(p.UnitPrice), p.Supermarket)
	}
}
