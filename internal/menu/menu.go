// Package menu is the numbered console menu in front of the shopping service.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"spesa/internal/core"
	applog "spesa/internal/log"
)

// Shopping is what the menu needs from the service layer.
type Shopping interface {
	AddProduct(ctx context.Context, name, unit string, plannedQuantity uint32, plannedPrice float64)
	UpdatePlannedPrice(ctx context.Context, name string, price float64) bool
	AddPurchase(ctx context.Context, month, productName string, quantity uint32, price float64, supermarket string) error
	ListProducts() []core.Product
	ListPurchases() []core.Purchase
	TotalForMonth(month string) float64
	LowestPriceDetails(product string) core.PriceReport
	HighestPriceDetails(product string) core.PriceReport
	CheapestSupermarketInMonth(month string) core.SupermarketReport
	MostExpensiveSupermarketInMonth(month string) core.SupermarketReport
	ComparePlannedPrice(product, month string) (core.PlanComparison, bool)
}

const (
	OptionExit = iota
	OptionAddProducts
	OptionAddPurchases
	OptionListProducts
	OptionListPurchases
	OptionMonthTotal
	OptionLowestPrice
	OptionHighestPrice
	OptionCheapestSupermarket
	OptionComparePlanned
	OptionUpdatePlannedPrice
	OptionMostExpensiveSupermarket
)

var menuLines = []string{
	"1 - Add Product",
	"2 - Register Purchase",
	"3 - List Products",
	"4 - List Purchases",
	"5 - Calculate Total of Month",
	"6 - Lowest Price of a Product",
	"7 - Highest Price of a Product",
	"8 - Cheapest Supermarket of Month",
	"9 - Compare Planned Price vs Real",
	"10 - Update Planned Price",
	"11 - Most Expensive Supermarket of Month",
	"0 - Exit",
}

type Menu struct {
	svc      Shopping
	prompt   *Prompter
	out      io.Writer
	currency string
	logger   *applog.Logger
}

func New(svc Shopping, in io.Reader, out io.Writer, currency string, logger *applog.Logger) *Menu {
	if currency == "" {
		currency = core.DefaultCurrency
	}
	if logger == nil {
		logger = applog.Discard()
	}
	return &Menu{
		svc:      svc,
		prompt:   NewPrompter(in, out),
		out:      out,
		currency: currency,
		logger:   logger.WithComponent(applog.ComponentMenu),
	}
}

// Run shows the menu until the user picks 0, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(m.out, "\n=== SHOPPING LIST MANAGER ===")
		fmt.Fprintln(m.out, strings.Join(menuLines, "\n"))

		option, err := m.prompt.Quantity(ctx, "Choose an option:")
		if err != nil {
			return m.endOfInput(err)
		}
		if option == OptionExit {
			fmt.Fprintln(m.out, "Exiting program...")
			return nil
		}
		if err := m.dispatch(ctx, option); err != nil {
			return m.endOfInput(err)
		}
	}
}

func (m *Menu) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		m.logger.Debug("Input closed, leaving menu")
		return nil
	}
	return err
}

func (m *Menu) dispatch(ctx context.Context, option uint32) error {
	switch option {
	case OptionAddProducts:
		return m.addProducts(ctx)
	case OptionAddPurchases:
		return m.addPurchases(ctx)
	case OptionListProducts:
		fmt.Fprintln(m.out, "\n=== Products ===")
		writeProducts(m.out, m.svc.ListProducts())
	case OptionListPurchases:
		fmt.Fprintln(m.out, "\n=== Purchases ===")
		writePurchases(m.out, m.svc.ListPurchases())
	case OptionMonthTotal:
		month, err := m.prompt.Text(ctx, "Enter month (YYYY-MM):")
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Total spent in %s: %s %s\n", month, m.currency, core.FormatAmount(m.svc.TotalForMonth(month)))
	case OptionLowestPrice, OptionHighestPrice:
		name, err := m.prompt.Text(ctx, "Product name:")
		if err != nil {
			return err
		}
		report := m.svc.LowestPriceDetails(name)
		if option == OptionHighestPrice {
			report = m.svc.HighestPriceDetails(name)
		}
		fmt.Fprintln(m.out, report.Format(m.currency))
	case OptionCheapestSupermarket:
		month, err := m.prompt.Text(ctx, "Month (YYYY-MM):")
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Cheapest supermarket in %s: %s\n", month, m.svc.CheapestSupermarketInMonth(month))
	case OptionMostExpensiveSupermarket:
		month, err := m.prompt.Text(ctx, "Month (YYYY-MM):")
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Most expensive supermarket in %s: %s\n", month, m.svc.MostExpensiveSupermarketInMonth(month))
	case OptionComparePlanned:
		return m.comparePlanned(ctx)
	case OptionUpdatePlannedPrice:
		return m.updatePlannedPrice(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid option! Try again.")
	}
	return nil
}

func (m *Menu) addProducts(ctx context.Context) error {
	count, err := m.prompt.Quantity(ctx, "How many products do you want to add?")
	if err != nil {
		return err
	}
	for i := uint32(1); i <= count; i++ {
		fmt.Fprintf(m.out, "\nProduct %d:\n", i)
		name, err := m.prompt.Text(ctx, "Product name:")
		if err != nil {
			return err
		}
		unit, err := m.prompt.Text(ctx, "Unit (kg, L, etc):")
		if err != nil {
			return err
		}
		qty, err := m.prompt.Quantity(ctx, "Planned quantity:")
		if err != nil {
			return err
		}
		price, err := m.prompt.Amount(ctx, "Planned unit price:")
		if err != nil {
			return err
		}
		m.svc.AddProduct(ctx, name, unit, qty, price)
	}
	fmt.Fprintln(m.out, "Products added successfully!")
	return nil
}

func (m *Menu) addPurchases(ctx context.Context) error {
	count, err := m.prompt.Quantity(ctx, "How many purchases do you want to register?")
	if err != nil {
		return err
	}
	for i := uint32(1); i <= count; i++ {
		fmt.Fprintf(m.out, "\nPurchase %d:\n", i)
		month, err := m.prompt.Text(ctx, "Month (YYYY-MM):")
		if err != nil {
			return err
		}
		product, err := m.prompt.Text(ctx, "Product name:")
		if err != nil {
			return err
		}
		qty, err := m.prompt.Quantity(ctx, "Quantity bought:")
		if err != nil {
			return err
		}
		price, err := m.prompt.Amount(ctx, "Unit price:")
		if err != nil {
			return err
		}
		market, err := m.prompt.Text(ctx, "Supermarket:")
		if err != nil {
			return err
		}

		if err := m.svc.AddPurchase(ctx, month, product, qty, price, market); err != nil {
			if errors.Is(err, core.ErrProductNotFound) {
				fmt.Fprintf(m.out, "Error: Product '%s' does not exist\n", product)
				continue
			}
			return err
		}
		fmt.Fprintln(m.out, "Purchase registered successfully!")
	}
	return nil
}

func (m *Menu) comparePlanned(ctx context.Context) error {
	name, err := m.prompt.Text(ctx, "Product name:")
	if err != nil {
		return err
	}
	month, err := m.prompt.Text(ctx, "Month (YYYY-MM):")
	if err != nil {
		return err
	}
	c, ok := m.svc.ComparePlannedPrice(name, month)
	if !ok {
		fmt.Fprintln(m.out, "Product not found.")
		return nil
	}
	for _, line := range c.Lines(m.currency) {
		fmt.Fprintln(m.out, line)
	}
	return nil
}

func (m *Menu) updatePlannedPrice(ctx context.Context) error {
	name, err := m.prompt.Text(ctx, "Product name to update:")
	if err != nil {
		return err
	}
	price, err := m.prompt.Amount(ctx, "New planned price:")
	if err != nil {
		return err
	}
	if m.svc.UpdatePlannedPrice(ctx, name, price) {
		fmt.Fprintln(m.out, "Price updated successfully!")
	} else {
		fmt.Fprintln(m.out, "Product not found.")
	}
	return nil
}
