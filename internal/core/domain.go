package core

import (
	"errors"
	"strings"
)

type (
	// Product is a planned shopping-list entry.
	Product struct {
		Name            string
		Unit            string // kg, L, pack...
		PlannedQuantity uint32
		PlannedPrice    float64 // per unit
	}

	// Purchase records an actual buy of a product in a given month.
	Purchase struct {
		Month          string // "YYYY-MM", compared verbatim
		ProductName    string
		QuantityBought uint32
		UnitPrice      float64
		Supermarket    string
	}
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyName       = errors.New("empty product name")
	ErrInvalidNumber   = errors.New("invalid number")
	ErrNegativeValue   = errors.New("negative value")
)

// Validate checks the fields that can be wrong in a seeded or imported product.
// The Manager itself accepts any product.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.PlannedPrice < 0 {
		return ErrNegativeValue
	}
	return nil
}
