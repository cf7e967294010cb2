// Package invoice implements the computation core of the invoice pipeline:
// deriving totals from line items, spelling amounts out in words, and the
// single-session editing facade the command surface drives.
//
// All monetary arithmetic uses decimal values rounded half-up to two
// decimal places at the point each figure is produced. The tax-inclusive
// total is the sum of the already-rounded subtotal and VAT amount, so the
// printed figures always add up.
package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
	"invoicer/pkg/models"
)

// Calculate derives the monetary summary of an ordered item sequence.
//
// It is pure: the same items and rate always produce the same totals, and
// nothing is cached or mutated. Items whose quantity or unit price is not a
// valid non-negative number contribute nothing and have their positions
// reported in Totals.SkippedItems; they are never an error.
func Calculate(items []models.LineItem, vatRate decimal.Decimal) models.Totals {
	totals := models.Totals{
		Subtotal:    decimal.Zero,
		VATAmount:   decimal.Zero,
		TotalIncVAT: decimal.Zero,
	}

	for i, item := range items {
		lineTotal, ok := LineTotal(item)
		if !ok {
			totals.SkippedItems = append(totals.SkippedItems, i)
			continue
		}
		totals.Subtotal = totals.Subtotal.Add(lineTotal)
	}

	totals.Subtotal = totals.Subtotal.Round(2)
	totals.VATAmount = totals.Subtotal.Mul(vatRate).Round(2)
	totals.TotalIncVAT = totals.Subtotal.Add(totals.VATAmount)

	return totals
}

// LineTotal parses one item and returns round2(quantity * unit price).
// The second return value reports whether the item is valid; an invalid
// item returns a zero total.
func LineTotal(item models.LineItem) (decimal.Decimal, bool) {
	qty, ok := parseAmount(item.Quantity)
	if !ok {
		return decimal.Zero, false
	}
	price, ok := parseAmount(item.UnitPrice)
	if !ok {
		return decimal.Zero, false
	}
	return qty.Mul(price).Round(2), true
}

// parseAmount parses raw user text as a non-negative decimal.
func parseAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}
