package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one billable row of an invoice.
//
// Quantity and UnitPrice hold the raw text entered by the user. They are
// parsed when totals are computed; a row whose text is not a valid
// non-negative number is excluded from totals but kept in the record so the
// user can correct it.
type LineItem struct {
	ID          uuid.UUID `json:"-"`               // Stable identity, assigned by ItemList
	Description string    `json:"description"`     // Free-text description of the good or service
	Quantity    string    `json:"quantity"`       // Raw quantity text, parsed at compute time
	Unit        string    `json:"unit,omitempty"`  // Optional unit label (hours, pcs, ...)
	UnitPrice   string    `json:"unit_price"`      // Raw unit price text, in the invoice currency
}

// Invoice is the in-memory record for one editing/generation session.
// It is never persisted as a whole; only Template outlives the session.
type Invoice struct {
	// Parties
	CompanyName string `json:"company_name"`     // Issuer name
	ClientName  string `json:"client_name"`      // Client name
	TaxID       string `json:"tax_id,omitempty"` // Opaque tax identifier (e.g. a Moroccan ICE)

	// Document identity
	InvoiceNumber string `json:"invoice_number"` // Human-readable invoice number
	IssueDate     string `json:"date"`           // Issue date, YYYY-MM-DD

	// Settings
	Currency Currency        `json:"currency"` // Currency code (USD, EUR, MAD)
	Language Language        `json:"language"` // Document language
	VATRate  decimal.Decimal `json:"vat_rate"` // VAT rate in [0,1]

	// Line items, ordered, stably keyed
	Items ItemList `json:"items"`

	// Optional image blocks, validated lazily at render time
	HeaderImagePath    string `json:"header_image,omitempty"`
	SignatureImagePath string `json:"signature_image,omitempty"`
	FooterImagePath    string `json:"footer_image,omitempty"`
}

// Totals holds the derived monetary summary of an invoice. It is always
// recomputed from the current line items and VAT rate, never stored.
type Totals struct {
	Subtotal    decimal.Decimal // Sum of valid line totals, rounded to 2dp each
	VATAmount   decimal.Decimal // round2(Subtotal * rate)
	TotalIncVAT decimal.Decimal // Subtotal + VATAmount, from the rounded parts

	// SkippedItems lists the zero-based positions of line items excluded
	// from the sums because quantity or price did not parse as a
	// non-negative number.
	SkippedItems []int
}

// Template is the persisted subset of invoice settings reused across
// sessions. The JSON field names are the durable wire format.
type Template struct {
	CompanyName string          `json:"company_name"`
	Language    Language        `json:"language"`
	Currency    Currency        `json:"currency"`
	VATRate     decimal.Decimal `json:"vat_rate"`
}

// Validate checks that every template field is within its valid range.
func (t Template) Validate() error {
	if err := t.Language.Validate(); err != nil {
		return err
	}
	if err := t.Currency.Validate(); err != nil {
		return err
	}
	if t.VATRate.IsNegative() || t.VATRate.GreaterThan(decimal.NewFromInt(1)) {
		return ErrVATRateOutOfRange
	}
	return nil
}
