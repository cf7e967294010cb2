// Package session provides the editing-session facade the form surface
// drives: field edits, line-item mutations, totals on demand, document
// generation and template save/load. A session owns exactly one invoice
// and lives for one editing/generation cycle; nothing in it survives the
// session except templates explicitly saved.
package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/internal/render"
	"invoicer/internal/template"
	"invoicer/pkg/models"
)

// Session is single-threaded and not safe for concurrent use; there is
// exactly one logical writer.
type Session struct {
	inv      models.Invoice
	renderer *render.Renderer
	store    *template.Store
	log      zerolog.Logger
}

// New creates a session seeded from the given defaults.
func New(defaults models.Template, pageSize string) *Session {
	return &Session{
		inv: models.Invoice{
			CompanyName: defaults.CompanyName,
			Currency:    defaults.Currency,
			Language:    defaults.Language,
			VATRate:     defaults.VATRate,
			IssueDate:   time.Now().Format("2006-01-02"),
		},
		renderer: render.New(pageSize),
		store:    template.NewStore(),
		log:      logger.WithComponent("session"),
	}
}

// NewFromInvoice wraps an already-populated invoice record, e.g. one read
// from a file by the CLI.
func NewFromInvoice(inv models.Invoice, pageSize string) *Session {
	s := New(models.Template{
		CompanyName: inv.CompanyName,
		Currency:    inv.Currency,
		Language:    inv.Language,
		VATRate:     inv.VATRate,
	}, pageSize)
	s.inv = inv
	return s
}

// Invoice returns the invoice under edit.
func (s *Session) Invoice() *models.Invoice {
	return &s.inv
}

// SetField updates one invoice field by key. Enum and range fields are
// validated; an unrecognized key returns ErrUnknownField.
func (s *Session) SetField(key, value string) error {
	switch key {
	case "company_name":
		s.inv.CompanyName = value
	case "client_name":
		s.inv.ClientName = value
	case "tax_id":
		s.inv.TaxID = value
	case "invoice_number":
		s.inv.InvoiceNumber = value
	case "date":
		s.inv.IssueDate = value
	case "currency":
		cur, err := models.ParseCurrency(value)
		if err != nil {
			return err
		}
		s.inv.Currency = cur
	case "language":
		lang, err := models.ParseLanguage(value)
		if err != nil {
			return err
		}
		s.inv.Language = lang
	case "vat_rate":
		rate, err := decimal.NewFromString(value)
		if err != nil {
			return fmt.Errorf("parsing vat_rate: %w", err)
		}
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			return models.ErrVATRateOutOfRange
		}
		s.inv.VATRate = rate
	case "header_image":
		s.inv.HeaderImagePath = value
	case "signature_image":
		s.inv.SignatureImagePath = value
	case "footer_image":
		s.inv.FooterImagePath = value
	default:
		return fmt.Errorf("%w: %q", invoice.ErrUnknownField, key)
	}
	return nil
}

// AddLineItem appends an empty line item and returns its stable ID.
func (s *Session) AddLineItem() uuid.UUID {
	return s.inv.Items.Add()
}

// RemoveLineItem deletes a line item by ID.
func (s *Session) RemoveLineItem(id uuid.UUID) error {
	if !s.inv.Items.Remove(id) {
		return fmt.Errorf("%w: %s", invoice.ErrItemNotFound, id)
	}
	return nil
}

// EditLineItem updates one field of a line item. Quantity and price accept
// any text; invalid numbers simply exclude the row from totals until
// corrected.
func (s *Session) EditLineItem(id uuid.UUID, field, value string) error {
	item := s.inv.Items.Get(id)
	if item == nil {
		return fmt.Errorf("%w: %s", invoice.ErrItemNotFound, id)
	}
	switch field {
	case "description":
		item.Description = value
	case "quantity":
		item.Quantity = value
	case "unit":
		item.Unit = value
	case "price":
		item.UnitPrice = value
	default:
		return fmt.Errorf("%w: %q", invoice.ErrUnknownItemField, field)
	}
	return nil
}

// Totals recomputes the monetary summary from the current items and VAT
// rate. It is never cached; presentation state can only display it.
func (s *Session) Totals() models.Totals {
	return invoice.Calculate(s.inv.Items.Items(), s.inv.VATRate)
}

// Generate renders the invoice to dest. Skipped line items and skipped
// image blocks are reported in the result's warnings; only a failure to
// produce the document at all is an error.
func (s *Session) Generate(dest string) (*render.Result, error) {
	totals := s.Totals()
	result, err := s.renderer.RenderFile(&s.inv, totals, dest)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("dest", dest).
		Str("total", totals.TotalIncVAT.StringFixed(2)).
		Ints("skipped_items", totals.SkippedItems).
		Msg("Invoice generated")
	return result, nil
}

// SaveTemplate persists the session's reusable settings to dest.
func (s *Session) SaveTemplate(dest string) error {
	return s.store.Save(dest, models.Template{
		CompanyName: s.inv.CompanyName,
		Language:    s.inv.Language,
		Currency:    s.inv.Currency,
		VATRate:     s.inv.VATRate,
	})
}

// LoadTemplate reads a template and overwrites the four fields it governs
// as one atomic unit.
func (s *Session) LoadTemplate(src string) error {
	t, err := s.store.Load(src)
	if err != nil {
		return err
	}
	s.inv.CompanyName = t.CompanyName
	s.inv.Language = t.Language
	s.inv.Currency = t.Currency
	s.inv.VATRate = t.VATRate
	return nil
}
