// Package render assembles an invoice, its derived totals and the label
// table into a fixed-order PDF document.
//
// Block order: header image, issuer/client block, items table, totals
// block, amount-in-words line, signature block, footer image. Image blocks
// are each independently optional: an unreadable image is skipped with a
// recorded warning and the rest of the document still renders.
package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicer/internal/i18n"
	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/pkg/models"
)

// Page geometry in millimeters. Images are fitted into fixed bounding
// boxes, preserving their aspect ratio.
const (
	pageMargin = 15.0

	headerBoxWidth  = 180.0
	headerBoxHeight = 30.0

	signatureBoxWidth  = 60.0
	signatureBoxHeight = 25.0

	footerBoxWidth  = 180.0
	footerBoxHeight = 20.0
)

// Result reports the outcome of a successful render.
type Result struct {
	// Warnings lists recoverable problems, one per skipped block or line
	// item, in the order they were encountered.
	Warnings []string

	// RenderedItems is the number of line-item rows in the table.
	RenderedItems int
}

// Renderer produces invoice documents with a fixed page geometry.
type Renderer struct {
	pageSize string
	log      zerolog.Logger
}

// New creates a renderer for the given page size ("A4" or "Letter").
func New(pageSize string) *Renderer {
	return &Renderer{
		pageSize: pageSize,
		log:      logger.WithComponent("render"),
	}
}

// Render writes the assembled document to w. Totals must have been derived
// from the invoice's current items; the renderer only displays them.
func (r *Renderer) Render(inv *models.Invoice, totals models.Totals, w io.Writer) (*Result, error) {
	result := &Result{}

	pdf := gofpdf.New("P", "mm", r.pageSize, "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	lang := inv.Language
	label := func(key string) string {
		return tr(i18n.Label(lang, key))
	}

	r.imageBlock(pdf, result, inv.HeaderImagePath, "header", headerBoxWidth, headerBoxHeight)
	r.partyBlock(pdf, tr, label, inv)
	r.itemsTable(pdf, tr, label, inv, result)
	r.totalsBlock(pdf, label, inv, totals)
	r.wordsLine(pdf, tr, label, inv, totals)

	if inv.SignatureImagePath != "" {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, label("signature"), "", 1, "L", false, 0, "")
		r.imageBlock(pdf, result, inv.SignatureImagePath, "signature", signatureBoxWidth, signatureBoxHeight)
	}
	r.imageBlock(pdf, result, inv.FooterImagePath, "footer", footerBoxWidth, footerBoxHeight)

	if err := pdf.Output(w); err != nil {
		return nil, invoice.NewRenderError("Render", err, "writing document")
	}

	r.log.Info().
		Str("invoice_number", inv.InvoiceNumber).
		Int("items", result.RenderedItems).
		Int("warnings", len(result.Warnings)).
		Msg("Document rendered")

	return result, nil
}

// RenderFile renders to path via a temporary file so a failed render never
// leaves a partial document claiming success.
func (r *Renderer) RenderFile(inv *models.Invoice, totals models.Totals, path string) (*Result, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".invoice-*.pdf")
	if err != nil {
		return nil, invoice.NewRenderError("WriteOutput", err, "creating temporary file")
	}
	tmpName := tmp.Name()

	result, err := r.Render(inv, totals, tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, invoice.NewRenderError("WriteOutput", err, "closing temporary file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return nil, invoice.NewRenderError("WriteOutput", err, "moving document into place")
	}
	return result, nil
}

// partyBlock renders the issuer name and the labeled identity lines.
func (r *Renderer) partyBlock(pdf *gofpdf.Fpdf, tr func(string) string, label func(string) string, inv *models.Invoice) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(inv.CompanyName), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	line := func(key, value string) {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", label(key), tr(value)), "", 1, "L", false, 0, "")
	}
	line("invoice_number", inv.InvoiceNumber)
	line("date", inv.IssueDate)
	line("client_name", inv.ClientName)
	if inv.TaxID != "" {
		line("tax_id", inv.TaxID)
	}
	pdf.Ln(6)
}

// Items table column widths, mm. Sum = 180 = A4 width minus margins.
var colWidths = [6]float64{10, 70, 20, 20, 30, 30}

// itemsTable renders the header row and one row per valid line item.
// Invalid items are reported as warnings, matching the skipped indices the
// calculator produces.
func (r *Renderer) itemsTable(pdf *gofpdf.Fpdf, tr func(string) string, label func(string) string, inv *models.Invoice, result *Result) {
	headers := [6]string{"#", label("description"), label("quantity"), label("unit"), label("price"), label("total")}
	aligns := [6]string{"C", "L", "R", "C", "R", "R"}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(200, 200, 200)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	row := 0
	for idx, item := range inv.Items.Items() {
		lineTotal, ok := invoice.LineTotal(item)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line item %d skipped: quantity or price is not a valid non-negative number", idx+1))
			continue
		}
		row++
		cells := [6]string{
			fmt.Sprintf("%d", row),
			tr(item.Description),
			item.Quantity,
			tr(item.Unit),
			money(mustParse(item.UnitPrice), inv.Currency),
			money(lineTotal, inv.Currency),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
	result.RenderedItems = row
}

// totalsBlock renders the subtotal, VAT and tax-inclusive total, right
// aligned under the table. It always renders, even for an empty table.
func (r *Renderer) totalsBlock(pdf *gofpdf.Fpdf, label func(string) string, inv *models.Invoice, totals models.Totals) {
	pdf.Ln(3)

	labelWidth := colWidths[0] + colWidths[1] + colWidths[2] + colWidths[3] + colWidths[4]
	rows := []struct {
		key    string
		bold   bool
		amount decimal.Decimal
	}{
		{"subtotal", false, totals.Subtotal},
		{"vat", false, totals.VATAmount},
		{"total_ttc", true, totals.TotalIncVAT},
	}
	for _, rw := range rows {
		style := ""
		if rw.bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		name := label(rw.key)
		if rw.key == "vat" {
			name = fmt.Sprintf("%s (%s%%)", name, inv.VATRate.Mul(decimal.NewFromInt(100)).StringFixed(0))
		}
		pdf.CellFormat(labelWidth, 7, name, "", 0, "R", false, 0, "")
		pdf.CellFormat(colWidths[5], 7, money(rw.amount, inv.Currency), "1", 1, "R", false, 0, "")
	}
}

// wordsLine renders the spelled-out tax-inclusive total.
func (r *Renderer) wordsLine(pdf *gofpdf.Fpdf, tr func(string) string, label func(string) string, inv *models.Invoice, totals models.Totals) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 11)
	words := invoice.AmountInWords(totals.TotalIncVAT, inv.Language, inv.Currency)
	pdf.MultiCell(0, 6, fmt.Sprintf("%s: %s", label("amount_in_words"), tr(words)), "", "L", false)
}

// imageBlock places an image fitted inside a boxW x boxH bounding box at
// the current position. A missing or undecodable image records a warning
// and skips the block; it never fails the render.
func (r *Renderer) imageBlock(pdf *gofpdf.Fpdf, result *Result, path, name string, boxW, boxH float64) {
	if path == "" {
		return
	}

	w, h, err := fitImage(path, boxW, boxH)
	if err != nil {
		warning := fmt.Sprintf("%s image skipped: %v", name, err)
		result.Warnings = append(result.Warnings, warning)
		r.log.Warn().Str("block", name).Str("path", path).Err(err).Msg("Image block skipped")
		return
	}

	pdf.ImageOptions(path, pageMargin, 0, w, h, true,
		gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
	if pdf.Err() {
		// Pre-validation passed but gofpdf could not embed the image
		// (e.g. an unsupported PNG variant). Recover the document and
		// skip the block.
		warning := fmt.Sprintf("%s image skipped: %v", name, pdf.Error())
		result.Warnings = append(result.Warnings, warning)
		r.log.Warn().Str("block", name).Str("path", path).Err(pdf.Error()).Msg("Image block skipped")
		pdf.ClearError()
		return
	}
	pdf.Ln(4)
}

// fitImage decodes the image dimensions and scales them to fit inside the
// bounding box, preserving aspect ratio. Returns the target size in mm.
func fitImage(path string, boxW, boxH float64) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", invoice.ErrImageUnreadable, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", invoice.ErrImageUnreadable, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("%w: empty image", invoice.ErrImageUnreadable)
	}

	w := boxW
	h := boxW * float64(cfg.Height) / float64(cfg.Width)
	if h > boxH {
		h = boxH
		w = boxH * float64(cfg.Width) / float64(cfg.Height)
	}
	return w, h, nil
}

// money formats a monetary value as "amount code", two decimal places.
func money(amount decimal.Decimal, cur models.Currency) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), cur)
}

// mustParse re-parses an already-validated amount string.
func mustParse(raw string) decimal.Decimal {
	d, _ := decimal.NewFromString(strings.TrimSpace(raw))
	return d
}
