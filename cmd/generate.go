package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicer/internal/config"
	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/internal/session"
	"invoicer/internal/template"
	"invoicer/pkg/models"
)

var generateCmd = &cobra.Command{
	Use:   "generate [invoice-file]",
	Short: "Generate a PDF invoice from a JSON invoice record",
	Long: `Read an invoice record (parties, settings, line items) from a JSON file,
compute the totals and render the finished PDF document.

Line items whose quantity or price is not a valid non-negative number are
excluded from the totals and reported; they never abort generation. The
same applies to header, signature and footer images that cannot be read:
the block is skipped with a warning and the rest of the document renders.

A template file can supply defaults for the company name, language,
currency and VAT rate when the record omits them.`,
	Example: `  # Render next to the record, named after the invoice number
  invoicer generate invoice.json

  # Choose the output path
  invoicer generate invoice.json -o out/facture-2024-001.pdf

  # Fill missing settings from a saved template
  invoicer generate invoice.json --template defaults.json`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var decimalOne = decimal.NewFromInt(1)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "Output PDF path (default: <invoice_number>.pdf)")
	generateCmd.Flags().String("template", "", "Template file supplying defaults for missing settings (default: $INVOICER_DEFAULTS)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	outputPath, _ := cmd.Flags().GetString("output")
	templatePath, _ := cmd.Flags().GetString("template")
	recordPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if templatePath == "" {
		templatePath = cfg.DefaultsPath
	}

	inv, err := readInvoiceRecord(recordPath, templatePath, log)
	if err != nil {
		return err
	}

	if outputPath == "" {
		if inv.InvoiceNumber != "" {
			outputPath = inv.InvoiceNumber + ".pdf"
		} else {
			outputPath = "invoice.pdf"
		}
	}

	log.Info().
		Str("record", recordPath).
		Str("output", outputPath).
		Str("currency", inv.Currency.String()).
		Str("language", inv.Language.String()).
		Msg("Starting invoice generation")

	sess := session.NewFromInvoice(*inv, cfg.PageSize)
	totals := sess.Totals()

	result, err := sess.Generate(outputPath)
	if err != nil {
		return handleGenerateError(err, log)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	fmt.Printf("Generated %s: %d item(s), total %s %s\n",
		outputPath, result.RenderedItems, totals.TotalIncVAT.StringFixed(2), inv.Currency)

	return nil
}

// readInvoiceRecord loads and validates the invoice record, filling
// settings the record omits from the template file (if given).
func readInvoiceRecord(recordPath, templatePath string, log zerolog.Logger) (*models.Invoice, error) {
	data, err := os.ReadFile(recordPath)
	if err != nil {
		log.Error().Err(err).Str("file", recordPath).Msg("Failed to read invoice record")
		return nil, fmt.Errorf("failed to read invoice record: %w", err)
	}

	var inv models.Invoice
	if err := json.Unmarshal(data, &inv); err != nil {
		log.Error().Err(err).Str("file", recordPath).Msg("Invoice record is not valid JSON")
		return nil, fmt.Errorf("invoice record is not valid JSON: %w", err)
	}

	// Which keys the record actually carries, for template defaulting.
	var present map[string]json.RawMessage
	if err := json.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("invoice record is not a JSON object: %w", err)
	}

	if templatePath != "" {
		t, err := template.NewStore().Load(templatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load template: %w", err)
		}
		if inv.CompanyName == "" {
			inv.CompanyName = t.CompanyName
		}
		if inv.Language == "" {
			inv.Language = t.Language
		}
		if inv.Currency == "" {
			inv.Currency = t.Currency
		}
		if _, ok := present["vat_rate"]; !ok {
			inv.VATRate = t.VATRate
		}
	}

	if inv.Currency == "" {
		inv.Currency = models.CurrencyUSD
	}
	if err := inv.Currency.Validate(); err != nil {
		return nil, err
	}
	// Unsupported language falls back instead of failing; labels and the
	// amount-in-words line come out in the default language.
	if inv.Language.Validate() != nil {
		log.Warn().
			Str("language", inv.Language.String()).
			Str("fallback", models.DefaultLanguage.String()).
			Msg("Unsupported language, falling back to default")
		inv.Language = models.DefaultLanguage
	}
	if inv.VATRate.IsNegative() || inv.VATRate.GreaterThan(decimalOne) {
		return nil, models.ErrVATRateOutOfRange
	}

	return &inv, nil
}

// handleGenerateError provides user-friendly messages for generation failures.
func handleGenerateError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Invoice generation failed")

	var renderErr *invoice.RenderError
	switch {
	case errors.As(err, &renderErr):
		return fmt.Errorf("could not produce the document (%s). Check that the output directory exists and is writable: %w", renderErr.Op, err)
	case errors.Is(err, invoice.ErrTemplateNotFound):
		return fmt.Errorf("template file not found. Check the --template path: %w", err)
	default:
		return fmt.Errorf("invoice generation failed: %w", err)
	}
}
