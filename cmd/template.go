package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/internal/template"
	"invoicer/pkg/models"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Save and load reusable invoice defaults",
	Long: `Templates persist the reusable subset of invoice settings: company
name, language, currency and VAT rate. Saving writes the four fields as
one atomic JSON record; loading falls back to documented defaults
(English, USD, VAT 0.20) for any field that is absent or malformed.`,
}

var templateSaveCmd = &cobra.Command{
	Use:     "save [template-file]",
	Short:   "Write invoice defaults to a template file",
	Example: `  invoicer template save defaults.json --company "Acme" --language French --currency EUR --vat 0.20`,
	Args:    cobra.ExactArgs(1),
	RunE:    runTemplateSave,
}

var templateLoadCmd = &cobra.Command{
	Use:   "load [template-file]",
	Short: "Read a template file and print the resolved settings",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateLoad,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(templateSaveCmd)
	templateCmd.AddCommand(templateLoadCmd)

	templateSaveCmd.Flags().String("company", "", "Company name")
	templateSaveCmd.Flags().String("language", string(models.DefaultLanguage), "Document language (English, French)")
	templateSaveCmd.Flags().String("currency", string(models.CurrencyUSD), "Currency code (USD, EUR, MAD)")
	templateSaveCmd.Flags().String("vat", "0.20", "VAT rate between 0 and 1")
}

func runTemplateSave(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("template")

	company, _ := cmd.Flags().GetString("company")
	langStr, _ := cmd.Flags().GetString("language")
	curStr, _ := cmd.Flags().GetString("currency")
	vatStr, _ := cmd.Flags().GetString("vat")

	lang, err := models.ParseLanguage(langStr)
	if err != nil {
		return err
	}
	cur, err := models.ParseCurrency(curStr)
	if err != nil {
		return err
	}
	rate, err := decimal.NewFromString(vatStr)
	if err != nil {
		return fmt.Errorf("parsing --vat: %w", err)
	}

	t := models.Template{
		CompanyName: company,
		Language:    lang,
		Currency:    cur,
		VATRate:     rate,
	}

	if err := template.NewStore().Save(args[0], t); err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Template save failed")
		if errors.Is(err, invoice.ErrInvalidTemplate) {
			return fmt.Errorf("template rejected: %w", err)
		}
		return fmt.Errorf("failed to save template: %w", err)
	}

	fmt.Printf("Template saved to %s\n", args[0])
	return nil
}

func runTemplateLoad(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("template")

	t, err := template.NewStore().Load(args[0])
	if err != nil {
		log.Error().Err(err).Str("file", args[0]).Msg("Template load failed")
		if errors.Is(err, invoice.ErrTemplateNotFound) {
			return fmt.Errorf("template file not found: %s", args[0])
		}
		return fmt.Errorf("failed to load template: %w", err)
	}

	jsonData, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to create JSON output: %w", err)
	}
	if _, err := os.Stdout.Write(jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println()
	return nil
}
