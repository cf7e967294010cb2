// Package template persists the reusable settings subset of an invoice:
// company name, language, currency and VAT rate. The durable form is a
// small JSON record; unknown fields are ignored and malformed fields fall
// back to documented defaults on load, so a damaged file degrades to
// defaults rather than failing the whole load.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"invoicer/internal/invoice"
	"invoicer/internal/logger"
	"invoicer/pkg/models"
)

// Defaults applied to absent or malformed template fields on load.
var (
	DefaultLanguage = models.LanguageEnglish
	DefaultCurrency = models.CurrencyUSD
	DefaultVATRate  = decimal.NewFromFloat(0.20)
)

// Store reads and writes template records on the local filesystem.
type Store struct {
	log zerolog.Logger
}

// NewStore creates a template store.
func NewStore() *Store {
	return &Store{
		log: logger.WithComponent("template"),
	}
}

// Save validates the template and writes it to path as a single atomic
// record. A save failure is surfaced to the caller; no partial file is
// left behind.
func (s *Store) Save(path string, t models.Template) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %v", invoice.ErrInvalidTemplate, err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), ".template-*.json")
	if err != nil {
		return fmt.Errorf("writing template: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing template: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing template: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing template: %w", err)
	}

	s.log.Info().Str("path", path).Msg("Template saved")
	return nil
}

// Load reads the template record at path. A missing or unparseable file is
// an error; within a parseable record, each absent or malformed field
// falls back to its default (English, USD, VAT rate 0.20) and unknown
// fields are ignored.
func (s *Store) Load(path string) (models.Template, error) {
	t := models.Template{
		Language: DefaultLanguage,
		Currency: DefaultCurrency,
		VATRate:  DefaultVATRate,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, fmt.Errorf("%w: %s", invoice.ErrTemplateNotFound, path)
		}
		return t, fmt.Errorf("reading template: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return t, fmt.Errorf("%w: %v", invoice.ErrInvalidTemplate, err)
	}

	if v, ok := raw["company_name"]; ok {
		var name string
		if err := json.Unmarshal(v, &name); err == nil {
			t.CompanyName = name
		} else {
			s.fieldWarning(path, "company_name")
		}
	}
	if v, ok := raw["language"]; ok {
		var str string
		if err := json.Unmarshal(v, &str); err == nil {
			if lang, err := models.ParseLanguage(str); err == nil {
				t.Language = lang
			} else {
				s.fieldWarning(path, "language")
			}
		} else {
			s.fieldWarning(path, "language")
		}
	}
	if v, ok := raw["currency"]; ok {
		var str string
		if err := json.Unmarshal(v, &str); err == nil {
			if cur, err := models.ParseCurrency(str); err == nil {
				t.Currency = cur
			} else {
				s.fieldWarning(path, "currency")
			}
		} else {
			s.fieldWarning(path, "currency")
		}
	}
	if v, ok := raw["vat_rate"]; ok {
		var rate decimal.Decimal
		if err := json.Unmarshal(v, &rate); err == nil &&
			!rate.IsNegative() && !rate.GreaterThan(decimal.NewFromInt(1)) {
			t.VATRate = rate
		} else {
			s.fieldWarning(path, "vat_rate")
		}
	}

	s.log.Debug().
		Str("path", path).
		Str("language", t.Language.String()).
		Str("currency", t.Currency.String()).
		Str("vat_rate", t.VATRate.String()).
		Msg("Template loaded")

	return t, nil
}

func (s *Store) fieldWarning(path, field string) {
	s.log.Warn().
		Str("path", path).
		Str("field", field).
		Msg("Template field malformed, using default")
}
