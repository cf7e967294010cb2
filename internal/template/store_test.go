package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/invoice"
	"invoicer/pkg/models"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	store := NewStore()

	saved := models.Template{
		CompanyName: "Acme",
		Language:    models.LanguageFrench,
		Currency:    models.CurrencyEUR,
		VATRate:     decimal.RequireFromString("0.20"),
	}
	require.NoError(t, store.Save(path, saved))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, saved.CompanyName, loaded.CompanyName)
	assert.Equal(t, saved.Language, loaded.Language)
	assert.Equal(t, saved.Currency, loaded.Currency)
	assert.True(t, saved.VATRate.Equal(loaded.VATRate))
}

func TestLoadDefaultsMalformedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	content := `{
		"company_name": 42,
		"language": "Klingon",
		"currency": "XXX",
		"vat_rate": "abc",
		"unknown_field": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := NewStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", loaded.CompanyName)
	assert.Equal(t, DefaultLanguage, loaded.Language)
	assert.Equal(t, DefaultCurrency, loaded.Currency)
	assert.True(t, DefaultVATRate.Equal(loaded.VATRate))
}

func TestLoadDefaultsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"company_name": "Acme"}`), 0644))

	loaded, err := NewStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", loaded.CompanyName)
	assert.Equal(t, DefaultLanguage, loaded.Language)
	assert.Equal(t, DefaultCurrency, loaded.Currency)
	assert.True(t, DefaultVATRate.Equal(loaded.VATRate))
}

func TestLoadAcceptsNumericVATRate(t *testing.T) {
	// The original wire format carried vat_rate as a bare JSON number.
	path := filepath.Join(t.TempDir(), "template.json")
	content := `{"company_name":"Acme","language":"English","currency":"USD","vat_rate":0.14}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := NewStore().Load(path)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("0.14").Equal(loaded.VATRate))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewStore().Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, invoice.ErrTemplateNotFound)
}

func TestLoadUnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := NewStore().Load(path)
	assert.ErrorIs(t, err, invoice.ErrInvalidTemplate)
}

func TestSaveRejectsInvalidTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	bad := models.Template{
		Language: models.LanguageEnglish,
		Currency: models.CurrencyUSD,
		VATRate:  decimal.RequireFromString("1.5"),
	}

	err := NewStore().Save(path, bad)
	assert.ErrorIs(t, err, invoice.ErrInvalidTemplate)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no partial file after a rejected save")
}

func TestSaveFailureSurfaces(t *testing.T) {
	// Target directory does not exist; the save must fail loudly.
	path := filepath.Join(t.TempDir(), "no-such-dir", "template.json")
	good := models.Template{
		Language: models.LanguageEnglish,
		Currency: models.CurrencyUSD,
		VATRate:  decimal.RequireFromString("0.2"),
	}
	assert.Error(t, NewStore().Save(path, good))
}
