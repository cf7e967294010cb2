package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"invoicer/pkg/models"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Subtotal", Label(models.LanguageEnglish, "subtotal"))
	assert.Equal(t, "Sous-total", Label(models.LanguageFrench, "subtotal"))
	assert.Equal(t, "Total TTC", Label(models.LanguageFrench, "total_ttc"))
}

func TestLabelIsTotal(t *testing.T) {
	// Unknown key comes back unchanged so the document still renders with
	// a visible placeholder.
	assert.Equal(t, "no_such_key", Label(models.LanguageEnglish, "no_such_key"))
	assert.Equal(t, "no_such_key", Label(models.LanguageFrench, "no_such_key"))

	// Unknown language falls back to the default table.
	assert.Equal(t, "Subtotal", Label(models.Language("Klingon"), "subtotal"))
	assert.Equal(t, "still_unknown", Label(models.Language("Klingon"), "still_unknown"))
}

func TestRegister(t *testing.T) {
	lang := models.Language("Spanish")
	Register(lang, map[string]string{"subtotal": "Subtotal parcial"})

	assert.Equal(t, "Subtotal parcial", Label(lang, "subtotal"))
	// Keys not registered for the new language still fall back to the key.
	assert.Equal(t, "vat", Label(lang, "vat"))
	// Other languages are untouched.
	assert.Equal(t, "Sous-total", Label(models.LanguageFrench, "subtotal"))
}
