// Package i18n holds the label table for generated documents. One
// data-driven table serves every supported language; rendering code never
// branches on the language itself.
package i18n

import "invoicer/pkg/models"

// labels maps language → label key → display string.
var labels = map[models.Language]map[string]string{
	models.LanguageEnglish: {
		"invoice":         "Invoice",
		"company_name":    "Company Name",
		"client_name":     "Client Name",
		"tax_id":          "Tax ID",
		"invoice_number":  "Invoice Number",
		"date":            "Date",
		"description":     "Description",
		"quantity":        "Quantity",
		"unit":            "Unit",
		"price":           "Price",
		"total":           "Total",
		"subtotal":        "Subtotal",
		"vat":             "VAT",
		"total_ttc":       "Total (Inc. VAT)",
		"amount_in_words": "Amount in Words",
		"signature":       "Signature",
	},
	models.LanguageFrench: {
		"invoice":         "Facture",
		"company_name":    "Nom de l'entreprise",
		"client_name":     "Nom du client",
		"tax_id":          "ICE",
		"invoice_number":  "N° Facture",
		"date":            "Date",
		"description":     "Description",
		"quantity":        "Quantité",
		"unit":            "Unité",
		"price":           "Prix",
		"total":           "Total",
		"subtotal":        "Sous-total",
		"vat":             "TVA",
		"total_ttc":       "Total TTC",
		"amount_in_words": "Montant en lettres",
		"signature":       "Signature",
	},
}

// Label returns the display string for a key in the given language. It is
// total: an unknown language or key returns the key unchanged so documents
// still render with a visible placeholder.
func Label(lang models.Language, key string) string {
	table, ok := labels[lang]
	if !ok {
		table, ok = labels[models.DefaultLanguage]
		if !ok {
			return key
		}
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Register adds or extends the label set for a language. Existing keys for
// that language are overwritten; other languages are untouched.
func Register(lang models.Language, entries map[string]string) {
	table, ok := labels[lang]
	if !ok {
		table = make(map[string]string, len(entries))
		labels[lang] = table
	}
	for k, v := range entries {
		table[k] = v
	}
}
