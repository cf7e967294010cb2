package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedCurrency is returned when a currency code is not in the
	// supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency code")

	// ErrUnsupportedLanguage is returned when a language is not in the
	// supported set.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrVATRateOutOfRange is returned when a VAT rate is outside [0,1].
	ErrVATRateOutOfRange = errors.New("vat rate must be between 0 and 1")
)

// Currency is an ISO-style currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMAD Currency = "MAD"
)

// exchangeRates maps each supported currency to its static rate against
// USD. Informational only; totals are never converted between currencies.
var exchangeRates = map[Currency]float64{
	CurrencyUSD: 1.0,
	CurrencyEUR: 0.92,
	CurrencyMAD: 10.2,
}

// Validate checks the currency against the supported set.
func (c Currency) Validate() error {
	if _, ok := exchangeRates[c]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}
	return nil
}

func (c Currency) String() string {
	return string(c)
}

// ExchangeRate returns the static rate of the currency against USD, or
// false if the currency is not supported.
func (c Currency) ExchangeRate() (float64, bool) {
	rate, ok := exchangeRates[c]
	return rate, ok
}

// ParseCurrency normalizes and validates a currency code.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Language selects the labels and amount-in-words spelling of a document.
type Language string

const (
	LanguageEnglish Language = "English"
	LanguageFrench  Language = "French"
)

// DefaultLanguage is used whenever a requested language is not supported.
const DefaultLanguage = LanguageEnglish

// Validate checks the language against the supported set.
func (l Language) Validate() error {
	switch l {
	case LanguageEnglish, LanguageFrench:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(l))
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage normalizes and validates a language name.
func ParseLanguage(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range []Language{LanguageEnglish, LanguageFrench} {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}
