package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"invoicer/pkg/models"
)

func TestAmountInWordsEnglish(t *testing.T) {
	tests := []struct {
		amount string
		cur    models.Currency
		want   string
	}{
		{"0", models.CurrencyUSD, "zero dollars"},
		{"1", models.CurrencyUSD, "one dollar"},
		{"30.00", models.CurrencyUSD, "thirty dollars"},
		{"25.50", models.CurrencyEUR, "twenty-five euros and fifty cents"},
		{"121.01", models.CurrencyUSD, "one hundred twenty-one dollars and one cent"},
		{"1000", models.CurrencyMAD, "one thousand dirhams"},
		{"1234567", models.CurrencyUSD, "one million two hundred thirty-four thousand five hundred sixty-seven dollars"},
		{"-5", models.CurrencyUSD, "minus five dollars"},
		// Rounded to 2dp before spelling
		{"10.996", models.CurrencyUSD, "eleven dollars"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := AmountInWords(decimal.RequireFromString(tt.amount), models.LanguageEnglish, tt.cur)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountInWordsFrench(t *testing.T) {
	tests := []struct {
		amount string
		cur    models.Currency
		want   string
	}{
		{"21", models.CurrencyEUR, "vingt et un euros"},
		{"71", models.CurrencyEUR, "soixante et onze euros"},
		{"80", models.CurrencyEUR, "quatre-vingts euros"},
		{"81", models.CurrencyEUR, "quatre-vingt-un euros"},
		{"99", models.CurrencyEUR, "quatre-vingt-dix-neuf euros"},
		{"100", models.CurrencyEUR, "cent euros"},
		{"200", models.CurrencyEUR, "deux cents euros"},
		{"201", models.CurrencyEUR, "deux cent un euros"},
		{"1000", models.CurrencyMAD, "mille dirhams"},
		{"80000", models.CurrencyEUR, "quatre-vingt mille euros"},
		{"25.50", models.CurrencyEUR, "vingt-cinq euros et cinquante centimes"},
		{"30.01", models.CurrencyMAD, "trente dirhams et un centime"},
		{"2000000", models.CurrencyEUR, "deux millions euros"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := AmountInWords(decimal.RequireFromString(tt.amount), models.LanguageFrench, tt.cur)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAmountInWordsLanguageFallback(t *testing.T) {
	got := AmountInWords(decimal.NewFromInt(2), models.Language("Spanish"), models.CurrencyUSD)
	assert.Equal(t, "two dollars", got)
}

// The fractional-unit policy is uniform across currencies: cents are
// spelled for every currency, never truncated for some.
func TestAmountInWordsUniformCentsPolicy(t *testing.T) {
	amount := decimal.RequireFromString("9.75")
	for _, cur := range []models.Currency{models.CurrencyUSD, models.CurrencyEUR, models.CurrencyMAD} {
		got := AmountInWords(amount, models.LanguageEnglish, cur)
		assert.Contains(t, got, "and seventy-five cents", "currency %s", cur)
	}
}
