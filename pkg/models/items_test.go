package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestItemListStableIDs(t *testing.T) {
	var list ItemList

	a := list.Add()
	b := list.Add()
	c := list.Add()
	require.Equal(t, 3, list.Len())

	list.Get(a).Description = "first"
	list.Get(b).Description = "second"
	list.Get(c).Description = "third"

	// Deletion by ID, independent of position.
	assert.True(t, list.Remove(b))
	require.Equal(t, 2, list.Len())

	items := list.Items()
	assert.Equal(t, "first", items[0].Description)
	assert.Equal(t, "third", items[1].Description)

	// IDs of the survivors are unchanged.
	assert.Equal(t, a, items[0].ID)
	assert.Equal(t, c, items[1].ID)

	assert.False(t, list.Remove(b), "removing an absent ID reports false")
	assert.Nil(t, list.Get(b))
	assert.False(t, list.Remove(uuid.New()))
}

func TestItemListJSON(t *testing.T) {
	var list ItemList
	list.Append(LineItem{Description: "Service A", Quantity: "2", Unit: "h", UnitPrice: "10.00"})
	list.Append(LineItem{Description: "Service B", Quantity: "1", UnitPrice: "5.00"})

	data, err := json.Marshal(list)
	require.NoError(t, err)
	// IDs are session-local and stay out of the wire format.
	assert.NotContains(t, string(data), "ID")

	var decoded ItemList
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 2, decoded.Len())

	items := decoded.Items()
	assert.Equal(t, "Service A", items[0].Description)
	assert.Equal(t, "5.00", items[1].UnitPrice)
	assert.NotEqual(t, uuid.Nil, items[0].ID, "decoded items get fresh IDs")
}

func TestTemplateValidate(t *testing.T) {
	valid := Template{Language: LanguageFrench, Currency: CurrencyEUR, VATRate: mustDecimal(t, "0.2")}
	assert.NoError(t, valid.Validate())

	badLang := valid
	badLang.Language = "Klingon"
	assert.ErrorIs(t, badLang.Validate(), ErrUnsupportedLanguage)

	badCur := valid
	badCur.Currency = "XXX"
	assert.ErrorIs(t, badCur.Validate(), ErrUnsupportedCurrency)

	badRate := valid
	badRate.VATRate = mustDecimal(t, "1.5")
	assert.ErrorIs(t, badRate.Validate(), ErrVATRateOutOfRange)
}

func TestParseEnums(t *testing.T) {
	cur, err := ParseCurrency(" eur ")
	require.NoError(t, err)
	assert.Equal(t, CurrencyEUR, cur)

	_, err = ParseCurrency("GBP")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	lang, err := ParseLanguage("french")
	require.NoError(t, err)
	assert.Equal(t, LanguageFrench, lang)

	_, err = ParseLanguage("german")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)

	rate, ok := CurrencyMAD.ExchangeRate()
	require.True(t, ok)
	assert.InDelta(t, 10.2, rate, 0.0001)
}
