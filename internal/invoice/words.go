package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
	"invoicer/pkg/models"
)

// AmountInWords spells an amount out as cardinal words followed by the
// currency unit, e.g. "twenty-five dollars and fifty cents" or
// "vingt-cinq euros et cinquante centimes".
//
// Fractional-unit policy, applied uniformly to every currency: the amount
// is rounded half-up to two decimal places, the integer part is spelled
// out with the currency name, and a nonzero fractional part is appended as
// spelled-out cents/centimes. An unsupported language falls back to
// English rather than failing.
func AmountInWords(amount decimal.Decimal, lang models.Language, cur models.Currency) string {
	if lang.Validate() != nil {
		lang = models.DefaultLanguage
	}

	amount = amount.Round(2)
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}
	units := amount.IntPart()
	cents := amount.Shift(2).IntPart() - units*100

	var b strings.Builder
	switch lang {
	case models.LanguageFrench:
		if negative {
			b.WriteString("moins ")
		}
		b.WriteString(frenchWords(units))
		b.WriteByte(' ')
		b.WriteString(currencyName(cur, lang, units))
		if cents > 0 {
			b.WriteString(" et ")
			b.WriteString(frenchWords(cents))
			if cents == 1 {
				b.WriteString(" centime")
			} else {
				b.WriteString(" centimes")
			}
		}
	default:
		if negative {
			b.WriteString("minus ")
		}
		b.WriteString(englishWords(units))
		b.WriteByte(' ')
		b.WriteString(currencyName(cur, lang, units))
		if cents > 0 {
			b.WriteString(" and ")
			b.WriteString(englishWords(cents))
			if cents == 1 {
				b.WriteString(" cent")
			} else {
				b.WriteString(" cents")
			}
		}
	}
	return b.String()
}

// currencyName returns the unit noun for a currency in the given language,
// pluralized for the given count.
func currencyName(cur models.Currency, lang models.Language, count int64) string {
	var name string
	switch cur {
	case models.CurrencyEUR:
		name = "euro"
	case models.CurrencyMAD:
		name = "dirham"
	default:
		name = "dollar"
	}
	// Same noun in both supported languages; only the plural mark varies
	// with the count.
	if count == 1 {
		return name
	}
	return name + "s"
}

var enUnits = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var enTens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

var enScales = []string{"", " thousand", " million", " billion"}

// englishWords spells a non-negative integer in English, up to billions.
func englishWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		parts = append(parts, englishGroup(groups[i])+enScales[i])
	}
	return strings.Join(parts, " ")
}

// englishGroup spells 1..999.
func englishGroup(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, enUnits[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		tens := enTens[n/10]
		if n%10 != 0 {
			tens += "-" + enUnits[n%10]
		}
		parts = append(parts, tens)
	case n > 0:
		parts = append(parts, enUnits[n])
	}
	return strings.Join(parts, " ")
}

var frUnits = []string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit",
	"neuf", "dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var frTens = []string{
	"", "", "vingt", "trente", "quarante", "cinquante", "soixante",
}

// frenchWords spells a non-negative integer in French, up to billions,
// with the soixante-dix / quatre-vingt / "et un" forms and the plural-s
// rules for vingts and cents.
func frenchWords(n int64) string {
	if n == 0 {
		return "zéro"
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		switch i {
		case 0:
			parts = append(parts, frenchGroup(g, true))
		case 1:
			// mille is invariable and never takes "un"
			if g == 1 {
				parts = append(parts, "mille")
			} else {
				parts = append(parts, frenchGroup(g, false)+" mille")
			}
		case 2:
			if g == 1 {
				parts = append(parts, "un million")
			} else {
				parts = append(parts, frenchGroup(g, true)+" millions")
			}
		case 3:
			if g == 1 {
				parts = append(parts, "un milliard")
			} else {
				parts = append(parts, frenchGroup(g, true)+" milliards")
			}
		}
	}
	return strings.Join(parts, " ")
}

// frenchGroup spells 1..999. final indicates the group is not followed by
// another numeral word, which controls the plural s of "cents" and
// "quatre-vingts".
func frenchGroup(n int64, final bool) string {
	if n >= 100 {
		h, r := n/100, n%100
		var s string
		switch {
		case h == 1:
			s = "cent"
		case r == 0 && final:
			s = frUnits[h] + " cents"
		default:
			s = frUnits[h] + " cent"
		}
		if r == 0 {
			return s
		}
		return s + " " + frenchBelowHundred(r, final)
	}
	return frenchBelowHundred(n, final)
}

// frenchBelowHundred spells 1..99.
func frenchBelowHundred(n int64, final bool) string {
	if n < 20 {
		return frUnits[n]
	}
	t, u := n/10, n%10
	switch t {
	case 7:
		if u == 1 {
			return "soixante et onze"
		}
		return "soixante-" + frUnits[10+u]
	case 8:
		if u == 0 {
			if final {
				return "quatre-vingts"
			}
			return "quatre-vingt"
		}
		return "quatre-vingt-" + frUnits[u]
	case 9:
		return "quatre-vingt-" + frUnits[10+u]
	default:
		if u == 0 {
			return frTens[t]
		}
		if u == 1 {
			return frTens[t] + " et un"
		}
		return frTens[t] + "-" + frUnits[u]
	}
}
