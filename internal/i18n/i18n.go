// Package i18n resolves the request locale and formats prices for it.
package i18n

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Supported locales.
const (
	English = "en"
	Arabic  = "ar"
)

// Text directions.
const (
	LTR = "ltr"
	RTL = "rtl"
)

var (
	supported = []language.Tag{language.English, language.Arabic}
	matcher   = language.NewMatcher(supported)
)

// Locale is a resolved locale with its text direction.
type Locale struct {
	Code      string `json:"code"`
	Direction string `json:"direction"`
}

// Lookup returns the locale for a code, or false when it is not supported.
func Lookup(code string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case English:
		return Locale{Code: English, Direction: LTR}, true
	case Arabic:
		return Locale{Code: Arabic, Direction: RTL}, true
	}
	return Locale{}, false
}

// Match picks the best supported locale for an Accept-Language header.
// It falls back to def when nothing matches.
func Match(acceptLanguage, def string) Locale {
	fallback, ok := Lookup(def)
	if !ok {
		fallback = Locale{Code: English, Direction: LTR}
	}
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	base, _ := supported[index].Base()
	loc, _ := Lookup(base.String())
	return loc
}

// decimalSeparators holds the CLDR decimal separator of each locale.
var decimalSeparators = map[string]string{
	English: ".",
	Arabic:  "\u066b",
}

// FormatPrice renders amount with the ISO currency code for the locale,
// e.g. "USD 1,250.50" for en. Arabic uses Arabic-Indic digits.
// Unknown currency codes are dropped.
func FormatPrice(locale string, amount decimal.Decimal, isoCurrency string) string {
	tag, sep := language.English, decimalSeparators[English]
	if locale == Arabic {
		tag, sep = language.Arabic, decimalSeparators[Arabic]
	}
	formatted := formatFixed2(message.NewPrinter(tag), amount, sep)

	unit, err := currency.ParseISO(isoCurrency)
	if err != nil {
		return formatted
	}
	return unit.String() + " " + formatted
}

// formatFixed2 localizes the two-decimal string form of amount. The integer
// and fraction parts are formatted as integers so the value never passes
// through a float.
func formatFixed2(p *message.Printer, amount decimal.Decimal, sep string) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	intPart, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		// Beyond int64; no grouping.
		return sign + fixed
	}
	fracPart, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return sign + fixed
	}
	return sign +
		p.Sprint(number.Decimal(intPart)) +
		sep +
		p.Sprint(number.Decimal(fracPart, number.MinIntegerDigits(2), number.NoSeparator()))
}
