package utils

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Defaults used when the caller does not care about localisation.
const (
	DefaultLocale   = "en-GB"
	DefaultCurrency = "GBP"
)

// FormatMoney renders an amount as a localised currency string.
// Unknown locales or currency codes fall back to the defaults; formatting
// carries no business logic.
func FormatMoney(amount float64, locale, currencyCode string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.GBP
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// FormatGBP formats an amount with the default locale and currency.
func FormatGBP(amount float64) string {
	return FormatMoney(amount, DefaultLocale, DefaultCurrency)
}
