package helpers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the formatting locale used when none is configured.
const DefaultLocale = "en-IN"

// Currency formats a whole-unit amount in the given ISO currency using the
// locale's digit grouping and no fractional digits.
// Example: Currency(52999, "INR", "en-IN") => "₹52,999"
func Currency(amount int64, code, locale string) string {
	tag := parseLocale(locale)
	printer := message.NewPrinter(tag)

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := printer.Sprintf("%d", amount)

	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		if code == "" {
			return sign + digits
		}
		return sign + code + " " + digits
	}
	symbol := printer.Sprint(currency.NarrowSymbol(unit))
	return sign + symbol + digits
}

// CategoryLabel turns a category tag such as "electronics" into a display label.
func CategoryLabel(category, locale string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	return cases.Title(parseLocale(locale)).String(strings.ReplaceAll(category, "-", " "))
}

func parseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.MustParse(DefaultLocale)
	}
	return tag
}
