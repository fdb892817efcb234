package uxsettings

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var metricPrefixes = []struct {
	exp    float64
	suffix string
}{
	{exp: 1e12, suffix: "T"},
	{exp: 1e9, suffix: "G"},
	{exp: 1e6, suffix: "M"},
	{exp: 1e3, suffix: "k"},
}

// Format renders value with f applied to the given style.
func (f NumberFormat) Format(value float64, style NumberStyle) string {
	printer := message.NewPrinter(language.Make(stringOr(f.Locales, "en")))
	digits := f.FractionDigits
	if digits < 0 {
		digits = 0
	}

	switch style {
	case StyleInteger:
		return decimal(printer, value, 0)
	case StyleDecimal:
		return decimal(printer, value, digits)
	case StyleCurrency:
		return f.formatCurrency(printer, value, digits)
	case StyleCurrencyRound:
		return f.formatCurrency(printer, value, 0)
	case StylePercent:
		return printer.Sprint(number.Percent(value, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
	case StylePercentRound:
		return printer.Sprint(number.Percent(value, number.MaxFractionDigits(0)))
	case StyleMetric:
		return formatMetric(printer, value, digits)
	default:
		return printer.Sprint(number.Decimal(value))
	}
}

func decimal(printer *message.Printer, value float64, digits int) string {
	return printer.Sprint(number.Decimal(value, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

func (f NumberFormat) formatCurrency(printer *message.Printer, value float64, digits int) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	amount := decimal(printer, value, digits)

	code := strings.ToUpper(strings.TrimSpace(f.Currency))
	if code == "" {
		return sign + amount
	}

	unit, err := currency.ParseISO(code)
	if err != nil || unit.String() == "XXX" {
		return sign + code + " " + amount
	}

	switch f.CurrencyDisplay {
	case CurrencyDisplayCode, CurrencyDisplayName:
		return sign + unit.String() + " " + amount
	case CurrencyDisplayNarrowSymbol:
		return sign + currencySymbol(printer, currency.NarrowSymbol, unit) + amount
	default:
		return sign + currencySymbol(printer, currency.Symbol, unit) + amount
	}
}

// currencySymbol extracts the symbol x/text prints in front of an amount,
// falling back to the ISO code.
func currencySymbol(printer *message.Printer, kind currency.Formatter, unit currency.Unit) string {
	full := printer.Sprintf("%v", kind(unit.Amount(1)))
	symbol := strings.TrimRightFunc(full, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.' || r == ','
	})
	if symbol == "" {
		return unit.String()
	}
	return symbol
}

// formatMetric scales value by the largest prefix it reaches. The choice is
// made after rounding to digits, so 999999 renders as 1M and not 1,000k.
func formatMetric(printer *message.Printer, value float64, digits int) string {
	abs := math.Abs(value)

	i := len(metricPrefixes)
	for j, prefix := range metricPrefixes {
		if abs >= prefix.exp {
			i = j
			break
		}
	}

	var scaled float64
	for {
		exp := 1.0
		if i < len(metricPrefixes) {
			exp = metricPrefixes[i].exp
		}
		scaled = roundTo(abs/exp, digits)
		if scaled < 1000 || i == 0 {
			break
		}
		i--
	}

	suffix := ""
	if i < len(metricPrefixes) {
		suffix = metricPrefixes[i].suffix
	}
	if value < 0 {
		scaled = -scaled
	}
	return printer.Sprint(number.Decimal(scaled, number.MaxFractionDigits(digits))) + suffix
}

func roundTo(value float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(value*scale) / scale
}
