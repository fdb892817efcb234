package uxsettings

// NumberStyle selects a number presentation. StyleNone is a sentinel that
// never carries overrides.
type NumberStyle string

const (
	StyleNone          NumberStyle = "none"
	StyleInteger       NumberStyle = "integer"
	StyleDecimal       NumberStyle = "decimal"
	StyleCurrency      NumberStyle = "currency"
	StyleCurrencyRound NumberStyle = "currencyRound"
	StylePercent       NumberStyle = "percent"
	StylePercentRound  NumberStyle = "percentRound"
	StyleMetric        NumberStyle = "metric"
)

// CurrencyDisplay controls how the currency is shown.
type CurrencyDisplay string

const (
	CurrencyDisplaySymbol       CurrencyDisplay = "symbol"
	CurrencyDisplayNarrowSymbol CurrencyDisplay = "narrowSymbol"
	CurrencyDisplayCode         CurrencyDisplay = "code"
	CurrencyDisplayName         CurrencyDisplay = "name"
)

// NumberFormat is a fully populated set of number formatting options.
type NumberFormat struct {
	Locales         string          `json:"locales" yaml:"locales"`
	Currency        string          `json:"currency" yaml:"currency"`
	FractionDigits  int             `json:"fractionDigits" yaml:"fractionDigits"`
	CurrencyDisplay CurrencyDisplay `json:"currencyDisplay" yaml:"currencyDisplay"`
}

// NumberFormatInput overrides individual NumberFormat fields.
type NumberFormatInput struct {
	Locales         string          `json:"locales,omitempty" yaml:"locales,omitempty"`
	Currency        string          `json:"currency,omitempty" yaml:"currency,omitempty"`
	FractionDigits  *int            `json:"fractionDigits,omitempty" yaml:"fractionDigits,omitempty"`
	CurrencyDisplay CurrencyDisplay `json:"currencyDisplay,omitempty" yaml:"currencyDisplay,omitempty"`
}

// NumbersInput holds the default override plus per-style overrides.
type NumbersInput struct {
	Defaults *NumberFormatInput                `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Styles   map[NumberStyle]NumberFormatInput `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// DefaultNumberFormat returns the built-in options.
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{
		Locales:         "en",
		Currency:        "USD",
		FractionDigits:  2,
		CurrencyDisplay: CurrencyDisplaySymbol,
	}
}

// ResolveNumberFormat layers in.Defaults and then in.Styles[style] over the
// built-in options. A nil input always yields DefaultNumberFormat.
func ResolveNumberFormat(in *NumbersInput, style NumberStyle) NumberFormat {
	resolved := DefaultNumberFormat()
	if in == nil {
		return resolved
	}

	if in.Defaults != nil {
		resolved = resolved.with(*in.Defaults)
	}

	if style != "" && style != StyleNone {
		if override, ok := in.Styles[style]; ok {
			resolved = resolved.with(override)
		}
	}

	return resolved
}

func (f NumberFormat) with(in NumberFormatInput) NumberFormat {
	return NumberFormat{
		Locales:         stringOr(in.Locales, f.Locales),
		Currency:        stringOr(in.Currency, f.Currency),
		FractionDigits:  valueOr(in.FractionDigits, f.FractionDigits),
		CurrencyDisplay: CurrencyDisplay(stringOr(string(in.CurrencyDisplay), string(f.CurrencyDisplay))),
	}
}

func (in *NumbersInput) clone() *NumbersInput {
	if in == nil {
		return nil
	}
	out := &NumbersInput{}
	if in.Defaults != nil {
		defaults := *in.Defaults
		out.Defaults = &defaults
	}
	if len(in.Styles) > 0 {
		out.Styles = make(map[NumberStyle]NumberFormatInput, len(in.Styles))
		for style, override := range in.Styles {
			if style == StyleNone {
				continue
			}
			out.Styles[style] = override
		}
	}
	return out
}
