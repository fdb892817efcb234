package uxsettings

// DictionaryInput carries optional label overrides; nil leaves keep defaults.
type DictionaryInput struct {
	Ok     *string              `json:"Ok,omitempty" yaml:"Ok,omitempty"`
	Cancel *string              `json:"Cancel,omitempty" yaml:"Cancel,omitempty"`
	Date   *DateDictionaryInput `json:"Date,omitempty" yaml:"Date,omitempty"`
}

// DateDictionaryInput holds the date unit label overrides
type DateDictionaryInput struct {
	Day           *string `json:"Day,omitempty" yaml:"Day,omitempty"`
	Week          *string `json:"Week,omitempty" yaml:"Week,omitempty"`
	BiWeek        *string `json:"BiWeek,omitempty" yaml:"BiWeek,omitempty"`
	Month         *string `json:"Month,omitempty" yaml:"Month,omitempty"`
	Quarter       *string `json:"Quarter,omitempty" yaml:"Quarter,omitempty"`
	CalendarYear  *string `json:"CalendarYear,omitempty" yaml:"CalendarYear,omitempty"`
	FiscalYearOct *string `json:"FiscalYearOct,omitempty" yaml:"FiscalYearOct,omitempty"`
}

// Dictionary is the fully resolved label table.
type Dictionary struct {
	Ok     string         `json:"Ok" yaml:"Ok"`
	Cancel string         `json:"Cancel" yaml:"Cancel"`
	Date   DateDictionary `json:"Date" yaml:"Date"`
}

// DateDictionary holds the resolved date unit labels.
type DateDictionary struct {
	Day           string `json:"Day" yaml:"Day"`
	Week          string `json:"Week" yaml:"Week"`
	BiWeek        string `json:"BiWeek" yaml:"BiWeek"`
	Month         string `json:"Month" yaml:"Month"`
	Quarter       string `json:"Quarter" yaml:"Quarter"`
	CalendarYear  string `json:"CalendarYear" yaml:"CalendarYear"`
	FiscalYearOct string `json:"FiscalYearOct" yaml:"FiscalYearOct"`
}

// DefaultDictionary returns the built-in English labels.
func DefaultDictionary() Dictionary {
	return Dictionary{
		Ok:     "Ok",
		Cancel: "Cancel",
		Date: DateDictionary{
			Day:           "Day",
			Week:          "Week",
			BiWeek:        "Bi-Week",
			Month:         "Month",
			Quarter:       "Quarter",
			CalendarYear:  "Calendar Year",
			FiscalYearOct: "Fiscal Year (Oct)",
		},
	}
}

// ResolveDictionary merges in over the defaults, leaf by leaf.
func ResolveDictionary(in *DictionaryInput) Dictionary {
	def := DefaultDictionary()
	if in == nil {
		return def
	}

	return Dictionary{
		Ok:     valueOr(in.Ok, def.Ok),
		Cancel: valueOr(in.Cancel, def.Cancel),
		Date:   resolveDateDictionary(in.Date, def.Date),
	}
}

func resolveDateDictionary(in *DateDictionaryInput, def DateDictionary) DateDictionary {
	if in == nil {
		return def
	}

	return DateDictionary{
		Day:           valueOr(in.Day, def.Day),
		Week:          valueOr(in.Week, def.Week),
		BiWeek:        valueOr(in.BiWeek, def.BiWeek),
		Month:         valueOr(in.Month, def.Month),
		Quarter:       valueOr(in.Quarter, def.Quarter),
		CalendarYear:  valueOr(in.CalendarYear, def.CalendarYear),
		FiscalYearOct: valueOr(in.FiscalYearOct, def.FiscalYearOct),
	}
}

// Label looks a label up by its dotted key, e.g. "Ok" or "Date.BiWeek".
func (d Dictionary) Label(key string) (string, bool) {
	switch key {
	case "Ok":
		return d.Ok, true
	case "Cancel":
		return d.Cancel, true
	case "Date.Day":
		return d.Date.Day, true
	case "Date.Week":
		return d.Date.Week, true
	case "Date.BiWeek":
		return d.Date.BiWeek, true
	case "Date.Month":
		return d.Date.Month, true
	case "Date.Quarter":
		return d.Date.Quarter, true
	case "Date.CalendarYear":
		return d.Date.CalendarYear, true
	case "Date.FiscalYearOct":
		return d.Date.FiscalYearOct, true
	default:
		return "", false
	}
}
