// Package dateformat renders dates the way bibliographic citations print
// them: month name abbreviated when it is long, short names kept whole.
//
//	Format(1726358400, MonthYear, names, "en")    // "sep. 2024"
//	Format("2024-05-01", MonthYear, names, "en")  // "may 2024"
//	Format(1726358400, DayMonthYear, names, "en") // "15 sep. 2024"
package dateformat

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/lehigh-university-libraries/citestyle/locale"
)

// Style selects which date components are rendered.
type Style int

const (
	// MonthYear renders "<month> <year>".
	MonthYear Style = iota
	// DayMonthYear renders "<dd> <month> <year>".
	DayMonthYear
)

const (
	// maxFullLength is the longest month name printed unabbreviated.
	maxFullLength = 4
	// abbrevLength is the number of characters kept when abbreviating.
	abbrevLength = 3
	// abbrevMarker follows an abbreviated month name.
	abbrevMarker = "."
)

// String returns the style's flag name.
func (s Style) String() string {
	switch s {
	case MonthYear:
		return "month-year"
	case DayMonthYear:
		return "day-month-year"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps a flag name back to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "month-year", "month_year", "my":
		return MonthYear, nil
	case "day-month-year", "day_month_year", "dmy":
		return DayMonthYear, nil
	default:
		return 0, fmt.Errorf("unknown date style %q (want month-year or day-month-year)", s)
	}
}

// Formatter carries the options a caller may need beyond the defaults.
// The zero value renders in UTC and lower-cases the result.
type Formatter struct {
	// Location is the zone dates are rendered in. Nil means UTC.
	Location *time.Location

	// PreserveCase skips the final lower-casing step.
	PreserveCase bool
}

// Format renders input with the zero Formatter.
func Format(input any, style Style, names locale.MonthNames, loc string) (string, error) {
	return Formatter{}.Format(input, style, names, loc)
}

// Format resolves input, picks the month name for loc from names, and
// composes it according to style. It fails with *InvalidDateError or
// *UnknownLocaleError and has no side effects.
func (f Formatter) Format(input any, style Style, names locale.MonthNames, loc string) (string, error) {
	t, err := Resolve(input)
	if err != nil {
		return "", err
	}
	return f.FormatTime(t, style, names, loc)
}

// FormatTime is Format for an already resolved time.
func (f Formatter) FormatTime(t time.Time, style Style, names locale.MonthNames, loc string) (string, error) {
	months, ok := names.Lookup(loc)
	if !ok {
		return "", &UnknownLocaleError{Locale: loc}
	}

	zone := f.Location
	if zone == nil {
		zone = time.UTC
	}
	t = t.In(zone)

	month := MonthToken(months[t.Month()-1])

	var out string
	switch style {
	case MonthYear:
		out = fmt.Sprintf("%s %d", month, t.Year())
	case DayMonthYear:
		out = fmt.Sprintf("%02d %s %d", t.Day(), month, t.Year())
	default:
		return "", fmt.Errorf("unknown date style %d", int(style))
	}

	if f.PreserveCase {
		return out, nil
	}
	// Casers hold state, so each call gets its own.
	return cases.Lower(locale.Tag(loc)).String(out), nil
}

// MonthToken returns full when it is at most four characters long, and
// otherwise its first three characters followed by the abbreviation marker.
// Length is counted in runes.
func MonthToken(full string) string {
	if utf8.RuneCountInString(full) <= maxFullLength {
		return full
	}
	runes := []rune(full)
	return string(runes[:abbrevLength]) + abbrevMarker
}
