package experience

import (
	"strconv"
	"strings"
)

// Date normalization. Everything here is best-effort: an unparsable token
// comes back as a zero YearMonth, never an error, so downstream code treats
// the date as missing.

// twoDigitPivot splits two-digit years between the 1900s and 2000s:
// "21" -> 2021, "98" -> 1998. Inherited heuristic, see DESIGN.md.
const twoDigitPivot = 50

// currentMarkers end a range without a date: the position is still held.
var currentMarkers = map[string]bool{
	"present":   true,
	"current":   true,
	"now":       true,
	"ongoing":   true,
	"till date": true,
	"to date":   true,
}

// isCurrentMarker reports whether tok means "still employed here".
func isCurrentMarker(tok string) bool {
	return currentMarkers[strings.ToLower(strings.TrimSpace(tok))]
}

// parseDateToken converts one free-form date token into a canonical
// YearMonth. current is true for "Present"-style markers. ok is false when
// the token is not recognizably a date.
func parseDateToken(tok string) (ym YearMonth, current bool, ok bool) {
	tok = strings.TrimSpace(strings.Trim(tok, ".,;"))
	if tok == "" {
		return YearMonth{}, false, false
	}
	if isCurrentMarker(tok) {
		return YearMonth{}, true, true
	}

	if m := pat.monthYear.FindStringSubmatch(tok); m != nil {
		month, known := monthNumbers[strings.ToLower(m[1])]
		if !known {
			return YearMonth{}, false, false
		}
		return YearMonth{Year: expandYear(m[2]), Month: month}, false, true
	}

	if m := pat.numericMY.FindStringSubmatch(tok); m != nil {
		month, err := strconv.Atoi(m[1])
		if err != nil || month < 1 || month > 12 {
			return YearMonth{}, false, false
		}
		year, _ := strconv.Atoi(m[2])
		return YearMonth{Year: year, Month: month}, false, true
	}

	if m := pat.bareYear.FindStringSubmatch(tok); m != nil {
		year, _ := strconv.Atoi(m[1])
		// month unknown; default to January
		return YearMonth{Year: year, Month: 1}, false, true
	}

	return YearMonth{}, false, false
}

// expandYear turns a 2- or 4-digit year string into a full year.
func expandYear(s string) int {
	n, _ := strconv.Atoi(s)
	if len(s) == 4 {
		return n
	}
	if n >= twoDigitPivot {
		return 1900 + n
	}
	return 2000 + n
}

// rangeSeparators in priority order. The bare hyphen is handled separately
// because it also appears inside company names.
var rangeSeparators = []string{"–", "—", " - ", " to ", " To ", " TO "}

// splitDateRange normalizes a "start SEP end" expression into its two sides.
func splitDateRange(s string) (left, right string, ok bool) {
	s = strings.TrimSpace(s)
	for _, sep := range rangeSeparators {
		if i := strings.Index(s, sep); i >= 0 {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
		}
	}
	// Bare hyphen only when both halves are themselves dates ("2019-2021").
	if i := strings.Index(s, "-"); i >= 0 {
		l := strings.TrimSpace(s[:i])
		r := strings.TrimSpace(s[i+1:])
		if _, _, lok := parseDateToken(l); lok {
			if _, _, rok := parseDateToken(r); rok {
				return l, r, true
			}
		}
	}
	return "", "", false
}

// dateRange is the parsed form of one "Oct 2023 – Present" expression.
type dateRange struct {
	StartRaw  string
	EndRaw    string
	Start     YearMonth
	End       YearMonth
	IsCurrent bool
}

// parseDateRange parses a full range expression. ok requires at least one
// side to be a recognizable date or a current marker.
func parseDateRange(s string) (dateRange, bool) {
	var dr dateRange
	left, right, split := splitDateRange(s)
	if !split {
		// A lone token can still open a range ("2021" with no end).
		ym, current, ok := parseDateToken(s)
		if !ok || current {
			return dateRange{}, false
		}
		dr.StartRaw = strings.TrimSpace(s)
		dr.Start = ym
		return dr, true
	}

	dr.StartRaw = left
	dr.EndRaw = right

	startOK := false
	if ym, current, ok := parseDateToken(left); ok && !current {
		dr.Start = ym
		startOK = true
	}

	endOK := false
	if ym, current, ok := parseDateToken(right); ok {
		if current {
			dr.IsCurrent = true
		} else {
			dr.End = ym
		}
		endOK = true
	}

	if !startOK && !endOK {
		return dateRange{}, false
	}
	return dr, true
}

// looksLikeDateRange reports whether a string is a plausible date range.
// Strategies use it as a guard so "Jan 2022 – Present" is never mistaken
// for a company/location pair.
func looksLikeDateRange(s string) bool {
	_, ok := parseDateRangeStrict(s)
	return ok
}

// parseDateRangeStrict requires an actual separator, unlike parseDateRange
// which accepts a lone starting year.
func parseDateRangeStrict(s string) (dateRange, bool) {
	if _, _, split := splitDateRange(s); !split {
		return dateRange{}, false
	}
	return parseDateRange(s)
}

// looksLikeDate reports whether a string is a single date token.
func looksLikeDate(s string) bool {
	_, _, ok := parseDateToken(s)
	return ok
}
