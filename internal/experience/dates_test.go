package experience

import "testing"

func TestParseDateToken(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    YearMonth
		current bool
		ok      bool
	}{
		{"month year", "Oct 2023", YearMonth{2023, 10}, false, true},
		{"full month name", "October 2023", YearMonth{2023, 10}, false, true},
		{"upper case short year", "OCT 21", YearMonth{2021, 10}, false, true},
		{"short year recent", "Jan 23", YearMonth{2023, 1}, false, true},
		{"short year pivot low", "Jan 49", YearMonth{2049, 1}, false, true},
		{"short year pivot high", "Jan 98", YearMonth{1998, 1}, false, true},
		{"numeric month year", "09 2022", YearMonth{2022, 9}, false, true},
		{"numeric slash", "9/2022", YearMonth{2022, 9}, false, true},
		{"bare year defaults to january", "2019", YearMonth{2019, 1}, false, true},
		{"present", "Present", YearMonth{}, true, true},
		{"current lowercase", "current", YearMonth{}, true, true},
		{"now", "NOW", YearMonth{}, true, true},
		{"trailing punctuation", "Oct 2023,", YearMonth{2023, 10}, false, true},
		{"invalid month name", "Foo 2023", YearMonth{}, false, false},
		{"numeric month out of range", "13 2022", YearMonth{}, false, false},
		{"plain word", "Remote", YearMonth{}, false, false},
		{"empty", "", YearMonth{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, current, ok := parseDateToken(tt.in)
			if ok != tt.ok {
				t.Fatalf("parseDateToken(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if current != tt.current {
				t.Errorf("parseDateToken(%q) current = %v, want %v", tt.in, current, tt.current)
			}
			if got != tt.want {
				t.Errorf("parseDateToken(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitDateRange(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		left, right string
		ok          bool
	}{
		{"en dash", "Oct 2023 – Present", "Oct 2023", "Present", true},
		{"em dash", "Oct 2023 — Present", "Oct 2023", "Present", true},
		{"spaced hyphen", "Oct 2023 - Present", "Oct 2023", "Present", true},
		{"to separator", "2019 to 2021", "2019", "2021", true},
		{"bare hyphen between years", "2019-2021", "2019", "2021", true},
		{"bare hyphen inside company name", "Coca-Cola", "", "", false},
		{"no separator", "Oct 2023", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right, ok := splitDateRange(tt.in)
			if ok != tt.ok || left != tt.left || right != tt.right {
				t.Errorf("splitDateRange(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.in, left, right, ok, tt.left, tt.right, tt.ok)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		start   YearMonth
		end     YearMonth
		current bool
		ok      bool
	}{
		{"open ended", "Oct 2023 – Present", YearMonth{2023, 10}, YearMonth{}, true, true},
		{"closed", "Jan 2019 – Dec 2020", YearMonth{2019, 1}, YearMonth{2020, 12}, false, true},
		{"year range", "2019-2021", YearMonth{2019, 1}, YearMonth{2021, 1}, false, true},
		{"lone start year", "2021", YearMonth{2021, 1}, YearMonth{}, false, true},
		{"unparsable start keeps end", "??? – Dec 2020", YearMonth{}, YearMonth{2020, 12}, false, true},
		{"garbage", "not a date at all", YearMonth{}, YearMonth{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, ok := parseDateRange(tt.in)
			if ok != tt.ok {
				t.Fatalf("parseDateRange(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if dr.Start != tt.start || dr.End != tt.end || dr.IsCurrent != tt.current {
				t.Errorf("parseDateRange(%q) = {start:%+v end:%+v current:%v}, want {start:%+v end:%+v current:%v}",
					tt.in, dr.Start, dr.End, dr.IsCurrent, tt.start, tt.end, tt.current)
			}
		})
	}
}

func TestLooksLikeDateRangeGuard(t *testing.T) {
	// The dash strategy depends on this guard: a date range split on the
	// same dashes as "Company – Location" must be recognized as a range.
	if !looksLikeDateRange("Jan 2022 – Present") {
		t.Error("date range not recognized")
	}
	if looksLikeDateRange("United Airline – Remote") {
		t.Error("company/location pair mistaken for a date range")
	}
}

func TestYearMonthMonthsUntil(t *testing.T) {
	a := YearMonth{2019, 1}
	b := YearMonth{2020, 6}
	if got := a.MonthsUntil(b); got != 17 {
		t.Errorf("MonthsUntil = %d, want 17", got)
	}
	if got := b.MonthsUntil(a); got != -17 {
		t.Errorf("reverse MonthsUntil = %d, want -17", got)
	}
	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong")
	}
}
