package experience

import "strings"

// companyDashLocation detects the "Company – Location" layout:
//
//	United Airline – Remote
//	...
//	Project Manager III (July 2021 – Current)
//
// The company line uses an en dash, em dash, or spaced hyphen. The title
// follows within a few lines, either with a trailing parenthetical date
// range or as a bare title with the date range on its own line.
type companyDashLocation struct{}

func (companyDashLocation) Name() string { return "company-dash-location" }

// dashLookahead bounds the forward search for the title and dates.
const dashLookahead = 10

func (companyDashLocation) Detect(lines []string) []Candidate {
	var out []Candidate

	for i := range lines {
		line, ok := usableLine(lines[i])
		if !ok {
			continue
		}
		left, right, found := splitCompanyDash(line)
		if !found {
			continue
		}

		c := Candidate{
			Employer:   left,
			Location:   parseLocation(right),
			SourceLine: i,
		}

		var title string
		var pending dateRange
		havePending := false
		for j := i + 1; j <= i+dashLookahead && j < len(lines); j++ {
			next, ok := usableLine(lines[j])
			if !ok {
				continue
			}
			// "Title (July 2021 – Current)" carries both at once.
			if m := pat.parenSuffix.FindStringSubmatch(next); m != nil {
				if dr, ok := parseDateRangeStrict(m[2]); ok {
					title = strings.TrimSpace(m[1])
					applyRange(&c, dr)
					havePending = false
					break
				}
			}
			if dr, ok := parseDateRangeStrict(next); ok {
				pending = dr
				havePending = true
				if title != "" {
					break
				}
				continue
			}
			if title == "" && looksLikeJobTitle(next) {
				title = next
				if havePending {
					break
				}
			}
			// The next company line ends this entry's window.
			if _, _, dash := splitCompanyDash(next); dash {
				break
			}
		}

		c.JobTitle = title
		if havePending {
			applyRange(&c, pending)
		}
		out = append(out, c)
	}
	return out
}

// splitCompanyDash splits a "Company – Location" line, guarding against
// date ranges ("Jan 2022 – Present" splits on the same dashes) and against
// pipe-delimited lines that belong to another strategy.
func splitCompanyDash(line string) (company, location string, ok bool) {
	if strings.Contains(line, "||") || hasBulletPrefix(line) {
		return "", "", false
	}
	if looksLikeDateRange(line) {
		return "", "", false
	}

	idx, sepLen := -1, 0
	for _, sep := range []string{" – ", "–", " — ", "—", " - "} {
		if i := strings.Index(line, sep); i >= 0 {
			idx, sepLen = i, len(sep)
			break
		}
	}
	if idx < 0 {
		return "", "", false
	}

	company = strings.TrimSpace(line[:idx])
	location = strings.TrimSpace(line[idx+sepLen:])
	if company == "" || location == "" || len(company) > 60 {
		return "", "", false
	}
	// A dash inside a parenthetical ("Title (July 2021 – Current)") leaves
	// unbalanced parens on both sides.
	if strings.Count(company, "(") != strings.Count(company, ")") ||
		strings.Count(location, "(") != strings.Count(location, ")") {
		return "", "", false
	}
	if looksLikeDate(company) || looksLikeDateRange(company) {
		return "", "", false
	}
	if looksLikeDate(location) || looksLikeDateRange(location) || isCurrentMarker(location) {
		return "", "", false
	}
	return company, location, true
}
