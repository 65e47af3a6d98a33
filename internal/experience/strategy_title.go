package experience

import "strings"

// jobTitleFirst detects layouts that open each entry with the title:
//
//	Senior Network Engineer
//	June 2018 – May 2021
//	Client: Charter Communications, St. Louis, MO
//
// A line is treated as a title by lexicon (role and seniority keywords,
// Roman-numeral suffixes, experience-year mentions). The entry is accepted
// once a date-range line or a "Client:" company line turns up in the
// forward window.
type jobTitleFirst struct{}

func (jobTitleFirst) Name() string { return "job-title-first" }

// titleLookahead bounds the forward search for supporting evidence.
const titleLookahead = 15

func (jobTitleFirst) Detect(lines []string) []Candidate {
	var out []Candidate

	for i := range lines {
		line, ok := usableLine(lines[i])
		if !ok {
			continue
		}
		if strings.Contains(line, "||") || pat.clientPrefix.MatchString(line) {
			continue
		}
		// Titles with inline parenthetical dates belong to the dash
		// layout; claiming them here would double-count the entry.
		if m := pat.parenSuffix.FindStringSubmatch(line); m != nil {
			if _, ok := parseDateRangeStrict(m[2]); ok {
				continue
			}
		}
		if !looksLikeJobTitle(line) {
			continue
		}

		c := Candidate{JobTitle: line, SourceLine: i}
		haveDates := false
		haveCompany := false
		for j := i + 1; j <= i+titleLookahead && j < len(lines); j++ {
			next, ok := usableLine(lines[j])
			if !ok {
				continue
			}
			// The next title-like line starts another entry.
			if looksLikeJobTitle(next) && !pat.clientPrefix.MatchString(next) {
				break
			}
			if !haveDates {
				if dr, ok := parseDateRangeStrict(next); ok {
					applyRange(&c, dr)
					haveDates = true
					continue
				}
			}
			if !haveCompany {
				if loc := pat.clientPrefix.FindStringIndex(next); loc != nil {
					parseClientRemainder(&c, strings.TrimSpace(next[loc[1]:]))
					haveCompany = true
				}
			}
			if haveDates && haveCompany {
				break
			}
		}

		if haveDates || haveCompany {
			out = append(out, c)
		}
	}
	return out
}
