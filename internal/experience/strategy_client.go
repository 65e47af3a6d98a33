package experience

import "strings"

// clientPrefixed detects consulting-style entries:
//
//	Client: Cognizant (Hyderabad, India)
//	Jan 2019 – Dec 2020
//	Tasks & Roles:
//	Senior QA Engineer
//
// The company and location come from the "Client:" remainder, either
// parenthesized or comma-separated. The date range is inline or on a
// following line; the title follows a "Tasks & Roles" marker.
type clientPrefixed struct{}

func (clientPrefixed) Name() string { return "client-prefixed" }

// clientLookahead bounds the forward search for dates and title.
const clientLookahead = 10

func (clientPrefixed) Detect(lines []string) []Candidate {
	var out []Candidate

	for i := range lines {
		line, ok := usableLine(lines[i])
		if !ok {
			continue
		}
		loc := pat.clientPrefix.FindStringIndex(line)
		if loc == nil {
			continue
		}
		rest := strings.TrimSpace(line[loc[1]:])
		if rest == "" {
			continue
		}

		c := Candidate{SourceLine: i}
		parseClientRemainder(&c, rest)

		// Date range: inline already handled; otherwise a nearby line.
		if c.StartRaw == "" && c.EndRaw == "" {
			for j := i + 1; j <= i+clientLookahead && j < len(lines); j++ {
				next, ok := usableLine(lines[j])
				if !ok {
					continue
				}
				if dr, ok := parseDateRangeStrict(next); ok {
					applyRange(&c, dr)
					break
				}
			}
		}

		// Title: the line after a "Tasks & Roles" marker, or failing
		// that the first title-like line in the window.
		title := ""
		markerSeen := false
		for j := i + 1; j <= i+clientLookahead && j < len(lines); j++ {
			next, ok := usableLine(lines[j])
			if !ok {
				continue
			}
			if isTasksMarker(next) {
				markerSeen = true
				continue
			}
			if looksLikeDate(next) || looksLikeDateRange(next) {
				continue
			}
			if markerSeen {
				title = next
				break
			}
			if title == "" && looksLikeJobTitle(next) {
				title = next
			}
		}
		c.JobTitle = title

		out = append(out, c)
	}
	return out
}

// isTasksMarker matches the "Tasks & Roles" style heading that precedes
// the title in client-prefixed layouts.
func isTasksMarker(line string) bool {
	h := normalizeHeader(line)
	switch h {
	case "tasks & roles", "tasks and roles", "role", "roles", "tasks":
		return true
	}
	return false
}

// parseClientRemainder fills employer, location and any inline date range
// from the text after "Client:".
func parseClientRemainder(c *Candidate, rest string) {
	// "Acme Corp (Dallas, TX)" or "Acme Corp (Jan 2020 – Mar 2022)".
	if m := pat.parenSuffix.FindStringSubmatch(rest); m != nil {
		inner := strings.TrimSpace(m[2])
		if dr, ok := parseDateRangeStrict(inner); ok {
			applyRange(c, dr)
		} else {
			c.Location = parseLocation(inner)
		}
		rest = strings.TrimSpace(m[1])
	}

	// "Acme Corp, Dallas, TX" — first comma part is the company.
	if comma := strings.Index(rest, ","); comma >= 0 {
		c.Employer = strings.TrimSpace(rest[:comma])
		if c.Location == nil {
			c.Location = parseLocation(rest[comma+1:])
		}
	} else {
		c.Employer = rest
	}
}
