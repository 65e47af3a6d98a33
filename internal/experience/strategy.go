package experience

import "strings"

// Strategy is one independent layout heuristic. Strategies are pure: they
// scan the experience-section lines for their own structural signature and
// emit zero or more candidates. They never communicate, never short-circuit
// each other, and finding nothing is normal. Low-value candidates are the
// filter's problem, not theirs.
type Strategy interface {
	Name() string
	Detect(lines []string) []Candidate
}

// defaultStrategies runs in a fixed order so candidate order, and therefore
// first-discovered-wins deduplication, is deterministic.
func defaultStrategies() []Strategy {
	return []Strategy{
		companyDashLocation{},
		companyPipeDate{},
		clientPrefixed{},
		jobTitleFirst{},
		traditionalHeader{},
	}
}

// collectCandidates pools every strategy's output in strategy order.
func collectCandidates(strategies []Strategy, lines []string) []Candidate {
	var all []Candidate
	for _, s := range strategies {
		all = append(all, s.Detect(lines)...)
	}
	return all
}

// maxLineLen guards strategies against corrupted or adversarial input.
// Lines longer than this are skipped outright.
const maxLineLen = 500

// usableLine trims a line and reports whether a strategy should look at it.
func usableLine(raw string) (string, bool) {
	if len(raw) > maxLineLen {
		return "", false
	}
	line := strings.TrimSpace(raw)
	if line == "" {
		return "", false
	}
	for _, r := range line {
		if r < 0x20 && r != '\t' {
			return "", false
		}
	}
	return line, true
}

// parseLocation splits "Remote, United States" into municipality and
// region. A single token becomes the municipality.
func parseLocation(s string) *Location {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.SplitN(s, ",", 2)
	loc := &Location{Municipality: strings.TrimSpace(parts[0])}
	if len(parts) == 2 {
		loc.Region = strings.TrimSpace(parts[1])
	}
	return loc
}

// hasBulletPrefix reports whether a line starts with a list glyph.
func hasBulletPrefix(s string) bool {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(s, g) {
			return true
		}
	}
	return false
}

// looksLikeJobTitle is the shared title heuristic: short, not a bullet,
// not a date, and carrying a role keyword, seniority marker, Roman-numeral
// suffix, or an experience-years mention.
func looksLikeJobTitle(line string) bool {
	if len(line) < 5 || len(line) > 80 {
		return false
	}
	if hasBulletPrefix(line) || strings.Contains(line, "@") {
		return false
	}
	if looksLikeDate(line) || looksLikeDateRange(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, kw := range titleKeywords {
		if containsWord(lower, kw) {
			return true
		}
	}
	if pat.romanSuffix.MatchString(line) {
		return true
	}
	return pat.yearsMention.MatchString(line)
}

// containsWord reports whether lower contains w as a whole word.
func containsWord(lower, w string) bool {
	i := 0
	for {
		j := strings.Index(lower[i:], w)
		if j < 0 {
			return false
		}
		j += i
		before := j == 0 || !isWordChar(lower[j-1])
		afterIdx := j + len(w)
		after := afterIdx >= len(lower) || !isWordChar(lower[afterIdx])
		if before && after {
			return true
		}
		i = j + len(w)
		if i >= len(lower) {
			return false
		}
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// applyRange copies a parsed date range onto a candidate.
func applyRange(c *Candidate, dr dateRange) {
	c.StartRaw = dr.StartRaw
	c.EndRaw = dr.EndRaw
	c.Start = dr.Start
	c.End = dr.End
	c.IsCurrent = dr.IsCurrent
}

// traditionalHeader is the extension point for layouts not covered by the
// other strategies. It contributes nothing in the base pool; adding a new
// layout means adding a new Strategy here, never touching existing ones.
type traditionalHeader struct{}

func (traditionalHeader) Name() string { return "traditional-header" }

func (traditionalHeader) Detect(lines []string) []Candidate { return nil }
