package experience

import "strings"

// FilterCandidates drops structurally implausible candidates: education
// lines, bullet fragments, mangled email headers, descriptions masquerading
// as titles. Strategies are deliberately permissive; this is the single
// place where low-value detections die.
func FilterCandidates(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if validCandidate(c) {
			out = append(out, c)
		}
	}
	return out
}

func validCandidate(c Candidate) bool {
	title := strings.TrimSpace(c.JobTitle)
	employer := strings.TrimSpace(c.Employer)

	if title == "" && employer == "" {
		return false
	}
	if title != "" && !plausibleTitle(title) {
		return false
	}
	if employer != "" {
		lower := strings.ToLower(employer)
		for _, w := range institutionWords {
			if strings.Contains(lower, w) {
				return false
			}
		}
	}
	return true
}

// maxTitleLen: anything longer is almost certainly a sentence of
// description text, not a job title.
const maxTitleLen = 100

func plausibleTitle(title string) bool {
	if len(title) < 5 || len(title) > maxTitleLen {
		return false
	}
	if hasBulletPrefix(title) {
		return false
	}
	if pat.emailFragment.MatchString(title) {
		return false
	}

	lower := strings.ToLower(title)
	lower = strings.ReplaceAll(lower, "’", "'") // curly apostrophe in "Master’s"
	for _, w := range educationWords {
		if strings.Contains(lower, w) {
			return false
		}
	}
	for _, verb := range responsibilityVerbs {
		if strings.HasPrefix(lower, verb) {
			return false
		}
	}
	return true
}
