package experience

import "strings"

// DedupeCandidates collapses candidates that describe the same real
// position. Two candidates are duplicates when their employers match
// (case-insensitive equality, or substring containment after stripping a
// "client:" prefix) and their titles match the same way. The
// earlier-discovered candidate wins; nothing is field-merged. Candidates
// with an empty employer are never merged: the signal is too ambiguous.
//
// The operation is idempotent: running it on its own output is a no-op.
func DedupeCandidates(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		dup := false
		for _, kept := range out {
			if sameEmployer(kept.Employer, c.Employer) && sameTitle(kept.JobTitle, c.JobTitle) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

func sameEmployer(a, b string) bool {
	a = normalizeEmployer(a)
	b = normalizeEmployer(b)
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func normalizeEmployer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "client:")
	return strings.TrimSpace(s)
}

func sameTitle(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
