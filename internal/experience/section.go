package experience

import "strings"

// maxHeaderLen bounds how long a line can be and still count as a section
// header. "Bachelor's Degree of Computer Engineering ..." mentions
// "degree" but is prose, not a header.
const maxHeaderLen = 40

// normalizeHeader prepares a line for header comparison: trim, lowercase,
// strip one trailing colon.
func normalizeHeader(line string) string {
	s := strings.TrimSpace(line)
	s = strings.TrimSuffix(s, ":")
	s = strings.TrimSpace(s)
	return strings.ToLower(s)
}

// isExperienceHeader reports whether a line opens the experience section.
func isExperienceHeader(line string) bool {
	if len(line) > maxHeaderLen {
		return false
	}
	h := normalizeHeader(line)
	for _, header := range sectionHeaders {
		if h == header {
			return true
		}
	}
	return false
}

// isSectionTerminator reports whether a line is a standalone header for a
// different section. Only short header-like lines count; a terminator
// keyword buried inside a longer sentence does not end the section.
func isSectionTerminator(line string) bool {
	if len(line) > maxHeaderLen {
		return false
	}
	h := normalizeHeader(line)
	if h == "" {
		return false
	}
	for _, term := range sectionTerminators {
		if h == term {
			return true
		}
	}
	return false
}

// LocateSection finds the half-open line range (start, end) of the
// experience section. start is the line after the header; end is the first
// subsequent terminator header or len(lines). When no experience header
// exists it returns (0, 0) and the pipeline degrades to an empty result.
func LocateSection(lines []string) (int, int) {
	start := -1
	for i, line := range lines {
		if isExperienceHeader(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return 0, 0
	}

	for i := start; i < len(lines); i++ {
		if isSectionTerminator(lines[i]) {
			return start, i
		}
	}
	return start, len(lines)
}
