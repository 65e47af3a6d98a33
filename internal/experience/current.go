package experience

import "strings"

// headerScanLimit bounds how far into the document the header scan looks
// for a role line near the candidate's name.
const headerScanLimit = 10

// CurrentRole picks the title describing the candidate's present
// occupation. Resolution order: a job-title-like line in the document
// header, then a position flagged current, then the first (assumed most
// recent) position, then "".
func CurrentRole(rawLines []string, positions []Position) string {
	if role := headerRole(rawLines); role != "" {
		return role
	}
	for _, p := range positions {
		if p.IsCurrent && p.JobTitle != "" {
			return p.JobTitle
		}
	}
	if len(positions) > 0 {
		return positions[0].JobTitle
	}
	return ""
}

// headerRole scans the first lines of the raw document, where resumes
// usually place "Name / Title / Contact". Contact lines and section
// headers are skipped.
func headerRole(lines []string) string {
	for i := 0; i < len(lines) && i < headerScanLimit; i++ {
		line, ok := usableLine(lines[i])
		if !ok {
			continue
		}
		if isExperienceHeader(line) || isSectionTerminator(line) {
			break
		}
		if strings.Contains(line, "@") || strings.ContainsAny(line, "0123456789") {
			continue
		}
		if looksLikeJobTitle(line) {
			return line
		}
	}
	return ""
}
