package experience

import "strings"

// companyPipeDate detects the double-pipe layout:
//
//	Cardinal Health, Remote, United States||Oct 2023 – Present
//	Mainframe Z/os System Programmer
//	Responsibilities:
//	Install and maintain z/OS system software...
//
// Left of the delimiter is "Company, Location", right is the date range.
// The job title sits on the following non-blank line and an optional
// "Responsibilities:" block becomes the description.
type companyPipeDate struct{}

func (companyPipeDate) Name() string { return "company-pipe-date" }

// pipeDescriptionCap bounds how many lines of a responsibilities block are
// collected into the description.
const pipeDescriptionCap = 15

func (companyPipeDate) Detect(lines []string) []Candidate {
	var out []Candidate

	for i := range lines {
		line, ok := usableLine(lines[i])
		if !ok || !strings.Contains(line, "||") {
			continue
		}

		parts := strings.SplitN(line, "||", 2)
		companyPart := strings.TrimSpace(parts[0])
		datePart := strings.TrimSpace(parts[1])
		if companyPart == "" {
			continue
		}

		c := Candidate{SourceLine: i}
		if comma := strings.Index(companyPart, ","); comma >= 0 {
			c.Employer = strings.TrimSpace(companyPart[:comma])
			c.Location = parseLocation(companyPart[comma+1:])
		} else {
			c.Employer = companyPart
		}
		if dr, ok := parseDateRange(datePart); ok {
			applyRange(&c, dr)
		}

		// Title is the next non-blank line.
		j := i + 1
		for ; j < len(lines); j++ {
			next, ok := usableLine(lines[j])
			if !ok {
				continue
			}
			if strings.Contains(next, "||") {
				break
			}
			title, empType := splitEmploymentType(next)
			c.JobTitle = title
			c.EmploymentType = empType
			break
		}

		c.Description = collectResponsibilities(lines, j+1)
		out = append(out, c)
	}
	return out
}

// splitEmploymentType peels a "(Contract)"-style suffix off a title line.
func splitEmploymentType(title string) (string, string) {
	m := pat.parenSuffix.FindStringSubmatch(title)
	if m == nil {
		return title, ""
	}
	switch strings.ToLower(strings.TrimSpace(m[2])) {
	case "contract", "contractor", "full-time", "full time", "part-time",
		"part time", "freelance", "internship", "w2", "c2c":
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return title, ""
}

// collectResponsibilities gathers the lines of a "Responsibilities:" block
// starting at or after index from, stopping at the next entry signature.
func collectResponsibilities(lines []string, from int) string {
	start := -1
	for j := from; j < len(lines) && j < from+3; j++ {
		line, ok := usableLine(lines[j])
		if !ok {
			continue
		}
		lower := strings.ToLower(strings.TrimSuffix(line, ":"))
		if lower == "responsibilities" || lower == "key responsibilities" {
			start = j + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	var body []string
	for j := start; j < len(lines) && len(body) < pipeDescriptionCap; j++ {
		raw := strings.TrimSpace(lines[j])
		if raw == "" {
			break
		}
		if strings.Contains(raw, "||") || isSectionTerminator(raw) {
			break
		}
		line, ok := usableLine(lines[j])
		if !ok {
			continue
		}
		body = append(body, strings.TrimLeft(line, "•●▪◦‣·*- \t"))
	}
	return strings.Join(body, "\n")
}
