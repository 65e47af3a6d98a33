package experience

import (
	"strings"
	"time"
)

// Extractor runs the full employment-history pipeline: locate the
// experience section, run every layout strategy over it, filter and
// deduplicate the pooled candidates, then derive total experience and the
// current role. It holds no per-document state, so one Extractor can serve
// any number of goroutines.
type Extractor struct {
	strategies []Strategy
	now        func() time.Time
}

func NewExtractor() *Extractor {
	return &Extractor{
		strategies: defaultStrategies(),
		now:        time.Now,
	}
}

// Extract processes a whole resume text. It never fails: the worst case
// for unusable input is an empty result.
func (e *Extractor) Extract(rawText string) *Result {
	return e.ExtractLines(splitLines(rawText))
}

// ExtractLines is Extract for callers that already hold the line sequence.
func (e *Extractor) ExtractLines(lines []string) *Result {
	start, end := LocateSection(lines)
	section := lines[start:end]

	candidates := collectCandidates(e.strategies, section)
	candidates = FilterCandidates(candidates)
	candidates = DedupeCandidates(candidates)

	positions := make([]Position, 0, len(candidates))
	for _, c := range candidates {
		positions = append(positions, toPosition(c))
	}

	return &Result{
		Positions:             positions,
		TotalExperienceMonths: TotalExperienceMonths(positions, e.now()),
		CurrentJobRole:        CurrentRole(lines, positions),
	}
}

// toPosition freezes a surviving candidate into a canonical Position.
func toPosition(c Candidate) Position {
	p := Position{
		JobTitle:       strings.TrimSpace(c.JobTitle),
		Employer:       strings.TrimSpace(c.Employer),
		Location:       c.Location,
		StartDate:      c.StartRaw,
		EndDate:        c.EndRaw,
		Start:          c.Start,
		End:            c.End,
		IsCurrent:      c.IsCurrent,
		Description:    c.Description,
		EmploymentType: c.EmploymentType,
	}
	// Canonical dates must be ordered; a reversed pair means one side was
	// misparsed, so the end reverts to unknown while the raw text stays.
	if !p.Start.IsZero() && !p.End.IsZero() && p.End.Before(p.Start) {
		p.End = YearMonth{}
	}
	return p
}

// splitLines breaks raw text into clean lines, tolerating Windows line
// endings and stray carriage returns from PDF extraction.
func splitLines(rawText string) []string {
	rawText = strings.ReplaceAll(rawText, "\r\n", "\n")
	rawText = strings.ReplaceAll(rawText, "\r", "\n")
	return strings.Split(rawText, "\n")
}
