package experience

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func newTestExtractor() *Extractor {
	e := NewExtractor()
	e.now = func() time.Time { return testNow }
	return e
}

const sampleResume = `John Smith
Senior Software Engineer
john.smith@example.com

Professional Experience

United Airline – Remote

Project Manager III (July 2021 – Current)

Cardinal Health, Remote, United States||Oct 2023 – Present
Mainframe Z/os System Programmer
Responsibilities:
Install and maintain z/OS system software
Automate recovery procedures

Education
Bachelor of Science, Computer Engineering
`

func TestExtractEndToEnd(t *testing.T) {
	res := newTestExtractor().Extract(sampleResume)

	if len(res.Positions) != 2 {
		t.Fatalf("positions = %d, want 2: %+v", len(res.Positions), res.Positions)
	}

	byEmployer := map[string]Position{}
	for _, p := range res.Positions {
		byEmployer[p.Employer] = p
	}

	ua, ok := byEmployer["United Airline"]
	if !ok {
		t.Fatal("United Airline position missing")
	}
	if ua.JobTitle != "Project Manager III" || !ua.IsCurrent || ua.Start != (YearMonth{2021, 7}) {
		t.Errorf("United Airline position = %+v", ua)
	}

	ch, ok := byEmployer["Cardinal Health"]
	if !ok {
		t.Fatal("Cardinal Health position missing")
	}
	if ch.JobTitle != "Mainframe Z/os System Programmer" || !ch.IsCurrent || ch.Start != (YearMonth{2023, 10}) {
		t.Errorf("Cardinal Health position = %+v", ch)
	}
	if ch.Location == nil || ch.Location.Municipality != "Remote" || ch.Location.Region != "United States" {
		t.Errorf("Cardinal Health location = %+v", ch.Location)
	}

	// Both positions are open-ended: 2021-07 through the injected "now"
	// (2026-03) merges to a single 56-month interval plus rounding.
	if res.TotalExperienceMonths != 57 {
		t.Errorf("TotalExperienceMonths = %d, want 57", res.TotalExperienceMonths)
	}

	if res.CurrentJobRole != "Senior Software Engineer" {
		t.Errorf("CurrentJobRole = %q", res.CurrentJobRole)
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := newTestExtractor()
	first := e.Extract(sampleResume)
	second := e.Extract(sampleResume)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestExtractGracefulDegradation(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty input", ""},
		{
			"education only",
			"Jane Doe\n\nEducation\nBachelor of Science, Physics\nMIT, 2015\n",
		},
		{"binary garbage", string([]byte{0x00, 0x01, 0xFF, 0xFE, '\n', 0x7F})},
		{"whitespace only", "   \n\t\n   \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestExtractor().Extract(tt.text)
			if len(res.Positions) != 0 {
				t.Errorf("positions = %+v, want none", res.Positions)
			}
			if res.TotalExperienceMonths != 0 {
				t.Errorf("TotalExperienceMonths = %d, want 0", res.TotalExperienceMonths)
			}
		})
	}
}

func TestExtractEducationInsideExperienceWindow(t *testing.T) {
	// An education line that leaks into the experience window is rejected
	// by the validity filter, not parsed as a position.
	text := strings.Join([]string{
		"Experience",
		"I. Bachelor's Degree of Computer Engineering",
		"",
	}, "\n")
	res := newTestExtractor().Extract(text)
	if len(res.Positions) != 0 {
		t.Errorf("positions = %+v, want none", res.Positions)
	}
}

func TestExtractCRLFInput(t *testing.T) {
	text := strings.ReplaceAll(sampleResume, "\n", "\r\n")
	res := newTestExtractor().Extract(text)
	if len(res.Positions) != 2 {
		t.Errorf("positions = %d, want 2 with CRLF line endings", len(res.Positions))
	}
}

func TestExtractStartNeverAfterEnd(t *testing.T) {
	// Invariant: any emitted position with both canonical dates satisfies
	// start <= end, whatever the input claimed.
	text := strings.Join([]string{
		"Experience",
		"Acme Corp – Dallas, TX",
		"Senior Software Engineer",
		"Dec 2020 – Jan 2019",
	}, "\n")
	res := newTestExtractor().Extract(text)
	for _, p := range res.Positions {
		if !p.Start.IsZero() && !p.End.IsZero() && p.End.Before(p.Start) {
			t.Errorf("position %q has reversed dates: %+v .. %+v", p.JobTitle, p.Start, p.End)
		}
	}
}
