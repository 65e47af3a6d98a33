package experience

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestTotalExperienceNonOverlapping(t *testing.T) {
	positions := []Position{
		{Start: YearMonth{2019, 1}, End: YearMonth{2020, 6}},
		{Start: YearMonth{2021, 1}, End: YearMonth{2022, 1}},
	}
	if got := TotalExperienceMonths(positions, testNow); got != 30 {
		t.Errorf("TotalExperienceMonths = %d, want 30", got)
	}
}

func TestTotalExperienceOverlapCountedOnce(t *testing.T) {
	overlapping := []Position{
		{Start: YearMonth{2019, 1}, End: YearMonth{2020, 1}},
		{Start: YearMonth{2019, 6}, End: YearMonth{2020, 6}},
	}
	got := TotalExperienceMonths(overlapping, testNow)
	// Merged interval 2019-01..2020-06: 17 months plus inclusive rounding.
	if got != 18 {
		t.Errorf("TotalExperienceMonths = %d, want 18", got)
	}

	// Bound: merged total never exceeds the sum of individual durations.
	sum := 0
	for _, p := range overlapping {
		sum += TotalExperienceMonths([]Position{p}, testNow)
	}
	if got > sum {
		t.Errorf("merged total %d exceeds individual sum %d", got, sum)
	}
}

func TestTotalExperienceCurrentUsesNow(t *testing.T) {
	positions := []Position{
		{Start: YearMonth{2025, 3}, IsCurrent: true},
	}
	// 2025-03 .. 2026-03 is 12 months plus inclusive rounding.
	if got := TotalExperienceMonths(positions, testNow); got != 13 {
		t.Errorf("TotalExperienceMonths = %d, want 13", got)
	}
}

func TestTotalExperienceSkipsUnusable(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
	}{
		{"no start date", Position{End: YearMonth{2020, 1}}},
		{"end before start", Position{Start: YearMonth{2021, 1}, End: YearMonth{2019, 1}}},
		{"implausibly old", Position{Start: YearMonth{1887, 1}, End: YearMonth{1890, 1}}},
		{"start in the far future", Position{Start: YearMonth{2031, 1}, IsCurrent: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalExperienceMonths([]Position{tt.pos}, testNow); got != 0 {
				t.Errorf("TotalExperienceMonths = %d, want 0", got)
			}
		})
	}
}

func TestTotalExperienceEmpty(t *testing.T) {
	if got := TotalExperienceMonths(nil, testNow); got != 0 {
		t.Errorf("TotalExperienceMonths(nil) = %d, want 0", got)
	}
}

func TestTotalExperienceTouchingIntervalsMerge(t *testing.T) {
	positions := []Position{
		{Start: YearMonth{2019, 1}, End: YearMonth{2020, 1}},
		{Start: YearMonth{2020, 1}, End: YearMonth{2021, 1}},
	}
	// Shared endpoint merges into one 24-month interval plus rounding.
	if got := TotalExperienceMonths(positions, testNow); got != 25 {
		t.Errorf("TotalExperienceMonths = %d, want 25", got)
	}
}

func TestMergeIntervalsUnsortedInput(t *testing.T) {
	intervals := []DateInterval{
		{Start: YearMonth{2021, 1}, End: YearMonth{2022, 1}},
		{Start: YearMonth{2019, 1}, End: YearMonth{2020, 6}},
	}
	merged := mergeIntervals(intervals)
	if len(merged) != 2 {
		t.Fatalf("merged = %d intervals, want 2", len(merged))
	}
	if merged[0].Start != (YearMonth{2019, 1}) {
		t.Errorf("merged[0].Start = %+v, want 2019-01", merged[0].Start)
	}
}
