package experience

import (
	"sort"
	"time"
)

// minPlausibleYear rejects garbage start dates produced by misread
// numbers; nobody's resume starts before this.
const minPlausibleYear = 1990

// TotalExperienceMonths merges the positions' date intervals and sums the
// result. Overlapping employment is counted once. now anchors open-ended
// "current" positions; positions without a usable start date contribute
// nothing.
//
// The total is always <= the sum of the individual positions' durations,
// with equality exactly when no two intervals overlap.
func TotalExperienceMonths(positions []Position, now time.Time) int {
	intervals := usableIntervals(positions, now)
	if len(intervals) == 0 {
		return 0
	}

	merged := mergeIntervals(intervals)

	months := 0
	for _, iv := range merged {
		months += iv.Start.MonthsUntil(iv.End)
	}
	// Inclusive month counting: a single-month position is one month of
	// experience, not zero.
	return months + 1
}

// usableIntervals extracts the (start, end) pairs worth counting: start
// parsed, chronologically sane, within plausible bounds.
func usableIntervals(positions []Position, now time.Time) []DateInterval {
	nowYM := YearMonth{Year: now.Year(), Month: int(now.Month())}

	var out []DateInterval
	for _, p := range positions {
		if p.Start.IsZero() {
			continue
		}
		end := p.End
		if p.IsCurrent {
			end = nowYM
		}
		if end.IsZero() {
			continue
		}
		if end.Before(p.Start) {
			continue
		}
		if p.Start.Year < minPlausibleYear || p.Start.Year > now.Year()+1 {
			continue
		}
		out = append(out, DateInterval{Start: p.Start, End: end})
	}
	return out
}

// mergeIntervals is a standard sweep: sort by start, extend the current
// interval while the next one overlaps or touches it.
func mergeIntervals(intervals []DateInterval) []DateInterval {
	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].Start != intervals[j].Start {
			return intervals[i].Start.Before(intervals[j].Start)
		}
		return intervals[i].End.Before(intervals[j].End)
	})

	merged := []DateInterval{intervals[0]}
	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]
		if !last.End.Before(iv.Start) {
			if last.End.Before(iv.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
