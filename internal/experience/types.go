package experience

// YearMonth is a canonical calendar month. The zero value means "unknown".
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// IsZero reports whether the date is unknown.
func (ym YearMonth) IsZero() bool {
	return ym.Year == 0 && ym.Month == 0
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// MonthsUntil returns the month difference between ym and other (other - ym).
// Negative when other is earlier.
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return (other.Year-ym.Year)*12 + (other.Month - ym.Month)
}

// Location is a parsed "City, Region" pair. Either field may be empty.
type Location struct {
	Municipality string `json:"municipality,omitempty"`
	Region       string `json:"region,omitempty"`
}

func (l Location) String() string {
	if l.Municipality != "" && l.Region != "" {
		return l.Municipality + ", " + l.Region
	}
	if l.Municipality != "" {
		return l.Municipality
	}
	return l.Region
}

// Candidate is a position detected by a single layout strategy. Candidates
// are short-lived: the aggregator pools them, the filter and deduplicator
// consume them, and surviving ones become Positions.
type Candidate struct {
	JobTitle       string
	Employer       string
	Location       *Location
	StartRaw       string
	EndRaw         string
	Start          YearMonth // zero when the raw date did not parse
	End            YearMonth
	IsCurrent      bool
	Description    string
	EmploymentType string
	SourceLine     int // index into the experience section, for provenance
}

// Position is the canonical employment record emitted by the pipeline.
// Immutable once returned: title or employer is non-empty, and when both
// canonical dates are set, Start <= End.
type Position struct {
	JobTitle       string    `json:"jobTitle"`
	Employer       string    `json:"employer"`
	Location       *Location `json:"location,omitempty"`
	StartDate      string    `json:"startDate,omitempty"`
	EndDate        string    `json:"endDate,omitempty"`
	Start          YearMonth `json:"-"`
	End            YearMonth `json:"-"`
	IsCurrent      bool      `json:"isCurrent"`
	Description    string    `json:"description,omitempty"`
	EmploymentType string    `json:"employmentType,omitempty"`
}

// DateInterval is a closed range of months used for duration math only.
type DateInterval struct {
	Start YearMonth
	End   YearMonth
}

// Result is the output of one extraction pass over a single resume.
type Result struct {
	Positions             []Position `json:"positions"`
	TotalExperienceMonths int        `json:"total_experience_months"`
	CurrentJobRole        string     `json:"current_job_role"`
}
