package storage

import "time"

// CVFileInfo is metadata about an uploaded resume file.
type CVFileInfo struct {
	ID         int64
	Filename   string
	FileType   string
	FileSize   int64
	UploadedAt time.Time
}

// StoredPosition is one canonical employment record persisted for a CV.
// Dates are kept both as the raw text found in the document and as
// canonical year/month values (zero when unknown).
type StoredPosition struct {
	ID             int64  `json:"id"`
	CVFileID       int64  `json:"cv_file_id"`
	JobTitle       string `json:"job_title"`
	Employer       string `json:"employer"`
	Municipality   string `json:"municipality,omitempty"`
	Region         string `json:"region,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	StartYear      int    `json:"start_year,omitempty"`
	StartMonth     int    `json:"start_month,omitempty"`
	EndYear        int    `json:"end_year,omitempty"`
	EndMonth       int    `json:"end_month,omitempty"`
	IsCurrent      bool   `json:"is_current"`
	Description    string `json:"description,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
}

// PositionCriteria filters stored positions.
type PositionCriteria struct {
	Employer string `json:"employer"`
	JobTitle string `json:"job_title"`
	Location string `json:"location"`
}

// EmployerStat is one row of the popular-employers report.
type EmployerStat struct {
	Employer string `json:"employer"`
	Count    int    `json:"count"`
}
