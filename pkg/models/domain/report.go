package domain

// Report represents a complete terminal analytics report
type Report struct {
	Title       string
	Period      TimePeriod
	Sections    []ReportSection
	TotalTrials int
}

// TimePeriod represents the observation window of the report
type TimePeriod struct {
	Start    Date
	End      Date
	Duration int // in days
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
