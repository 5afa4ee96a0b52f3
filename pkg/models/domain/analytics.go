package domain

// EnrichedProgram decorates a Program with client fields resolved at
// filter-evaluation time. Derived and ephemeral; recomputed on every pass.
type EnrichedProgram struct {
	Program
	ClientName string
	ClientBCBA string
}

// Metrics are the scalar KPIs computed over a filtered program list.
type Metrics struct {
	TotalPrograms  int
	ActivePrograms int
	AvgMastery     float64
	TrialsLast7    int
	AtRiskPrograms int
}

// CumulativePoint is one day's entry in the exposure time series.
type CumulativePoint struct {
	Date             Date
	Cumulative       int // running trial total through this day
	DistinctPrograms int // programs with at least one session this day
	Trials           int // trials logged on this day alone
}

// SessionStat pairs a session with its computed accuracy percentage.
type SessionStat struct {
	Session
	Accuracy int
}

// ProgramInsight carries the drilldown figures for a single program.
type ProgramInsight struct {
	TotalTrials    int
	RecentAccuracy float64
	LastSession    *Date
	Snapshot       []SessionStat // most recent sessions, latest first
}

// Overview bundles the three per-filter-change recomputations.
type Overview struct {
	Programs []EnrichedProgram
	Metrics  Metrics
	Series   []CumulativePoint
}

// ProgramDetail is the drilldown view for one program.
type ProgramDetail struct {
	EnrichedProgram
	Insight ProgramInsight
}
