package api

type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LeadBCBA string `json:"leadBcba"`
}

type Session struct {
	Date      string `json:"date"`
	Correct   int    `json:"correct"`
	Incorrect int    `json:"incorrect"`
	Therapist string `json:"therapist"`
	Location  string `json:"location"`
}

type Program struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	Name         string    `json:"name"`
	Domain       string    `json:"domain"`
	Status       string    `json:"status"`
	CurrentPhase string    `json:"currentPhase"`
	TierLevel    string    `json:"tierLevel"`
	BCBAOwner    string    `json:"bcbaOwner"`
	PromptLevel  string    `json:"promptLevel"`
	TargetSkills []string  `json:"targetSkills"`
	Notes        string    `json:"notes"`
	MasteryRate  float64   `json:"masteryRate"`
	Sessions     []Session `json:"sessions"`
}

type EnrichedProgram struct {
	Program
	ClientName string `json:"clientName"`
	ClientBCBA string `json:"clientBcba"`
}

// Catalog is the wire and fixture-file form of the full dataset.
type Catalog struct {
	Clients  []Client  `json:"clients"`
	Programs []Program `json:"programs"`
}

type DateRange struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

type Filters struct {
	ClientID     *string    `json:"clientId"`
	Domains      []string   `json:"domains"`
	Statuses     []string   `json:"statuses"`
	Therapists   []string   `json:"therapists"`
	BCBAs        []string   `json:"bcba"`
	PromptLevels []string   `json:"promptLevels"`
	TierLevels   []string   `json:"tierLevels"`
	MasteryRange [2]float64 `json:"masteryRange"`
	DateRange    DateRange  `json:"dateRange"`
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilterOptions struct {
	Clients      []Option `json:"clients"`
	Domains      []string `json:"domains"`
	Statuses     []string `json:"statuses"`
	Therapists   []string `json:"therapists"`
	BCBAs        []string `json:"bcbas"`
	PromptLevels []string `json:"promptLevels"`
	TierLevels   []string `json:"tierLevels"`
}

type Metrics struct {
	TotalPrograms  int     `json:"totalPrograms"`
	ActivePrograms int     `json:"activePrograms"`
	AvgMastery     float64 `json:"avgMastery"`
	TrialsLast7    int     `json:"trialsLast7"`
	AtRiskPrograms int     `json:"atRiskPrograms"`
}

type CumulativePoint struct {
	Date             string `json:"date"`
	Cumulative       int    `json:"cumulative"`
	DistinctPrograms int    `json:"distinctPrograms"`
	Trials           int    `json:"trials"`
}

type Overview struct {
	Programs []EnrichedProgram `json:"programs"`
	Metrics  Metrics           `json:"metrics"`
	Series   []CumulativePoint `json:"series"`
}

type SessionStat struct {
	Session
	Accuracy int `json:"accuracy"`
}

type ProgramDetail struct {
	EnrichedProgram
	TotalTrials    int           `json:"totalTrials"`
	RecentAccuracy float64       `json:"recentAccuracy"`
	LastSession    *string       `json:"lastSession"`
	Snapshot       []SessionStat `json:"snapshot"`
}

type Error struct {
	Error string `json:"error"`
}
