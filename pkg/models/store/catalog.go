package store

import "time"

type ClientRecord struct {
	ID       string
	Name     string
	LeadBCBA string
}

type ProgramRecord struct {
	ID           string
	ClientID     string
	Name         string
	Domain       string
	Status       string
	CurrentPhase string
	TierLevel    string
	BCBAOwner    string
	PromptLevel  string
	TargetSkills []string
	Notes        string
	MasteryRate  float64
	Position     int // catalog ordering
}

type SessionRecord struct {
	ProgramID string
	Seq       int // insertion order within the program
	Date      time.Time
	Correct   int
	Incorrect int
	Therapist string
	Location  string
}
