package domain

// StatusActive is the program status that counts toward the active KPI.
const StatusActive = "Active"

type Client struct {
	ID       string
	Name     string
	LeadBCBA string
}

type Session struct {
	Date      Date
	Correct   int
	Incorrect int
	Therapist string
	Location  string
}

// Trials is the total trial count logged in the session. A session with zero
// trials is legitimate.
func (s Session) Trials() int {
	return s.Correct + s.Incorrect
}

type Program struct {
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
	MasteryRate  float64 // 0-100, overall historical mastery percentage
	Sessions     []Session
}

// Catalog is the full set of clients and programs the engine operates over.
// It is loaded once and treated as immutable for its lifetime.
type Catalog struct {
	Clients  []Client
	Programs []Program
}

// ClientIndex returns clients keyed by ID for enrichment lookups.
func (c Catalog) ClientIndex() map[string]Client {
	index := make(map[string]Client, len(c.Clients))
	for _, client := range c.Clients {
		index[client.ID] = client
	}
	return index
}
