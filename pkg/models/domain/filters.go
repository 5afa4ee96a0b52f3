package domain

import "sort"

// StringSet is a multi-select filter dimension. An empty set means "no
// restriction", never "match nothing".
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	set := make(StringSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s StringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

func (s StringSet) Empty() bool { return len(s) == 0 }

// Values returns the members in lexical order.
func (s StringSet) Values() []string {
	values := make([]string, 0, len(s))
	for v := range s {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// MasteryRange is a closed interval in percentage points.
type MasteryRange struct {
	Min float64
	Max float64
}

// DateRange bounds an observation window. A nil side is unbounded.
type DateRange struct {
	Start *Date
	End   *Date
}

// Filters is the query value driving the engine. Dimensions combine with
// logical AND; values within one multi-select dimension combine with OR.
type Filters struct {
	ClientID     *string
	Domains      StringSet
	Statuses     StringSet
	Therapists   StringSet
	BCBAs        StringSet
	PromptLevels StringSet
	TierLevels   StringSet
	MasteryRange MasteryRange
	DateRange    DateRange
}

// ClientOption is one selectable client, labeled for display.
type ClientOption struct {
	ID    string
	Label string
}

// FilterOptions holds the distinct selectable values per dimension, each
// sorted for stable display.
type FilterOptions struct {
	Clients      []ClientOption
	Domains      []string
	Statuses     []string
	Therapists   []string
	BCBAs        []string
	PromptLevels []string
	TierLevels   []string
}
