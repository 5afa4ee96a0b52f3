package analytics

import "github.com/clearpath-aba/clearpath/pkg/models/domain"

// DefaultFilters is the neutral query value: no client selected, all
// multi-select dimensions unrestricted, full mastery band, unbounded dates.
func DefaultFilters() domain.Filters {
	return domain.Filters{
		Domains:      domain.StringSet{},
		Statuses:     domain.StringSet{},
		Therapists:   domain.StringSet{},
		BCBAs:        domain.StringSet{},
		PromptLevels: domain.StringSet{},
		TierLevels:   domain.StringSet{},
		MasteryRange: domain.MasteryRange{Min: 0, Max: 100},
	}
}

// ValidateFilters rejects internally inconsistent filter values. Invalid
// input is surfaced, never clamped.
func ValidateFilters(filters domain.Filters) error {
	mastery := filters.MasteryRange
	if mastery.Min < 0 || mastery.Max > 100 {
		return domain.ValidationError{
			Field:  "masteryRange",
			Reason: "bounds must lie within [0, 100]",
		}
	}
	if mastery.Min > mastery.Max {
		return domain.ValidationError{
			Field:  "masteryRange",
			Reason: "min exceeds max",
		}
	}

	dates := filters.DateRange
	if dates.Start != nil && dates.End != nil && dates.End.Before(*dates.Start) {
		return domain.ValidationError{
			Field:  "dateRange",
			Reason: "end precedes start",
		}
	}

	return nil
}

// ApplyFilters returns the programs satisfying every active filter dimension,
// each enriched with its client's name and lead BCBA. Dimensions combine with
// AND; an empty multi-select set places no restriction. Catalog order is
// preserved and neither input is mutated. A program whose client is missing
// from the catalog fails the whole call with a DataIntegrityError.
func ApplyFilters(catalog domain.Catalog, filters domain.Filters) ([]domain.EnrichedProgram, error) {
	if err := ValidateFilters(filters); err != nil {
		return nil, err
	}

	clients := catalog.ClientIndex()
	result := make([]domain.EnrichedProgram, 0, len(catalog.Programs))

	for _, program := range catalog.Programs {
		client, ok := clients[program.ClientID]
		if !ok {
			return nil, domain.DataIntegrityError{
				ProgramID: program.ID,
				ClientID:  program.ClientID,
			}
		}

		if filters.ClientID != nil && *filters.ClientID != program.ClientID {
			continue
		}
		if !filters.Domains.Empty() && !filters.Domains.Has(program.Domain) {
			continue
		}
		if !filters.Statuses.Empty() && !filters.Statuses.Has(program.Status) {
			continue
		}
		if !filters.PromptLevels.Empty() && !filters.PromptLevels.Has(program.PromptLevel) {
			continue
		}
		if !filters.TierLevels.Empty() && !filters.TierLevels.Has(program.TierLevel) {
			continue
		}
		if !filters.BCBAs.Empty() &&
			!filters.BCBAs.Has(program.BCBAOwner) && !filters.BCBAs.Has(client.LeadBCBA) {
			continue
		}
		if !filters.Therapists.Empty() && !anyTherapist(program.Sessions, filters.Therapists) {
			continue
		}
		if program.MasteryRate < filters.MasteryRange.Min ||
			program.MasteryRate > filters.MasteryRange.Max {
			continue
		}
		if !anySessionInWindow(program.Sessions, filters.DateRange) {
			continue
		}

		result = append(result, domain.EnrichedProgram{
			Program:    program,
			ClientName: client.Name,
			ClientBCBA: client.LeadBCBA,
		})
	}

	return result, nil
}

func anyTherapist(sessions []domain.Session, therapists domain.StringSet) bool {
	for _, session := range sessions {
		if therapists.Has(session.Therapist) {
			return true
		}
	}
	return false
}

// anySessionInWindow implements the program-level date policy: a program with
// any session inside the window is kept whole, so downstream consumers see
// its complete session history. An unbounded window passes every program.
func anySessionInWindow(sessions []domain.Session, window domain.DateRange) bool {
	if window.Start == nil && window.End == nil {
		return true
	}
	for _, session := range sessions {
		if window.Start != nil && session.Date.Before(*window.Start) {
			continue
		}
		if window.End != nil && session.Date.After(*window.End) {
			continue
		}
		return true
	}
	return false
}
