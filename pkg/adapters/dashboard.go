package adapters

import (
	"slices"

	"github.com/clearpath-aba/clearpath/pkg/models/api"
	"github.com/clearpath-aba/clearpath/pkg/models/domain"
)

// MapFiltersApiToDomain parses a wire Filters value. Malformed dates surface
// as ValidationError so the handler can answer with a client error.
func MapFiltersApiToDomain(filters api.Filters) (domain.Filters, error) {
	result := domain.Filters{
		ClientID:     filters.ClientID,
		Domains:      domain.NewStringSet(filters.Domains...),
		Statuses:     domain.NewStringSet(filters.Statuses...),
		Therapists:   domain.NewStringSet(filters.Therapists...),
		BCBAs:        domain.NewStringSet(filters.BCBAs...),
		PromptLevels: domain.NewStringSet(filters.PromptLevels...),
		TierLevels:   domain.NewStringSet(filters.TierLevels...),
		MasteryRange: domain.MasteryRange{
			Min: filters.MasteryRange[0],
			Max: filters.MasteryRange[1],
		},
	}

	parse := func(field string, value *string) (*domain.Date, error) {
		if value == nil || *value == "" {
			return nil, nil
		}
		date, err := domain.ParseDate(*value)
		if err != nil {
			return nil, domain.ValidationError{Field: field, Reason: err.Error()}
		}
		return &date, nil
	}

	start, err := parse("dateRange.start", filters.DateRange.Start)
	if err != nil {
		return domain.Filters{}, err
	}
	end, err := parse("dateRange.end", filters.DateRange.End)
	if err != nil {
		return domain.Filters{}, err
	}
	result.DateRange = domain.DateRange{Start: start, End: end}

	return result, nil
}

func MapSessionDomainToApi(session domain.Session) api.Session {
	return api.Session{
		Date:      session.Date.String(),
		Correct:   session.Correct,
		Incorrect: session.Incorrect,
		Therapist: session.Therapist,
		Location:  session.Location,
	}
}

func MapProgramDomainToApi(program domain.Program) api.Program {
	result := api.Program{
		ID:           program.ID,
		ClientID:     program.ClientID,
		Name:         program.Name,
		Domain:       program.Domain,
		Status:       program.Status,
		CurrentPhase: program.CurrentPhase,
		TierLevel:    program.TierLevel,
		BCBAOwner:    program.BCBAOwner,
		PromptLevel:  program.PromptLevel,
		TargetSkills: slices.Clone(program.TargetSkills),
		Notes:        program.Notes,
		MasteryRate:  program.MasteryRate,
		Sessions:     make([]api.Session, 0, len(program.Sessions)),
	}
	for _, s := range program.Sessions {
		result.Sessions = append(result.Sessions, MapSessionDomainToApi(s))
	}
	return result
}

func MapEnrichedProgramDomainToApi(program domain.EnrichedProgram) api.EnrichedProgram {
	return api.EnrichedProgram{
		Program:    MapProgramDomainToApi(program.Program),
		ClientName: program.ClientName,
		ClientBCBA: program.ClientBCBA,
	}
}

func MapEnrichedProgramsDomainToApi(programs []domain.EnrichedProgram) []api.EnrichedProgram {
	result := make([]api.EnrichedProgram, 0, len(programs))
	for _, p := range programs {
		result = append(result, MapEnrichedProgramDomainToApi(p))
	}
	return result
}

func MapMetricsDomainToApi(metrics domain.Metrics) api.Metrics {
	return api.Metrics{
		TotalPrograms:  metrics.TotalPrograms,
		ActivePrograms: metrics.ActivePrograms,
		AvgMastery:     metrics.AvgMastery,
		TrialsLast7:    metrics.TrialsLast7,
		AtRiskPrograms: metrics.AtRiskPrograms,
	}
}

func MapSeriesDomainToApi(series []domain.CumulativePoint) []api.CumulativePoint {
	result := make([]api.CumulativePoint, 0, len(series))
	for _, point := range series {
		result = append(result, api.CumulativePoint{
			Date:             point.Date.String(),
			Cumulative:       point.Cumulative,
			DistinctPrograms: point.DistinctPrograms,
			Trials:           point.Trials,
		})
	}
	return result
}

func MapFilterOptionsDomainToApi(options domain.FilterOptions) api.FilterOptions {
	clients := make([]api.Option, 0, len(options.Clients))
	for _, c := range options.Clients {
		clients = append(clients, api.Option{Value: c.ID, Label: c.Label})
	}
	return api.FilterOptions{
		Clients:      clients,
		Domains:      slices.Clone(options.Domains),
		Statuses:     slices.Clone(options.Statuses),
		Therapists:   slices.Clone(options.Therapists),
		BCBAs:        slices.Clone(options.BCBAs),
		PromptLevels: slices.Clone(options.PromptLevels),
		TierLevels:   slices.Clone(options.TierLevels),
	}
}

func MapOverviewDomainToApi(overview domain.Overview) api.Overview {
	return api.Overview{
		Programs: MapEnrichedProgramsDomainToApi(overview.Programs),
		Metrics:  MapMetricsDomainToApi(overview.Metrics),
		Series:   MapSeriesDomainToApi(overview.Series),
	}
}

func MapProgramDetailDomainToApi(detail domain.ProgramDetail) api.ProgramDetail {
	result := api.ProgramDetail{
		EnrichedProgram: MapEnrichedProgramDomainToApi(detail.EnrichedProgram),
		TotalTrials:     detail.Insight.TotalTrials,
		RecentAccuracy:  detail.Insight.RecentAccuracy,
		Snapshot:        make([]api.SessionStat, 0, len(detail.Insight.Snapshot)),
	}
	if detail.Insight.LastSession != nil {
		last := detail.Insight.LastSession.String()
		result.LastSession = &last
	}
	for _, stat := range detail.Insight.Snapshot {
		result.Snapshot = append(result.Snapshot, api.SessionStat{
			Session:  MapSessionDomainToApi(stat.Session),
			Accuracy: stat.Accuracy,
		})
	}
	return result
}
