package analytics

import "github.com/clearpath-aba/clearpath/pkg/models/domain"

// BuildCumulativeSeries produces the gap-free per-day exposure series over
// the observation window. The window is the filter's date bounds when both
// are set, otherwise the span of session dates found in the input; with no
// sessions and no bounds the series is empty. Every calendar day in the
// window appears exactly once in ascending order, including days with zero
// sessions, so the output is directly chart-ready.
func BuildCumulativeSeries(
	programs []domain.EnrichedProgram,
	filters domain.Filters,
) ([]domain.CumulativePoint, error) {
	start, end, ok := resolveWindow(programs, filters.DateRange)
	if !ok {
		return []domain.CumulativePoint{}, nil
	}
	if end.Before(start) {
		return nil, domain.ValidationError{
			Field:  "dateRange",
			Reason: "resolved window ends before it starts",
		}
	}

	trialsByDay := make(map[domain.Date]int)
	programsByDay := make(map[domain.Date]map[string]struct{})
	for _, program := range programs {
		for _, session := range program.Sessions {
			if session.Date.Before(start) || session.Date.After(end) {
				continue
			}
			trialsByDay[session.Date] += session.Trials()
			logged := programsByDay[session.Date]
			if logged == nil {
				logged = make(map[string]struct{})
				programsByDay[session.Date] = logged
			}
			logged[program.ID] = struct{}{}
		}
	}

	series := make([]domain.CumulativePoint, 0, start.DaysUntil(end)+1)
	running := 0
	for day := start; !day.After(end); day = day.AddDays(1) {
		trials := trialsByDay[day]
		running += trials
		series = append(series, domain.CumulativePoint{
			Date:             day,
			Cumulative:       running,
			DistinctPrograms: len(programsByDay[day]),
			Trials:           trials,
		})
	}

	return series, nil
}

func resolveWindow(
	programs []domain.EnrichedProgram,
	window domain.DateRange,
) (start, end domain.Date, ok bool) {
	if window.Start != nil && window.End != nil {
		return *window.Start, *window.End, true
	}

	found := false
	for _, program := range programs {
		for _, session := range program.Sessions {
			if !found {
				start, end = session.Date, session.Date
				found = true
				continue
			}
			if session.Date.Before(start) {
				start = session.Date
			}
			if session.Date.After(end) {
				end = session.Date
			}
		}
	}
	return start, end, found
}
