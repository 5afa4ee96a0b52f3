package report

import (
	"fmt"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/services/analytics"
)

// BuildDashboardReport renders the same analytics the dashboard shows as a
// terminal report: KPI overview, the at-risk watchlist, and the exposure
// window summary.
func BuildDashboardReport(
	catalog domain.Catalog,
	filters domain.Filters,
	now time.Time,
	settings analytics.Settings,
) (*domain.Report, error) {
	programs, err := analytics.ApplyFilters(catalog, filters)
	if err != nil {
		return nil, err
	}
	metrics := analytics.Summarize(programs, now, settings)
	series, err := analytics.BuildCumulativeSeries(programs, filters)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{
		Title:    "Client Analytics Report",
		Sections: []domain.ReportSection{},
	}
	if len(series) > 0 {
		first, last := series[0], series[len(series)-1]
		report.Period = domain.TimePeriod{
			Start:    first.Date,
			End:      last.Date,
			Duration: first.Date.DaysUntil(last.Date) + 1,
		}
		report.TotalTrials = last.Cumulative
	}

	report.Sections = append(report.Sections, overviewSection(metrics))
	report.Sections = append(report.Sections, watchlistSection(programs, settings))
	report.Sections = append(report.Sections, exposureSection(series))

	return report, nil
}

func overviewSection(metrics domain.Metrics) domain.ReportSection {
	return domain.ReportSection{
		Title: "Overview",
		Summary: map[string]interface{}{
			"programs_in_view": metrics.TotalPrograms,
			"active_programs":  metrics.ActivePrograms,
			"avg_mastery":      fmt.Sprintf("%.1f%%", metrics.AvgMastery),
			"trials_last_7":    metrics.TrialsLast7,
			"watchlist":        metrics.AtRiskPrograms,
		},
	}
}

func watchlistSection(programs []domain.EnrichedProgram, settings analytics.Settings) domain.ReportSection {
	section := domain.ReportSection{
		Title: "Watchlist",
		Summary: map[string]interface{}{
			"accuracy_threshold": settings.AtRiskThreshold,
		},
	}
	for _, program := range analytics.AtRisk(programs, settings) {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        program.Name,
			Value:       fmt.Sprintf("%.1f", analytics.RecentAccuracy(program.Program, settings)),
			Unit:        "%",
			Description: fmt.Sprintf("%s / %s", program.ClientName, program.Domain),
		})
	}
	section.Summary["flagged"] = len(section.Details)
	return section
}

func exposureSection(series []domain.CumulativePoint) domain.ReportSection {
	section := domain.ReportSection{
		Title:   "Cumulative Exposure",
		Summary: map[string]interface{}{},
	}
	if len(series) == 0 {
		section.Summary["no_activity"] = "no sessions in the selected window"
		return section
	}

	peak := series[0]
	for _, point := range series[1:] {
		if point.Trials > peak.Trials {
			peak = point
		}
	}
	section.Summary["days"] = len(series)
	section.Summary["total_trials"] = series[len(series)-1].Cumulative
	section.Details = append(section.Details, domain.ReportDetail{
		Name:        "Peak day",
		Value:       peak.Trials,
		Unit:        "trials",
		Description: fmt.Sprintf("%s across %d program(s)", peak.Date, peak.DistinctPrograms),
	})
	return section
}
