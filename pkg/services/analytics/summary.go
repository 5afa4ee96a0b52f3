package analytics

import (
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
)

// Settings contains the policy values for KPI computation. They are
// configuration, not inlined literals, so boundary behavior stays testable.
type Settings struct {
	// RecentSessionCount is how many trailing sessions feed recent accuracy (default: 5)
	RecentSessionCount int
	// TrialWindowDays is the trailing calendar-day window for the trial volume KPI (default: 7)
	TrialWindowDays int
	// AtRiskThreshold is the recent-accuracy percentage below which a program is flagged (default: 65)
	AtRiskThreshold float64
	// SnapshotSessionCount is how many trailing sessions the drilldown snapshot shows (default: 4)
	SnapshotSessionCount int
}

// DefaultSettings returns the policy values used by the dashboard.
func DefaultSettings() Settings {
	return Settings{
		RecentSessionCount:   5,
		TrialWindowDays:      7,
		AtRiskThreshold:      65,
		SnapshotSessionCount: 4,
	}
}

// Summarize computes the scalar KPIs over an already-filtered program list.
// The caller supplies "now" so the function stays pure; only its calendar day
// matters. An empty list yields all-zero metrics.
func Summarize(programs []domain.EnrichedProgram, now time.Time, settings Settings) domain.Metrics {
	metrics := domain.Metrics{TotalPrograms: len(programs)}
	if len(programs) == 0 {
		return metrics
	}

	windowEnd := domain.DateOf(now)
	windowStart := windowEnd.AddDays(-(settings.TrialWindowDays - 1))

	var masterySum float64
	for _, program := range programs {
		if program.Status == domain.StatusActive {
			metrics.ActivePrograms++
		}
		masterySum += program.MasteryRate

		for _, session := range program.Sessions {
			if session.Date.Before(windowStart) || session.Date.After(windowEnd) {
				continue
			}
			metrics.TrialsLast7 += session.Trials()
		}

		if RecentAccuracy(program.Program, settings) < settings.AtRiskThreshold {
			metrics.AtRiskPrograms++
		}
	}

	metrics.AvgMastery = masterySum / float64(len(programs))
	return metrics
}

// RecentAccuracy is the accuracy over a program's trailing sessions (all of
// them when fewer exist than the configured window). When those sessions hold
// zero trials the program's overall mastery rate stands in, so a program with
// no data is judged by its history rather than flagged outright.
func RecentAccuracy(program domain.Program, settings Settings) float64 {
	recent := program.Sessions
	if len(recent) > settings.RecentSessionCount {
		recent = recent[len(recent)-settings.RecentSessionCount:]
	}

	var correct, total int
	for _, session := range recent {
		correct += session.Correct
		total += session.Trials()
	}

	if total == 0 {
		return program.MasteryRate
	}
	return 100 * float64(correct) / float64(total)
}

// AtRisk returns the programs whose recent accuracy falls below the
// configured threshold, in input order. This is the watchlist view.
func AtRisk(programs []domain.EnrichedProgram, settings Settings) []domain.EnrichedProgram {
	flagged := make([]domain.EnrichedProgram, 0)
	for _, program := range programs {
		if RecentAccuracy(program.Program, settings) < settings.AtRiskThreshold {
			flagged = append(flagged, program)
		}
	}
	return flagged
}
