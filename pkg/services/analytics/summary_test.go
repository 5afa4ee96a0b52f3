package analytics

import (
	"testing"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enriched(program domain.Program) domain.EnrichedProgram {
	return domain.EnrichedProgram{Program: program}
}

func TestSummarize_EmptyInput(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	metrics := Summarize(nil, now, DefaultSettings())

	assert.Equal(t, domain.Metrics{}, metrics)
}

func TestSummarize_CountsAndAverage(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{ID: "a", Status: "Active", MasteryRate: 80}),
		enriched(domain.Program{ID: "b", Status: "Paused", MasteryRate: 60}),
		enriched(domain.Program{ID: "c", Status: "Active", MasteryRate: 70}),
	}

	metrics := Summarize(programs, now, DefaultSettings())

	assert.Equal(t, 3, metrics.TotalPrograms)
	assert.Equal(t, 2, metrics.ActivePrograms)
	assert.InDelta(t, 70.0, metrics.AvgMastery, 1e-9)
}

func TestSummarize_TrailingTrialWindow(t *testing.T) {
	// Window is the 7 calendar days ending at "now" inclusive: Feb 24 - Mar 1.
	now := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID:          "a",
			MasteryRate: 90,
			Sessions: []domain.Session{
				{Date: domain.NewDate(2024, 2, 23), Correct: 10, Incorrect: 0}, // one day too old
				{Date: domain.NewDate(2024, 2, 24), Correct: 4, Incorrect: 1},  // oldest in-window day
				{Date: domain.NewDate(2024, 3, 1), Correct: 2, Incorrect: 3},   // today
			},
		}),
	}

	metrics := Summarize(programs, now, DefaultSettings())

	assert.Equal(t, 10, metrics.TrialsLast7)
}

func TestSummarize_TrialWindowIsConfigurable(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	settings := DefaultSettings()
	settings.TrialWindowDays = 1
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID:          "a",
			MasteryRate: 90,
			Sessions: []domain.Session{
				{Date: domain.NewDate(2024, 2, 29), Correct: 5, Incorrect: 0},
				{Date: domain.NewDate(2024, 3, 1), Correct: 1, Incorrect: 1},
			},
		}),
	}

	metrics := Summarize(programs, now, settings)

	assert.Equal(t, 2, metrics.TrialsLast7)
}

func TestSummarize_AtRiskThreshold(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	programs := []domain.EnrichedProgram{
		// 64% recent accuracy, below the 65 threshold.
		enriched(domain.Program{
			ID:          "below",
			MasteryRate: 90,
			Sessions:    []domain.Session{{Date: domain.NewDate(2024, 1, 1), Correct: 64, Incorrect: 36}},
		}),
		// Exactly at the threshold stays off the watchlist.
		enriched(domain.Program{
			ID:          "at",
			MasteryRate: 90,
			Sessions:    []domain.Session{{Date: domain.NewDate(2024, 1, 1), Correct: 65, Incorrect: 35}},
		}),
	}

	metrics := Summarize(programs, now, DefaultSettings())

	assert.Equal(t, 1, metrics.AtRiskPrograms)
}

func TestRecentAccuracy(t *testing.T) {
	settings := DefaultSettings()

	t.Run("uses only the trailing window", func(t *testing.T) {
		program := domain.Program{
			MasteryRate: 10,
			Sessions: []domain.Session{
				{Date: domain.NewDate(2024, 1, 1), Correct: 0, Incorrect: 100}, // excluded, sixth from the end
				{Date: domain.NewDate(2024, 1, 2), Correct: 1, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 3), Correct: 1, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 4), Correct: 1, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 5), Correct: 1, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 6), Correct: 1, Incorrect: 0},
			},
		}

		assert.InDelta(t, 100.0, RecentAccuracy(program, settings), 1e-9)
	})

	t.Run("exactly five sessions all count", func(t *testing.T) {
		program := domain.Program{
			MasteryRate: 10,
			Sessions: []domain.Session{
				{Date: domain.NewDate(2024, 1, 1), Correct: 0, Incorrect: 10},
				{Date: domain.NewDate(2024, 1, 2), Correct: 10, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 3), Correct: 10, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 4), Correct: 10, Incorrect: 0},
				{Date: domain.NewDate(2024, 1, 5), Correct: 10, Incorrect: 0},
			},
		}

		assert.InDelta(t, 80.0, RecentAccuracy(program, settings), 1e-9)
	})

	t.Run("no sessions falls back to mastery rate", func(t *testing.T) {
		program := domain.Program{MasteryRate: 42.5}

		assert.InDelta(t, 42.5, RecentAccuracy(program, settings), 1e-9)
	})

	t.Run("zero-trial sessions fall back to mastery rate", func(t *testing.T) {
		program := domain.Program{
			MasteryRate: 55,
			Sessions: []domain.Session{
				{Date: domain.NewDate(2024, 1, 1)},
				{Date: domain.NewDate(2024, 1, 2)},
			},
		}

		assert.InDelta(t, 55.0, RecentAccuracy(program, settings), 1e-9)
	})
}

func TestAtRisk(t *testing.T) {
	settings := DefaultSettings()
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID:          "risky",
			MasteryRate: 90,
			Sessions:    []domain.Session{{Date: domain.NewDate(2024, 1, 1), Correct: 1, Incorrect: 9}},
		}),
		enriched(domain.Program{
			ID:          "steady",
			MasteryRate: 90,
			Sessions:    []domain.Session{{Date: domain.NewDate(2024, 1, 1), Correct: 9, Incorrect: 1}},
		}),
		// No session data; overall mastery below the threshold flags it.
		enriched(domain.Program{ID: "fallback", MasteryRate: 40}),
	}

	flagged := AtRisk(programs, settings)

	require.Len(t, flagged, 2)
	assert.Equal(t, "risky", flagged[0].ID)
	assert.Equal(t, "fallback", flagged[1].ID)
}
