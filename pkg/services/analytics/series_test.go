package analytics

import (
	"testing"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCumulativeSeries_UnboundedWindow(t *testing.T) {
	// One program with sessions on Jan 1 (3/1) and Jan 3 (4/0): the series
	// spans Jan 1-3 with a zero-trial gap day in the middle.
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID: "prog-mands",
			Sessions: []domain.Session{
				{Date: date(2024, 1, 1), Correct: 3, Incorrect: 1},
				{Date: date(2024, 1, 3), Correct: 4, Incorrect: 0},
			},
		}),
	}

	series, err := BuildCumulativeSeries(programs, DefaultFilters())

	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, []int{4, 0, 4}, []int{series[0].Trials, series[1].Trials, series[2].Trials})
	assert.Equal(t, []int{4, 4, 8}, []int{series[0].Cumulative, series[1].Cumulative, series[2].Cumulative})
	assert.Equal(t, date(2024, 1, 1), series[0].Date)
	assert.Equal(t, date(2024, 1, 2), series[1].Date)
	assert.Equal(t, date(2024, 1, 3), series[2].Date)
	assert.Equal(t, []int{1, 0, 1}, []int{
		series[0].DistinctPrograms, series[1].DistinctPrograms, series[2].DistinctPrograms,
	})
}

func TestBuildCumulativeSeries_BoundedWindow(t *testing.T) {
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID: "a",
			Sessions: []domain.Session{
				{Date: date(2024, 1, 1), Correct: 5, Incorrect: 0}, // before window
				{Date: date(2024, 1, 5), Correct: 2, Incorrect: 2},
				{Date: date(2024, 1, 9), Correct: 7, Incorrect: 0}, // after window
			},
		}),
	}
	filters := DefaultFilters()
	filters.DateRange = domain.DateRange{Start: datePtr(2024, 1, 4), End: datePtr(2024, 1, 6)}

	series, err := BuildCumulativeSeries(programs, filters)

	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, date(2024, 1, 4), series[0].Date)
	assert.Equal(t, 0, series[0].Trials)
	assert.Equal(t, 4, series[1].Trials)
	assert.Equal(t, 4, series[2].Cumulative)
}

func TestBuildCumulativeSeries_GapFreeAndMonotonic(t *testing.T) {
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID: "a",
			Sessions: []domain.Session{
				{Date: date(2024, 2, 1), Correct: 1, Incorrect: 1},
				{Date: date(2024, 2, 14), Correct: 3, Incorrect: 0},
			},
		}),
		enriched(domain.Program{
			ID: "b",
			Sessions: []domain.Session{
				{Date: date(2024, 2, 7), Correct: 2, Incorrect: 2},
			},
		}),
	}

	series, err := BuildCumulativeSeries(programs, DefaultFilters())

	require.NoError(t, err)
	require.Len(t, series, 14)

	totalTrials := 0
	for i, point := range series {
		totalTrials += point.Trials
		assert.Equal(t, date(2024, 2, 1).AddDays(i), point.Date)
		if i > 0 {
			assert.GreaterOrEqual(t, point.Cumulative, series[i-1].Cumulative)
		}
	}
	assert.Equal(t, totalTrials, series[len(series)-1].Cumulative)
}

func TestBuildCumulativeSeries_DistinctProgramsPerDay(t *testing.T) {
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID: "a",
			Sessions: []domain.Session{
				{Date: date(2024, 3, 1), Correct: 1, Incorrect: 0},
				{Date: date(2024, 3, 1), Correct: 2, Incorrect: 0}, // second session, same day
			},
		}),
		enriched(domain.Program{
			ID: "b",
			// A session with zero trials still counts as logged.
			Sessions: []domain.Session{{Date: date(2024, 3, 1)}},
		}),
	}

	series, err := BuildCumulativeSeries(programs, DefaultFilters())

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 2, series[0].DistinctPrograms)
	assert.Equal(t, 3, series[0].Trials)
}

func TestBuildCumulativeSeries_NoSessionsReturnsEmpty(t *testing.T) {
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{ID: "a"}),
	}

	series, err := BuildCumulativeSeries(programs, DefaultFilters())

	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestBuildCumulativeSeries_DegenerateWindow(t *testing.T) {
	filters := DefaultFilters()
	filters.DateRange = domain.DateRange{Start: datePtr(2024, 5, 10), End: datePtr(2024, 5, 1)}

	_, err := BuildCumulativeSeries(nil, filters)

	var validation domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "dateRange", validation.Field)
}

func TestBuildCumulativeSeries_SingleDayWindow(t *testing.T) {
	programs := []domain.EnrichedProgram{
		enriched(domain.Program{
			ID:       "a",
			Sessions: []domain.Session{{Date: date(2024, 4, 2), Correct: 6, Incorrect: 4}},
		}),
	}
	filters := DefaultFilters()
	filters.DateRange = domain.DateRange{Start: datePtr(2024, 4, 2), End: datePtr(2024, 4, 2)}

	series, err := BuildCumulativeSeries(programs, filters)

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 10, series[0].Trials)
	assert.Equal(t, 10, series[0].Cumulative)
}
