package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/services/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
}

func serviceFixture() Service {
	catalog := domain.Catalog{
		Clients: []domain.Client{
			{ID: "client-ava", Name: "Ava Thompson", LeadBCBA: "Dana Rios"},
		},
		Programs: []domain.Program{
			{
				ID:          "prog-mands",
				ClientID:    "client-ava",
				Name:        "Mands",
				Domain:      "Communication",
				Status:      "Active",
				MasteryRate: 80,
				Sessions: []domain.Session{
					{Date: domain.NewDate(2024, 1, 1), Correct: 3, Incorrect: 1, Therapist: "Jordan"},
					{Date: domain.NewDate(2024, 1, 3), Correct: 4, Incorrect: 0, Therapist: "Jordan"},
				},
			},
			{
				ID:          "prog-play",
				ClientID:    "client-ava",
				Name:        "Parallel Play",
				Domain:      "Social Skills",
				Status:      "Paused",
				MasteryRate: 55,
				Sessions: []domain.Session{
					{Date: domain.NewDate(2024, 1, 2), Correct: 1, Incorrect: 4, Therapist: "Sam"},
				},
			},
		},
	}
	return NewService(catalog, analytics.DefaultSettings(), fixedClock)
}

func TestService_Overview(t *testing.T) {
	ctx := context.Background()
	svc := serviceFixture()

	overview, err := svc.Overview(ctx, svc.DefaultFilters(ctx))

	require.NoError(t, err)
	assert.Len(t, overview.Programs, 2)
	assert.Equal(t, 2, overview.Metrics.TotalPrograms)
	assert.Equal(t, 1, overview.Metrics.ActivePrograms)
	// All sessions fall inside the trailing window of the fixed clock.
	assert.Equal(t, 13, overview.Metrics.TrialsLast7)
	require.Len(t, overview.Series, 3)
	assert.Equal(t, 13, overview.Series[2].Cumulative)
}

func TestService_OverviewRecomputesPerCall(t *testing.T) {
	ctx := context.Background()
	svc := serviceFixture()
	filters := svc.DefaultFilters(ctx)

	first, err := svc.Overview(ctx, filters)
	require.NoError(t, err)
	second, err := svc.Overview(ctx, filters)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestService_SummaryPropagatesFilterErrors(t *testing.T) {
	ctx := context.Background()
	svc := serviceFixture()

	filters := svc.DefaultFilters(ctx)
	filters.MasteryRange = domain.MasteryRange{Min: 90, Max: 10}

	_, err := svc.Summary(ctx, filters)

	var validation domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestService_ProgramDetail(t *testing.T) {
	ctx := context.Background()
	svc := serviceFixture()

	detail, err := svc.ProgramDetail(ctx, "prog-mands")

	require.NoError(t, err)
	assert.Equal(t, "Ava Thompson", detail.ClientName)
	assert.Equal(t, 8, detail.Insight.TotalTrials)
	require.NotNil(t, detail.Insight.LastSession)
	assert.Equal(t, domain.NewDate(2024, 1, 3), *detail.Insight.LastSession)
}

func TestService_ProgramDetailNotFound(t *testing.T) {
	ctx := context.Background()
	svc := serviceFixture()

	_, err := svc.ProgramDetail(ctx, "prog-unknown")

	assert.ErrorIs(t, err, ErrProgramNotFound)
}
