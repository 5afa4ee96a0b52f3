package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/services/analytics"
)

// ErrProgramNotFound reports a drilldown request for an unknown program.
var ErrProgramNotFound = errors.New("program not found")

// Service is the function surface the presentation layer consumes. Every
// call recomputes from the immutable catalog snapshot; there is no caching
// across calls.
type Service interface {
	Options(ctx context.Context) domain.FilterOptions
	Clients(ctx context.Context) []domain.ClientOption
	DefaultFilters(ctx context.Context) domain.Filters
	QueryPrograms(ctx context.Context, filters domain.Filters) ([]domain.EnrichedProgram, error)
	Summary(ctx context.Context, filters domain.Filters) (domain.Metrics, error)
	Series(ctx context.Context, filters domain.Filters) ([]domain.CumulativePoint, error)
	Overview(ctx context.Context, filters domain.Filters) (domain.Overview, error)
	ProgramDetail(ctx context.Context, programID string) (domain.ProgramDetail, error)
}

type service struct {
	catalog  domain.Catalog
	settings analytics.Settings
	now      func() time.Time
}

// NewService binds a catalog snapshot to the analytics engine. The clock is
// injected so summary windows stay deterministic under test; nil defaults to
// time.Now.
func NewService(catalog domain.Catalog, settings analytics.Settings, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		catalog:  catalog,
		settings: settings,
		now:      now,
	}
}

func (s *service) Options(_ context.Context) domain.FilterOptions {
	return analytics.ListFilterOptions(s.catalog)
}

func (s *service) Clients(_ context.Context) []domain.ClientOption {
	return analytics.ListClients(s.catalog)
}

func (s *service) DefaultFilters(_ context.Context) domain.Filters {
	return analytics.DefaultFilters()
}

func (s *service) QueryPrograms(_ context.Context, filters domain.Filters) ([]domain.EnrichedProgram, error) {
	return analytics.ApplyFilters(s.catalog, filters)
}

func (s *service) Summary(ctx context.Context, filters domain.Filters) (domain.Metrics, error) {
	programs, err := s.QueryPrograms(ctx, filters)
	if err != nil {
		return domain.Metrics{}, err
	}
	return analytics.Summarize(programs, s.now(), s.settings), nil
}

func (s *service) Series(ctx context.Context, filters domain.Filters) ([]domain.CumulativePoint, error) {
	programs, err := s.QueryPrograms(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analytics.BuildCumulativeSeries(programs, filters)
}

func (s *service) Overview(ctx context.Context, filters domain.Filters) (domain.Overview, error) {
	programs, err := s.QueryPrograms(ctx, filters)
	if err != nil {
		return domain.Overview{}, err
	}
	series, err := analytics.BuildCumulativeSeries(programs, filters)
	if err != nil {
		return domain.Overview{}, err
	}
	return domain.Overview{
		Programs: programs,
		Metrics:  analytics.Summarize(programs, s.now(), s.settings),
		Series:   series,
	}, nil
}

func (s *service) ProgramDetail(_ context.Context, programID string) (domain.ProgramDetail, error) {
	for _, program := range s.catalog.Programs {
		if program.ID != programID {
			continue
		}
		client, ok := s.catalog.ClientIndex()[program.ClientID]
		if !ok {
			return domain.ProgramDetail{}, domain.DataIntegrityError{
				ProgramID: program.ID,
				ClientID:  program.ClientID,
			}
		}
		return domain.ProgramDetail{
			EnrichedProgram: domain.EnrichedProgram{
				Program:    program,
				ClientName: client.Name,
				ClientBCBA: client.LeadBCBA,
			},
			Insight: analytics.BuildInsight(program, s.settings),
		}, nil
	}
	return domain.ProgramDetail{}, fmt.Errorf("%w: %s", ErrProgramNotFound, programID)
}
