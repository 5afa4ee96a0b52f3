package commands

import (
	"fmt"
	"time"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/services/analytics"
	catalogsvc "github.com/clearpath-aba/clearpath/pkg/services/catalog"
	"github.com/clearpath-aba/clearpath/pkg/services/report"
	"github.com/clearpath-aba/clearpath/pkg/store/duckdb"
	duckdbcatalog "github.com/clearpath-aba/clearpath/pkg/store/duckdb/catalog"
	"github.com/clearpath-aba/clearpath/pkg/store/fixture"
	"github.com/spf13/cobra"
)

// ReportHandler renders a finished report to the terminal.
type ReportHandler interface {
	Handle(report *domain.Report) error
}

type ReportCmd struct {
	catalogPath string
	dbPath      string

	client       string
	domains      []string
	statuses     []string
	therapists   []string
	bcbas        []string
	promptLevels []string
	tierLevels   []string
	masteryMin   float64
	masteryMax   float64
	startDate    string
	endDate      string

	format    string
	reporters map[string]ReportHandler
}

func NewReportCmd(text, table ReportHandler) *cobra.Command {
	rc := &ReportCmd{
		reporters: map[string]ReportHandler{
			"text":  text,
			"table": table,
		},
	}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the dashboard analytics as a terminal report",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.catalogPath, "catalog", "", "Path to a JSON catalog fixture")
	cmd.Flags().StringVar(&rc.dbPath, "db", "", "Path to a DuckDB catalog database")
	cmd.Flags().StringVar(&rc.client, "client", "", "Restrict to a single client id")
	cmd.Flags().StringSliceVar(&rc.domains, "domain", nil, "Domains to include")
	cmd.Flags().StringSliceVar(&rc.statuses, "status", nil, "Program statuses to include")
	cmd.Flags().StringSliceVar(&rc.therapists, "therapist", nil, "Therapists to include")
	cmd.Flags().StringSliceVar(&rc.bcbas, "bcba", nil, "BCBAs (owner or lead) to include")
	cmd.Flags().StringSliceVar(&rc.promptLevels, "prompt-level", nil, "Prompt levels to include")
	cmd.Flags().StringSliceVar(&rc.tierLevels, "tier-level", nil, "Tier levels to include")
	cmd.Flags().Float64Var(&rc.masteryMin, "mastery-min", 0, "Lower mastery bound, inclusive")
	cmd.Flags().Float64Var(&rc.masteryMax, "mastery-max", 100, "Upper mastery bound, inclusive")
	cmd.Flags().StringVar(&rc.startDate, "start", "", "Window start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.endDate, "end", "", "Window end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&rc.format, "format", "table", "Output format: text or table")

	cmd.MarkFlagsOneRequired("catalog", "db")
	cmd.MarkFlagsMutuallyExclusive("catalog", "db")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	reporter, ok := rc.reporters[rc.format]
	if !ok {
		return fmt.Errorf("unsupported format %q, expected text or table", rc.format)
	}

	catalog, err := rc.loadCatalog(cmd)
	if err != nil {
		return err
	}

	filters, err := rc.buildFilters()
	if err != nil {
		return err
	}

	result, err := report.BuildDashboardReport(catalog, filters, time.Now(), analytics.DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	return reporter.Handle(result)
}

func (rc *ReportCmd) loadCatalog(cmd *cobra.Command) (domain.Catalog, error) {
	if rc.dbPath != "" {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: rc.dbPath})
		if err != nil {
			return domain.Catalog{}, err
		}
		defer db.Close()

		store, err := duckdbcatalog.NewStore(db)
		if err != nil {
			return domain.Catalog{}, err
		}
		return catalogsvc.LoadSnapshot(cmd.Context(), store)
	}

	catalog, err := fixture.Load(rc.catalogPath)
	if err != nil {
		return domain.Catalog{}, err
	}
	if err := catalogsvc.Validate(catalog); err != nil {
		return domain.Catalog{}, err
	}
	return catalog, nil
}

func (rc *ReportCmd) buildFilters() (domain.Filters, error) {
	filters := analytics.DefaultFilters()

	if rc.client != "" {
		filters.ClientID = &rc.client
	}
	filters.Domains = domain.NewStringSet(rc.domains...)
	filters.Statuses = domain.NewStringSet(rc.statuses...)
	filters.Therapists = domain.NewStringSet(rc.therapists...)
	filters.BCBAs = domain.NewStringSet(rc.bcbas...)
	filters.PromptLevels = domain.NewStringSet(rc.promptLevels...)
	filters.TierLevels = domain.NewStringSet(rc.tierLevels...)
	filters.MasteryRange = domain.MasteryRange{Min: rc.masteryMin, Max: rc.masteryMax}

	if rc.startDate != "" {
		start, err := domain.ParseDate(rc.startDate)
		if err != nil {
			return domain.Filters{}, err
		}
		filters.DateRange.Start = &start
	}
	if rc.endDate != "" {
		end, err := domain.ParseDate(rc.endDate)
		if err != nil {
			return domain.Filters{}, err
		}
		filters.DateRange.End = &end
	}

	return filters, analytics.ValidateFilters(filters)
}
