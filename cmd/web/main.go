package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/server"
	catalogsvc "github.com/clearpath-aba/clearpath/pkg/services/catalog"
	"github.com/clearpath-aba/clearpath/pkg/services/config"
	"github.com/clearpath-aba/clearpath/pkg/services/dashboard"
	"github.com/clearpath-aba/clearpath/pkg/store/duckdb"
	duckdbcatalog "github.com/clearpath-aba/clearpath/pkg/store/duckdb/catalog"
	"github.com/clearpath-aba/clearpath/pkg/store/fixture"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the ClearPath analytics web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	logger.Info().
		Str("source", cfg.Catalog.Source).
		Int("clients", len(catalog.Clients)).
		Int("programs", len(catalog.Programs)).
		Msg("catalog loaded")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Dashboard: dashboard.NewService(catalog, cfg.Settings(), nil),
			Logger:    logger,
		},
	})

	return api.Start()
}

func loadCatalog(ctx context.Context, cfg *config.Config) (domain.Catalog, error) {
	if cfg.Catalog.Source == config.SourceDuckDB {
		db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Catalog.Path})
		if err != nil {
			return domain.Catalog{}, err
		}
		defer db.Close()

		store, err := duckdbcatalog.NewStore(db)
		if err != nil {
			return domain.Catalog{}, err
		}
		return catalogsvc.LoadSnapshot(ctx, store)
	}

	catalog, err := fixture.Load(cfg.Catalog.Path)
	if err != nil {
		return domain.Catalog{}, err
	}
	if err := catalogsvc.Validate(catalog); err != nil {
		return domain.Catalog{}, err
	}
	return catalog, nil
}
