package commands

import (
	"fmt"
	"io"

	"github.com/clearpath-aba/clearpath/pkg/adapters"
	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/models/store"
	catalogsvc "github.com/clearpath-aba/clearpath/pkg/services/catalog"
	"github.com/clearpath-aba/clearpath/pkg/store/duckdb"
	duckdbcatalog "github.com/clearpath-aba/clearpath/pkg/store/duckdb/catalog"
	"github.com/clearpath-aba/clearpath/pkg/store/fixture"
	"github.com/spf13/cobra"
)

type ImportCmd struct {
	catalogPath string
	dbPath      string
	output      io.Writer
}

func NewImportCmd(output io.Writer) *cobra.Command {
	ic := &ImportCmd{output: output}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON catalog fixture into a DuckDB database",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.catalogPath, "catalog", "", "Path to the JSON catalog fixture to import")
	cmd.Flags().StringVar(&ic.dbPath, "db", "", "Path to the DuckDB database to write")

	cmd.MarkFlagRequired("catalog")
	cmd.MarkFlagRequired("db")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, _ []string) error {
	catalog, err := fixture.Load(ic.catalogPath)
	if err != nil {
		return err
	}
	if err := catalogsvc.Validate(catalog); err != nil {
		return err
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: ic.dbPath})
	if err != nil {
		return err
	}
	defer db.Close()

	catalogStore, err := duckdbcatalog.NewStore(db)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	txCtx := duckdb.WithTransaction(ctx, tx)
	clients, programs, sessions := flattenCatalog(catalog)

	if err := catalogStore.AddClients(txCtx, clients); err != nil {
		return err
	}
	if err := catalogStore.AddPrograms(txCtx, programs); err != nil {
		return err
	}
	if err := catalogStore.AddSessions(txCtx, sessions); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	fmt.Fprintf(ic.output, "Imported %d clients, %d programs, %d sessions into %s\n",
		len(clients), len(programs), len(sessions), ic.dbPath)
	return nil
}

func flattenCatalog(catalog domain.Catalog) ([]store.ClientRecord, []store.ProgramRecord, []store.SessionRecord) {
	clients := make([]store.ClientRecord, 0, len(catalog.Clients))
	for _, client := range catalog.Clients {
		clients = append(clients, adapters.MapDomainClientToStore(client))
	}

	programs := make([]store.ProgramRecord, 0, len(catalog.Programs))
	var sessions []store.SessionRecord
	for position, program := range catalog.Programs {
		programs = append(programs, adapters.MapDomainProgramToStore(program, position))
		for seq, session := range program.Sessions {
			sessions = append(sessions, adapters.MapDomainSessionToStore(program.ID, seq, session))
		}
	}

	return clients, programs, sessions
}
