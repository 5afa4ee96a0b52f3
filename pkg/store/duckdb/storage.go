package duckdb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/marcboeker/go-duckdb/v2"
)

const ClientsSchema = `
	CREATE TABLE IF NOT EXISTS clients (
		id VARCHAR NOT NULL PRIMARY KEY,
		name VARCHAR NOT NULL,
		lead_bcba VARCHAR NOT NULL
	);
`

const ProgramsSchema = `
	CREATE TABLE IF NOT EXISTS programs (
		id VARCHAR NOT NULL PRIMARY KEY,
		client_id VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		domain VARCHAR,
		status VARCHAR,
		current_phase VARCHAR,
		tier_level VARCHAR,
		bcba_owner VARCHAR,
		prompt_level VARCHAR,
		target_skills JSON,
		notes VARCHAR,
		mastery_rate DOUBLE,
		position INTEGER NOT NULL
	);
`

const SessionsSchema = `
	CREATE TABLE IF NOT EXISTS sessions (
		program_id VARCHAR NOT NULL,
		seq INTEGER NOT NULL,
		session_date DATE NOT NULL,
		correct INTEGER NOT NULL,
		incorrect INTEGER NOT NULL,
		therapist VARCHAR,
		location VARCHAR,
		PRIMARY KEY (program_id, seq)
	);
`

var bootQueries = []string{
	ClientsSchema,
	ProgramsSchema,
	SessionsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	c, err := duckdb.NewConnector(settings.DbPath, func(exec driver.ExecerContext) error {
		for _, query := range bootQueries {
			_, err := exec.ExecContext(context.Background(), query, nil)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("open duckdb at %q: %w", settings.DbPath, err)
	}

	return sql.OpenDB(c), nil
}

type txKey struct{}

func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}
