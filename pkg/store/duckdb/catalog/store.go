package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/clearpath-aba/clearpath/pkg/models/store"
	"github.com/clearpath-aba/clearpath/pkg/store/duckdb"
)

// Store persists and reads the raw catalog tables. Writes honor a
// transaction placed in the context via duckdb.WithTransaction.
type Store interface {
	AddClients(ctx context.Context, records []store.ClientRecord) error
	AddPrograms(ctx context.Context, records []store.ProgramRecord) error
	AddSessions(ctx context.Context, records []store.SessionRecord) error
	GetClients(ctx context.Context) ([]store.ClientRecord, error)
	GetPrograms(ctx context.Context) ([]store.ProgramRecord, error)
	GetSessions(ctx context.Context) ([]store.SessionRecord, error)
}

type catalogStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &catalogStore{db: db}, nil
}

func (c *catalogStore) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if tx := duckdb.GetTransaction(ctx); tx != nil {
		return tx.PrepareContext(ctx, query)
	}
	return c.db.PrepareContext(ctx, query)
}

func (c *catalogStore) AddClients(ctx context.Context, records []store.ClientRecord) error {
	if len(records) == 0 {
		return nil
	}

	stmt, err := c.prepare(ctx, `INSERT INTO clients (id, name, lead_bcba) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx, record.ID, record.Name, record.LeadBCBA); err != nil {
			return fmt.Errorf("insert client %q: %w", record.ID, err)
		}
	}
	return nil
}

func (c *catalogStore) AddPrograms(ctx context.Context, records []store.ProgramRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO programs (
			id, client_id, name, domain, status, current_phase, tier_level,
			bcba_owner, prompt_level, target_skills, notes, mastery_rate, position
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := c.prepare(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		skills, err := json.Marshal(record.TargetSkills)
		if err != nil {
			return fmt.Errorf("marshal target skills: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			record.ID,
			record.ClientID,
			record.Name,
			record.Domain,
			record.Status,
			record.CurrentPhase,
			record.TierLevel,
			record.BCBAOwner,
			record.PromptLevel,
			string(skills),
			record.Notes,
			record.MasteryRate,
			record.Position,
		)
		if err != nil {
			return fmt.Errorf("insert program %q: %w", record.ID, err)
		}
	}
	return nil
}

func (c *catalogStore) AddSessions(ctx context.Context, records []store.SessionRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO sessions (
			program_id, seq, session_date, correct, incorrect, therapist, location
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

	stmt, err := c.prepare(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		_, err := stmt.ExecContext(ctx,
			record.ProgramID,
			record.Seq,
			record.Date,
			record.Correct,
			record.Incorrect,
			record.Therapist,
			record.Location,
		)
		if err != nil {
			return fmt.Errorf("insert session for program %q: %w", record.ProgramID, err)
		}
	}
	return nil
}

func (c *catalogStore) GetClients(ctx context.Context) ([]store.ClientRecord, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, name, lead_bcba FROM clients ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("query clients: %w", err)
	}
	defer rows.Close()

	var records []store.ClientRecord
	for rows.Next() {
		var record store.ClientRecord
		if err := rows.Scan(&record.ID, &record.Name, &record.LeadBCBA); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (c *catalogStore) GetPrograms(ctx context.Context) ([]store.ProgramRecord, error) {
	query := `
		SELECT id, client_id, name, domain, status, current_phase, tier_level,
		       bcba_owner, prompt_level, target_skills, notes, mastery_rate, position
		FROM programs
		ORDER BY position`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}
	defer rows.Close()

	var records []store.ProgramRecord
	for rows.Next() {
		var record store.ProgramRecord
		var skills string
		err := rows.Scan(
			&record.ID,
			&record.ClientID,
			&record.Name,
			&record.Domain,
			&record.Status,
			&record.CurrentPhase,
			&record.TierLevel,
			&record.BCBAOwner,
			&record.PromptLevel,
			&skills,
			&record.Notes,
			&record.MasteryRate,
			&record.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		if err := json.Unmarshal([]byte(skills), &record.TargetSkills); err != nil {
			return nil, fmt.Errorf("unmarshal target skills: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (c *catalogStore) GetSessions(ctx context.Context) ([]store.SessionRecord, error) {
	query := `
		SELECT program_id, seq, session_date, correct, incorrect, therapist, location
		FROM sessions
		ORDER BY program_id, seq`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []store.SessionRecord
	for rows.Next() {
		var record store.SessionRecord
		err := rows.Scan(
			&record.ProgramID,
			&record.Seq,
			&record.Date,
			&record.Correct,
			&record.Incorrect,
			&record.Therapist,
			&record.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
