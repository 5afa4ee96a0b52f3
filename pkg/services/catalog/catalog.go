package catalog

import (
	"context"
	"fmt"

	"github.com/clearpath-aba/clearpath/pkg/adapters"
	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/models/store"
)

// Store is a source of raw catalog records.
type Store interface {
	GetClients(ctx context.Context) ([]store.ClientRecord, error)
	GetPrograms(ctx context.Context) ([]store.ProgramRecord, error)
	GetSessions(ctx context.Context) ([]store.SessionRecord, error)
}

// LoadSnapshot assembles and validates an immutable catalog snapshot. The
// engine operates only on snapshots produced here; a corrupt source fails the
// load instead of leaking into analytics results.
func LoadSnapshot(ctx context.Context, s Store) (domain.Catalog, error) {
	clients, err := s.GetClients(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load clients: %w", err)
	}
	programs, err := s.GetPrograms(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load programs: %w", err)
	}
	sessions, err := s.GetSessions(ctx)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load sessions: %w", err)
	}

	snapshot := adapters.AssembleCatalog(clients, programs, sessions)
	if err := Validate(snapshot); err != nil {
		return domain.Catalog{}, err
	}
	return snapshot, nil
}

// Validate checks the structural integrity of a catalog: unique identifiers,
// resolvable client references, and non-negative trial counts.
func Validate(catalog domain.Catalog) error {
	clientIDs := make(map[string]struct{}, len(catalog.Clients))
	for _, client := range catalog.Clients {
		if client.ID == "" {
			return domain.ValidationError{Field: "client.id", Reason: "empty identifier"}
		}
		if _, dup := clientIDs[client.ID]; dup {
			return domain.ValidationError{
				Field:  "client.id",
				Reason: fmt.Sprintf("duplicate identifier %q", client.ID),
			}
		}
		clientIDs[client.ID] = struct{}{}
	}

	programIDs := make(map[string]struct{}, len(catalog.Programs))
	for _, program := range catalog.Programs {
		if program.ID == "" {
			return domain.ValidationError{Field: "program.id", Reason: "empty identifier"}
		}
		if _, dup := programIDs[program.ID]; dup {
			return domain.ValidationError{
				Field:  "program.id",
				Reason: fmt.Sprintf("duplicate identifier %q", program.ID),
			}
		}
		programIDs[program.ID] = struct{}{}

		if _, ok := clientIDs[program.ClientID]; !ok {
			return domain.DataIntegrityError{ProgramID: program.ID, ClientID: program.ClientID}
		}
		if program.MasteryRate < 0 || program.MasteryRate > 100 {
			return domain.ValidationError{
				Field:  "program.masteryRate",
				Reason: fmt.Sprintf("%q outside [0, 100]", program.ID),
			}
		}
		for _, session := range program.Sessions {
			if session.Correct < 0 || session.Incorrect < 0 {
				return domain.ValidationError{
					Field:  "session",
					Reason: fmt.Sprintf("negative trial count in program %q", program.ID),
				}
			}
			if session.Date.IsZero() {
				return domain.ValidationError{
					Field:  "session.date",
					Reason: fmt.Sprintf("missing date in program %q", program.ID),
				}
			}
		}
	}

	return nil
}
