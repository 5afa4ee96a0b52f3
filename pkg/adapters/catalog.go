package adapters

import (
	"fmt"
	"slices"
	"sort"

	"github.com/clearpath-aba/clearpath/pkg/models/api"
	"github.com/clearpath-aba/clearpath/pkg/models/domain"
	"github.com/clearpath-aba/clearpath/pkg/models/store"
)

func MapClientStoreToDomain(record store.ClientRecord) domain.Client {
	return domain.Client{
		ID:       record.ID,
		Name:     record.Name,
		LeadBCBA: record.LeadBCBA,
	}
}

func MapProgramStoreToDomain(record store.ProgramRecord) domain.Program {
	return domain.Program{
		ID:           record.ID,
		ClientID:     record.ClientID,
		Name:         record.Name,
		Domain:       record.Domain,
		Status:       record.Status,
		CurrentPhase: record.CurrentPhase,
		TierLevel:    record.TierLevel,
		BCBAOwner:    record.BCBAOwner,
		PromptLevel:  record.PromptLevel,
		TargetSkills: slices.Clone(record.TargetSkills),
		Notes:        record.Notes,
		MasteryRate:  record.MasteryRate,
	}
}

func MapSessionStoreToDomain(record store.SessionRecord) domain.Session {
	return domain.Session{
		Date:      domain.DateOf(record.Date),
		Correct:   record.Correct,
		Incorrect: record.Incorrect,
		Therapist: record.Therapist,
		Location:  record.Location,
	}
}

func MapDomainProgramToStore(program domain.Program, position int) store.ProgramRecord {
	return store.ProgramRecord{
		ID:           program.ID,
		ClientID:     program.ClientID,
		Name:         program.Name,
		Domain:       program.Domain,
		Status:       program.Status,
		CurrentPhase: program.CurrentPhase,
		TierLevel:    program.TierLevel,
		BCBAOwner:    program.BCBAOwner,
		PromptLevel:  program.PromptLevel,
		TargetSkills: slices.Clone(program.TargetSkills),
		Notes:        program.Notes,
		MasteryRate:  program.MasteryRate,
		Position:     position,
	}
}

func MapDomainClientToStore(client domain.Client) store.ClientRecord {
	return store.ClientRecord{
		ID:       client.ID,
		Name:     client.Name,
		LeadBCBA: client.LeadBCBA,
	}
}

func MapDomainSessionToStore(programID string, seq int, session domain.Session) store.SessionRecord {
	return store.SessionRecord{
		ProgramID: programID,
		Seq:       seq,
		Date:      session.Date.Time(),
		Correct:   session.Correct,
		Incorrect: session.Incorrect,
		Therapist: session.Therapist,
		Location:  session.Location,
	}
}

// AssembleCatalog joins flat store records into a domain Catalog, attaching
// sessions to their programs in insertion order and restoring the original
// program ordering.
func AssembleCatalog(
	clients []store.ClientRecord,
	programs []store.ProgramRecord,
	sessions []store.SessionRecord,
) domain.Catalog {
	catalog := domain.Catalog{
		Clients:  make([]domain.Client, 0, len(clients)),
		Programs: make([]domain.Program, 0, len(programs)),
	}

	for _, c := range clients {
		catalog.Clients = append(catalog.Clients, MapClientStoreToDomain(c))
	}

	sessionsByProgram := make(map[string][]store.SessionRecord, len(programs))
	for _, s := range sessions {
		sessionsByProgram[s.ProgramID] = append(sessionsByProgram[s.ProgramID], s)
	}

	ordered := slices.Clone(programs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	for _, p := range ordered {
		program := MapProgramStoreToDomain(p)
		records := sessionsByProgram[p.ID]
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Seq < records[j].Seq
		})
		for _, s := range records {
			program.Sessions = append(program.Sessions, MapSessionStoreToDomain(s))
		}
		catalog.Programs = append(catalog.Programs, program)
	}

	return catalog
}

func MapCatalogApiToDomain(catalog api.Catalog) (domain.Catalog, error) {
	result := domain.Catalog{
		Clients:  make([]domain.Client, 0, len(catalog.Clients)),
		Programs: make([]domain.Program, 0, len(catalog.Programs)),
	}

	for _, c := range catalog.Clients {
		result.Clients = append(result.Clients, domain.Client{
			ID:       c.ID,
			Name:     c.Name,
			LeadBCBA: c.LeadBCBA,
		})
	}

	for _, p := range catalog.Programs {
		program := domain.Program{
			ID:           p.ID,
			ClientID:     p.ClientID,
			Name:         p.Name,
			Domain:       p.Domain,
			Status:       p.Status,
			CurrentPhase: p.CurrentPhase,
			TierLevel:    p.TierLevel,
			BCBAOwner:    p.BCBAOwner,
			PromptLevel:  p.PromptLevel,
			TargetSkills: slices.Clone(p.TargetSkills),
			Notes:        p.Notes,
			MasteryRate:  p.MasteryRate,
		}
		for _, s := range p.Sessions {
			date, err := domain.ParseDate(s.Date)
			if err != nil {
				return domain.Catalog{}, fmt.Errorf("program %q: %w", p.ID, err)
			}
			program.Sessions = append(program.Sessions, domain.Session{
				Date:      date,
				Correct:   s.Correct,
				Incorrect: s.Incorrect,
				Therapist: s.Therapist,
				Location:  s.Location,
			})
		}
		result.Programs = append(result.Programs, program)
	}

	return result, nil
}
