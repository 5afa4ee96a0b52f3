package analytics

import (
	"sort"

	"github.com/clearpath-aba/clearpath/pkg/models/domain"
)

// ListFilterOptions derives the distinct selectable values for every filter
// dimension from a single catalog scan. It depends only on the catalog, never
// on the active filters, so callers recompute it only when the catalog
// changes. An empty catalog yields empty option sets.
func ListFilterOptions(catalog domain.Catalog) domain.FilterOptions {
	domains := domain.StringSet{}
	statuses := domain.StringSet{}
	therapists := domain.StringSet{}
	bcbas := domain.StringSet{}
	promptLevels := domain.StringSet{}
	tierLevels := domain.StringSet{}

	add := func(set domain.StringSet, value string) {
		if value != "" {
			set[value] = struct{}{}
		}
	}

	for _, program := range catalog.Programs {
		add(domains, program.Domain)
		add(statuses, program.Status)
		add(bcbas, program.BCBAOwner)
		add(promptLevels, program.PromptLevel)
		add(tierLevels, program.TierLevel)
		for _, session := range program.Sessions {
			add(therapists, session.Therapist)
		}
	}

	// Lead BCBAs are filterable alongside program owners, so they belong in
	// the option list too.
	for _, client := range catalog.Clients {
		add(bcbas, client.LeadBCBA)
	}

	return domain.FilterOptions{
		Clients:      ListClients(catalog),
		Domains:      domains.Values(),
		Statuses:     statuses.Values(),
		Therapists:   therapists.Values(),
		BCBAs:        bcbas.Values(),
		PromptLevels: promptLevels.Values(),
		TierLevels:   tierLevels.Values(),
	}
}

// ListClients returns the selectable clients sorted by display name.
func ListClients(catalog domain.Catalog) []domain.ClientOption {
	clients := make([]domain.Client, len(catalog.Clients))
	copy(clients, catalog.Clients)
	sort.SliceStable(clients, func(i, j int) bool {
		if clients[i].Name != clients[j].Name {
			return clients[i].Name < clients[j].Name
		}
		return clients[i].ID < clients[j].ID
	})

	options := make([]domain.ClientOption, 0, len(clients))
	for _, client := range clients {
		options = append(options, domain.ClientOption{ID: client.ID, Label: client.Name})
	}
	return options
}
