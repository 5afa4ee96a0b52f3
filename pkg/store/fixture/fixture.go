package fixture

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clearpath-aba/clearpath/pkg/adapters"
	"github.com/clearpath-aba/clearpath/pkg/models/api"
	"github.com/clearpath-aba/clearpath/pkg/models/domain"
)

// Load reads a catalog fixture file. The file format mirrors the dashboard
// wire shapes: clients plus programs with embedded sessions, dates in ISO
// form. Structural validation is the caller's concern (services/catalog).
func Load(path string) (domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog fixture: %w", err)
	}

	var catalog api.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return domain.Catalog{}, fmt.Errorf("parse catalog fixture %q: %w", path, err)
	}

	result, err := adapters.MapCatalogApiToDomain(catalog)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog fixture %q: %w", path, err)
	}
	return result, nil
}
