package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/KlayvemGuimaraes/carrer-path-ai/internal/model"

	_ "embed"
)

// The catalog ships inside the binary so the service has no runtime
// dependency on a data file or an external store.
//
//go:embed certifications.json
var rawCatalog []byte

var validLevels = map[string]bool{
	model.LevelBeginner:     true,
	model.LevelIntermediate: true,
	model.LevelAdvanced:     true,
}

// Catalog holds the loaded certification records. It is immutable
// after Load and safe to share across requests by reference.
type Catalog struct {
	certs []model.Certification
}

// Load parses and validates the embedded catalog. It is intended to
// run once at process start; a broken catalog is a build defect, so
// any validation failure is returned as a hard error.
func Load() (*Catalog, error) {
	var certs []model.Certification
	if err := json.Unmarshal(rawCatalog, &certs); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(certs))
	for i, c := range certs {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog entry %d: missing id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("catalog entry %q: duplicate id", c.ID)
		}
		seen[c.ID] = true
		if c.Name == "" || c.Provider == "" {
			return nil, fmt.Errorf("catalog entry %q: missing name or provider", c.ID)
		}
		if !validLevels[c.Level] {
			return nil, fmt.Errorf("catalog entry %q: invalid level %q", c.ID, c.Level)
		}
		if c.DurationHours != nil && *c.DurationHours <= 0 {
			return nil, fmt.Errorf("catalog entry %q: durationHours must be positive", c.ID)
		}
		if c.EstimatedCostUSD != nil && *c.EstimatedCostUSD < 0 {
			return nil, fmt.Errorf("catalog entry %q: estimatedCostUSD must not be negative", c.ID)
		}
	}
	for _, c := range certs {
		for _, p := range c.Prerequisites {
			if !seen[p] {
				return nil, fmt.Errorf("catalog entry %q: unknown prerequisite %q", c.ID, p)
			}
		}
	}

	return &Catalog{certs: certs}, nil
}

// New wraps an already validated record list. Load is the normal
// entry point; New exists for callers that bring their own records.
func New(certs []model.Certification) *Catalog {
	return &Catalog{certs: certs}
}

// Certifications returns the records in catalog order. Callers must
// not mutate the returned slice or its entries.
func (c *Catalog) Certifications() []model.Certification {
	return c.certs
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.certs)
}
