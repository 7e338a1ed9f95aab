package casedef

import (
	"fmt"
	"slices"
	"sync"
)

// registry holds the validated case catalog, seeded by init() in seed.go
// and extended at runtime by Register.
var (
	regMu    sync.RWMutex
	registry map[string]*CaseDefinition
)

// buildRegistry validates and indexes a set of case definitions.
func buildRegistry(cases []*CaseDefinition) (map[string]*CaseDefinition, error) {
	byID := make(map[string]*CaseDefinition, len(cases))
	for _, c := range cases {
		if err := Validate(c); err != nil {
			return nil, err
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case ID: %q", c.ID)
		}
		byID[c.ID] = c
	}
	return byID, nil
}

// Register validates a case definition and adds it to the catalog.
// Registering an ID that already exists is an error.
func Register(c *CaseDefinition) error {
	if err := Validate(c); err != nil {
		return err
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[c.ID]; dup {
		return fmt.Errorf("duplicate case ID: %q", c.ID)
	}
	registry[c.ID] = c
	return nil
}

// Get returns a case definition by ID, or an error if not found.
func Get(id string) (*CaseDefinition, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("case not found: %q", id)
	}
	return c, nil
}

// All returns every registered case, ordered by ID.
func All() []*CaseDefinition {
	regMu.RLock()
	defer regMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	cases := make([]*CaseDefinition, 0, len(ids))
	for _, id := range ids {
		cases = append(cases, registry[id])
	}
	return cases
}

// IDs returns the registered case IDs in sorted order.
func IDs() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
