package service

import "fmt"

// CatalogEntry is the descriptive data known about a part number.
// Brands and Analogs are in canonical order.
type CatalogEntry struct {
	PartNumber  string
	Name        string
	Description string
	Brands      []string
	Analogs     []string
}

// Catalog resolves descriptive part data. Lookup never fails.
type Catalog interface {
	Lookup(partNumber string) CatalogEntry
}

// ReferenceCatalog serves a fixed table and synthesizes generic entries for unknown parts.
type ReferenceCatalog struct {
	entries map[string]CatalogEntry
}

func NewReferenceCatalog(entries ...CatalogEntry) *ReferenceCatalog {
	c := &ReferenceCatalog{entries: make(map[string]CatalogEntry, len(entries))}
	for _, e := range entries {
		c.entries[e.PartNumber] = e
	}
	return c
}

// DefaultCatalog holds the reference parts the service knows by name.
func DefaultCatalog() *ReferenceCatalog {
	return NewReferenceCatalog(
		CatalogEntry{
			PartNumber:  "BP-12345-67890",
			Name:        "Подшипник радиальный шариковый 6205",
			Description: "Подшипник шариковый радиальный 6205, 25x52x15мм",
			Brands:      []string{"SKF", "FAG", "NSK"},
			Analogs:     []string{"BP-12345-67891", "BP-12345-67892", "BP-6205-2RS"},
		},
		CatalogEntry{
			PartNumber:  "MC-54321-09876",
			Name:        "Муфта упругая втулочно-пальцевая",
			Description: "Муфта упругая втулочно-пальцевая МУВП-45",
			Brands:      []string{"Siemens", "Rexnord", "Dodge"},
			Analogs:     []string{"MC-54321-09877", "MC-54321-09878", "MC-MUVP-45"},
		},
	)
}

// Lookup returns a copy so callers cannot mutate the table.
func (c *ReferenceCatalog) Lookup(partNumber string) CatalogEntry {
	if e, ok := c.entries[partNumber]; ok {
		return CatalogEntry{
			PartNumber:  e.PartNumber,
			Name:        e.Name,
			Description: e.Description,
			Brands:      append([]string(nil), e.Brands...),
			Analogs:     append([]string(nil), e.Analogs...),
		}
	}
	return CatalogEntry{
		PartNumber:  partNumber,
		Name:        fmt.Sprintf("Промышленная запчасть %s", partNumber),
		Description: fmt.Sprintf("Запчасть для промышленного оборудования %s", partNumber),
		Brands:      []string{"Generic", "Standard"},
		Analogs:     []string{partNumber + "-A", partNumber + "-B"},
	}
}
