package service

import (
	"regexp"
	"strings"

	"parts-analyzer/internal/models"
)

// tagToken matches any "!word" token; all of them are removed from the part list.
var tagToken = regexp.MustCompile(`![a-zA-Z]+`)

// ParameterExtractor turns a chat message into part numbers and a supplier selection.
type ParameterExtractor struct {
	registry *models.SupplierRegistry
	patterns []supplierPattern
}

type supplierPattern struct {
	code models.SupplierCode
	re   *regexp.Regexp
}

func NewParameterExtractor(registry *models.SupplierRegistry) *ParameterExtractor {
	e := &ParameterExtractor{registry: registry}
	for _, s := range registry.All() {
		if len(s.Aliases) == 0 {
			continue
		}
		alts := make([]string, len(s.Aliases))
		for i, a := range s.Aliases {
			alts[i] = "!" + regexp.QuoteMeta(a)
		}
		e.patterns = append(e.patterns, supplierPattern{
			code: s.Code,
			re:   regexp.MustCompile(`(?i)` + strings.Join(alts, "|")),
		})
	}
	return e
}

// Extract returns part numbers in input order (upper-cased, not deduplicated)
// and the tagged suppliers in registry order. Without tags every supplier is selected.
func (e *ParameterExtractor) Extract(rawText string) ([]string, []models.SupplierCode) {
	var suppliers []models.SupplierCode
	for _, p := range e.patterns {
		if p.re.MatchString(rawText) {
			suppliers = append(suppliers, p.code)
		}
	}
	if len(suppliers) == 0 {
		suppliers = e.registry.Codes()
	}

	cleaned := tagToken.ReplaceAllString(rawText, "")
	partNumbers := []string{}
	for _, segment := range strings.Split(cleaned, ",") {
		pn := strings.ToUpper(strings.TrimSpace(segment))
		if pn == "" {
			continue
		}
		partNumbers = append(partNumbers, pn)
	}

	return partNumbers, suppliers
}

// Parse wraps Extract into a request-scoped query.
func (e *ParameterExtractor) Parse(rawText string) models.SearchQuery {
	partNumbers, suppliers := e.Extract(rawText)
	return models.SearchQuery{
		RawText:     rawText,
		PartNumbers: partNumbers,
		Suppliers:   suppliers,
	}
}
