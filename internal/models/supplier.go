package models

// SupplierCode is the stable identifier of a supplier used in storage and reports.
type SupplierCode string

const (
	SupplierIndustrialSupply SupplierCode = "industrialsupply"
	SupplierMachineParts     SupplierCode = "machineparts"
	SupplierFactoryStock     SupplierCode = "factorystock"
)

// Supplier describes one registered supplier and the chat tags that select it.
type Supplier struct {
	Code    SupplierCode `db:"code"`
	Name    string       `db:"name"`
	Website string       `db:"website"`
	Aliases []string     // tag aliases without the leading "!"
}

// SupplierRegistry is the read-only table of known suppliers.
// Iteration order is registration order.
type SupplierRegistry struct {
	suppliers []Supplier
	byCode    map[SupplierCode]int
}

// NewSupplierRegistry builds a registry; later duplicates of a code are ignored.
func NewSupplierRegistry(suppliers ...Supplier) *SupplierRegistry {
	r := &SupplierRegistry{
		suppliers: make([]Supplier, 0, len(suppliers)),
		byCode:    make(map[SupplierCode]int, len(suppliers)),
	}
	for _, s := range suppliers {
		if _, exists := r.byCode[s.Code]; exists {
			continue
		}
		aliases := make([]string, len(s.Aliases))
		copy(aliases, s.Aliases)
		s.Aliases = aliases
		r.byCode[s.Code] = len(r.suppliers)
		r.suppliers = append(r.suppliers, s)
	}
	return r
}

// DefaultSupplierRegistry returns the three suppliers the service ships with.
func DefaultSupplierRegistry() *SupplierRegistry {
	return NewSupplierRegistry(
		Supplier{
			Code:    SupplierIndustrialSupply,
			Name:    "IndustrialSupply.ru",
			Website: "https://industrialsupply.ru",
			Aliases: []string{"industrialsupply", "isup"},
		},
		Supplier{
			Code:    SupplierMachineParts,
			Name:    "MachineParts.com",
			Website: "https://machineparts.com",
			Aliases: []string{"machineparts", "mp"},
		},
		Supplier{
			Code:    SupplierFactoryStock,
			Name:    "FactoryStock.eu",
			Website: "https://factorystock.eu",
			Aliases: []string{"factorystock", "fs"},
		},
	)
}

// All returns a copy of the registered suppliers in registration order.
func (r *SupplierRegistry) All() []Supplier {
	out := make([]Supplier, len(r.suppliers))
	for i, s := range r.suppliers {
		s.Aliases = append([]string(nil), s.Aliases...)
		out[i] = s
	}
	return out
}

// Codes returns every registered code in registration order.
func (r *SupplierRegistry) Codes() []SupplierCode {
	codes := make([]SupplierCode, len(r.suppliers))
	for i, s := range r.suppliers {
		codes[i] = s.Code
	}
	return codes
}

func (r *SupplierRegistry) Get(code SupplierCode) (Supplier, bool) {
	idx, ok := r.byCode[code]
	if !ok {
		return Supplier{}, false
	}
	return r.suppliers[idx], true
}

// DisplayName falls back to the raw code for unknown suppliers.
func (r *SupplierRegistry) DisplayName(code SupplierCode) string {
	if s, ok := r.Get(code); ok {
		return s.Name
	}
	return string(code)
}

// Names maps codes to display names, keeping the given order.
func (r *SupplierRegistry) Names(codes []SupplierCode) []string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = r.DisplayName(c)
	}
	return names
}
