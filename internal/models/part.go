package models

import "time"

// Quote is one brand offer from a supplier. Prices are whole currency units.
type Quote struct {
	Brand        string `json:"brand"`
	Price        int64  `json:"price"`
	DeliveryDays int    `json:"delivery_days"`
}

// SupplierQuotes holds the quotes one supplier returned for a part.
type SupplierQuotes struct {
	Supplier SupplierCode `json:"supplier"`
	Quotes   []Quote      `json:"quotes"`
}

// PartRecord is the aggregate built for one part number during a search.
// Quotes keeps the order in which suppliers were requested.
type PartRecord struct {
	PartNumber  string           `db:"part_number"`
	Name        string           `db:"name"`
	Description string           `db:"description"`
	Brands      []string         `db:"brands"`
	Analogs     []string         `db:"analogs"`
	Quotes      []SupplierQuotes `db:"-"`
	CreatedAt   time.Time        `db:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

// QuoteCount is the number of quotes across all suppliers.
func (p *PartRecord) QuoteCount() int {
	n := 0
	for _, sq := range p.Quotes {
		n += len(sq.Quotes)
	}
	return n
}
