package models

import (
	"time"

	"github.com/google/uuid"
)

// Requester identifies the chat user behind a search.
type Requester struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}

// SearchQuery is the parsed form of one incoming chat message.
type SearchQuery struct {
	RawText     string
	PartNumbers []string
	Suppliers   []SupplierCode
}

// SearchRequest is the audit entry written after every completed search.
type SearchRequest struct {
	ID           uuid.UUID      `db:"id"`
	UserID       int64          `db:"user_id"`
	Username     string         `db:"username"`
	PartNumbers  []string       `db:"part_numbers"`
	Suppliers    []SupplierCode `db:"suppliers"`
	ResultsCount int            `db:"results_count"`
	CreatedAt    time.Time      `db:"created_at"`
}

// PriceHistoryEntry is one stored quote joined with its supplier name.
type PriceHistoryEntry struct {
	PartNumber   string       `db:"part_number"`
	Supplier     SupplierCode `db:"supplier_code"`
	SupplierName string       `db:"supplier_name"`
	Brand        string       `db:"brand"`
	Price        int64        `db:"price"`
	DeliveryDays int          `db:"delivery_days"`
	Currency     string       `db:"currency"`
	FoundAt      time.Time    `db:"found_at"`
}
