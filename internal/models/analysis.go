package models

import "github.com/shopspring/decimal"

// Availability is the stock status reported for an analog part.
type Availability string

const (
	AvailabilityInStock Availability = "in stock"
	AvailabilityOnOrder Availability = "on order"
)

// RankedQuote is a quote tagged with the supplier it came from.
type RankedQuote struct {
	Quote
	Supplier     SupplierCode `json:"supplier"`
	SupplierName string       `json:"supplier_name"`
}

type AnalogEstimate struct {
	PartNumber     string          `json:"part_number"`
	EstimatedPrice decimal.Decimal `json:"estimated_price"`
	Availability   Availability    `json:"availability"`
}

// PriceAnalysis is a derived view over a PartRecord; it is never stored.
type PriceAnalysis struct {
	PartNumber      string           `json:"part_number"`
	Name            string           `json:"name"`
	Brands          []string         `json:"brands"`
	MinQuote        RankedQuote      `json:"min_price"`
	MedianQuote     RankedQuote      `json:"median_price"`
	AllQuotes       []RankedQuote    `json:"all_prices"`
	AnalogEstimates []AnalogEstimate `json:"analogs"`
}

// PartSummary is the natural-language commentary produced for one analysis.
type PartSummary struct {
	PartNumber string `json:"part_number"`
	Text       string `json:"analysis"`
	Fallback   bool   `json:"fallback"`
}
