package models

// PriceHistoryDay groups the history entries found on one calendar day.
type PriceHistoryDay struct {
	Date    string              `json:"date"`
	Entries []PriceHistoryEntry `json:"entries"`
}
