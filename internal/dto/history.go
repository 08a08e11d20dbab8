package dto

type HistoryEntryResponse struct {
	Supplier     string `json:"supplier"`
	SupplierName string `json:"supplier_name"`
	Brand        string `json:"brand"`
	Price        int64  `json:"price"`
	DeliveryDays int    `json:"delivery_days"`
	Currency     string `json:"currency"`
	FoundAt      string `json:"found_at"`
}

type HistoryDayResponse struct {
	Date    string                 `json:"date"`
	Entries []HistoryEntryResponse `json:"entries"`
}

type HistoryResponse struct {
	PartNumber string               `json:"part_number"`
	Days       int                  `json:"days"`
	History    []HistoryDayResponse `json:"history"`
}
