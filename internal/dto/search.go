package dto

import "parts-analyzer/internal/models"

type SearchRequest struct {
	Text string `json:"text"`
}

type SupplierResponse struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Website string   `json:"website"`
	Tags    []string `json:"tags"`
}

type SearchResponse struct {
	RequestID      string                  `json:"request_id"`
	PartNumbers    []string                `json:"part_numbers"`
	Suppliers      []SupplierResponse      `json:"suppliers"`
	ReportURL      string                  `json:"report_url"`
	PartialFailure bool                    `json:"partial_failure"`
	Analyses       []*models.PriceAnalysis `json:"analyses"`
	Summaries      []models.PartSummary    `json:"summaries"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
