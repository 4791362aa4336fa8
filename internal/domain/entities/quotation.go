package entities

import (
	"encoding/json"
	"time"
)

// Quotation is a sales quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle: DRAFT -> SENT -> {ACCEPTED, REJECTED}, ACCEPTED -> CONVERTED,
// any non-terminal state -> CANCELLED. CONVERTED and CANCELLED are terminal.
//
// Monetary representation:
//   - Total is read-only to the transition engine; pricing is computed by the
//     sales flow that creates the quotation.
//   - LineItems is kept opaque (raw JSON) for the same reason.
type Quotation struct {
	ID          string             `json:"id"`
	CustomerRef string             `json:"customer_ref"`
	ValidUntil  time.Time          `json:"valid_until"`
	Total       float64            `json:"total"`
	LineItems   json.RawMessage    `json:"line_items,omitempty"`
	Status      Status             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	CreatedBy   string             `json:"created_by"`
	UpdatedAt   time.Time          `json:"updated_at"`
	History     []TransitionRecord `json:"history,omitempty"`
}

func (q Quotation) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        q.ID,
		Kind:      DocumentKindQuotation,
		Status:    q.Status,
		UpdatedAt: q.UpdatedAt,
	}
}
