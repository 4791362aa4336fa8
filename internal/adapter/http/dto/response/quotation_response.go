package response

import (
	"encoding/json"
	"time"

	"distribuidora_xpto/internal/domain/entities"
)

type TransitionRecordResponse struct {
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	At        time.Time `json:"at"`
}

func fromHistory(history []entities.TransitionRecord) []TransitionRecordResponse {
	if len(history) == 0 {
		return nil
	}
	out := make([]TransitionRecordResponse, 0, len(history))
	for _, rec := range history {
		out = append(out, TransitionRecordResponse{
			ActorID:   rec.ActorID,
			ActorRole: rec.ActorRole,
			From:      string(rec.From),
			To:        string(rec.To),
			At:        rec.At,
		})
	}
	return out
}

type QuotationResponse struct {
	ID          string                     `json:"id"`
	CustomerRef string                     `json:"customer_ref"`
	ValidUntil  time.Time                  `json:"valid_until"`
	Total       float64                    `json:"total"`
	LineItems   json.RawMessage            `json:"line_items,omitempty"`
	Status      string                     `json:"status"`
	CreatedAt   time.Time                  `json:"created_at"`
	CreatedBy   string                     `json:"created_by"`
	UpdatedAt   time.Time                  `json:"updated_at"`
	History     []TransitionRecordResponse `json:"history,omitempty"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	return QuotationResponse{
		ID:          q.ID,
		CustomerRef: q.CustomerRef,
		ValidUntil:  q.ValidUntil,
		Total:       q.Total,
		LineItems:   q.LineItems,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		CreatedBy:   q.CreatedBy,
		UpdatedAt:   q.UpdatedAt,
		History:     fromHistory(q.History),
	}
}

func FromQuotations(items []entities.Quotation) []QuotationResponse {
	out := make([]QuotationResponse, 0, len(items))
	for _, q := range items {
		out = append(out, FromQuotation(q))
	}
	return out
}
