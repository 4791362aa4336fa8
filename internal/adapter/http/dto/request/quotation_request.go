package request

import (
	"encoding/json"
	"time"

	"distribuidora_xpto/internal/usecase"
)

// QuotationCreateRequest is the creation payload for a sales quote. ID is
// optional; leaving it empty lets the server assign one.
type QuotationCreateRequest struct {
	ID          string          `json:"id"`
	CustomerRef string          `json:"customer_ref" binding:"required"`
	ValidUntil  time.Time       `json:"valid_until" binding:"required"`
	Total       float64         `json:"total" binding:"required"`
	LineItems   json.RawMessage `json:"line_items"`
	ActorID     string          `json:"actor_id" binding:"required"`
	ActorRole   string          `json:"actor_role" binding:"required"`
}

func (r QuotationCreateRequest) ToInput() usecase.CreateQuotationInput {
	return usecase.CreateQuotationInput{
		ID:          r.ID,
		CustomerRef: r.CustomerRef,
		ValidUntil:  r.ValidUntil,
		Total:       r.Total,
		LineItems:   r.LineItems,
		ActorID:     r.ActorID,
		ActorRole:   r.ActorRole,
	}
}
