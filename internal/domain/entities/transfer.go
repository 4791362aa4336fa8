package entities

import "time"

// Transfer is an inter-branch stock movement persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle: PENDING -> {COMPLETED, CANCELLED}; both terminal.
//
// FromBranchID and ToBranchID must differ; the creation flow enforces that,
// the transition engine never revisits it. Quantity is a positive integer and
// is never touched by transitions (no inventory arithmetic here).
type Transfer struct {
	ID           string             `json:"id"`
	FromBranchID string             `json:"from_branch_id"`
	ToBranchID   string             `json:"to_branch_id"`
	ProductRef   string             `json:"product_ref"`
	Quantity     int                `json:"quantity"`
	Remark       string             `json:"remark,omitempty"`
	Status       Status             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	CreatedBy    string             `json:"created_by"`
	UpdatedAt    time.Time          `json:"updated_at"`
	History      []TransitionRecord `json:"history,omitempty"`
}

func (t Transfer) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        t.ID,
		Kind:      DocumentKindTransfer,
		Status:    t.Status,
		UpdatedAt: t.UpdatedAt,
	}
}
