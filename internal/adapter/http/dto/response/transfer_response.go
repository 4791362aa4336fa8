package response

import (
	"time"

	"distribuidora_xpto/internal/domain/entities"
)

type TransferResponse struct {
	ID           string                     `json:"id"`
	FromBranchID string                     `json:"from_branch_id"`
	ToBranchID   string                     `json:"to_branch_id"`
	ProductRef   string                     `json:"product_ref"`
	Quantity     int                        `json:"quantity"`
	Remark       string                     `json:"remark,omitempty"`
	Status       string                     `json:"status"`
	CreatedAt    time.Time                  `json:"created_at"`
	CreatedBy    string                     `json:"created_by"`
	UpdatedAt    time.Time                  `json:"updated_at"`
	History      []TransitionRecordResponse `json:"history,omitempty"`
}

func FromTransfer(tr entities.Transfer) TransferResponse {
	return TransferResponse{
		ID:           tr.ID,
		FromBranchID: tr.FromBranchID,
		ToBranchID:   tr.ToBranchID,
		ProductRef:   tr.ProductRef,
		Quantity:     tr.Quantity,
		Remark:       tr.Remark,
		Status:       string(tr.Status),
		CreatedAt:    tr.CreatedAt,
		CreatedBy:    tr.CreatedBy,
		UpdatedAt:    tr.UpdatedAt,
		History:      fromHistory(tr.History),
	}
}

func FromTransfers(items []entities.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(items))
	for _, tr := range items {
		out = append(out, FromTransfer(tr))
	}
	return out
}
