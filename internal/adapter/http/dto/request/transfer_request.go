package request

import "distribuidora_xpto/internal/usecase"

// TransferCreateRequest is the creation payload for a stock transfer.
type TransferCreateRequest struct {
	ID           string `json:"id"`
	FromBranchID string `json:"from_branch_id" binding:"required"`
	ToBranchID   string `json:"to_branch_id" binding:"required"`
	ProductRef   string `json:"product_ref" binding:"required"`
	Quantity     int    `json:"quantity" binding:"required"`
	Remark       string `json:"remark"`
	ActorID      string `json:"actor_id" binding:"required"`
	ActorRole    string `json:"actor_role" binding:"required"`
}

func (r TransferCreateRequest) ToInput() usecase.CreateTransferInput {
	return usecase.CreateTransferInput{
		ID:           r.ID,
		FromBranchID: r.FromBranchID,
		ToBranchID:   r.ToBranchID,
		ProductRef:   r.ProductRef,
		Quantity:     r.Quantity,
		Remark:       r.Remark,
		ActorID:      r.ActorID,
		ActorRole:    r.ActorRole,
	}
}
