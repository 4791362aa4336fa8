package response

import (
	"time"

	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/domain/lifecycle"
	"distribuidora_xpto/internal/usecase"
)

// DocumentSummaryResponse is the canonical post-transition state as reported
// by the store.
type DocumentSummaryResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDocumentSummary(s entities.DocumentSummary) DocumentSummaryResponse {
	return DocumentSummaryResponse{
		ID:        s.ID,
		Kind:      string(s.Kind),
		Status:    string(s.Status),
		UpdatedAt: s.UpdatedAt,
	}
}

type BatchSummaryResponse struct {
	AppliedIDs []string `json:"applied_ids"`
	SkippedIDs []string `json:"skipped_ids"`
	FailedIDs  []string `json:"failed_ids"`
}

func FromBatchSummary(s usecase.BatchSummary) BatchSummaryResponse {
	return BatchSummaryResponse{
		AppliedIDs: s.AppliedIDs,
		SkippedIDs: s.SkippedIDs,
		FailedIDs:  s.FailedIDs,
	}
}

type ProposalResponse struct {
	Allowed              bool   `json:"allowed"`
	Reason               string `json:"reason,omitempty"`
	RequiresConfirmation bool   `json:"requires_confirmation"`
	Impact               string `json:"impact,omitempty"`
}

func FromProposal(p lifecycle.Proposal) ProposalResponse {
	return ProposalResponse{
		Allowed:              p.Allowed,
		Reason:               p.Reason,
		RequiresConfirmation: p.RequiresConfirmation,
		Impact:               p.Impact,
	}
}

type CheckIDResponse struct {
	CandidateID string `json:"candidate_id"`
	Unique      bool   `json:"unique"`
}

type SelectionResponse struct {
	SessionID string   `json:"session_id"`
	IDs       []string `json:"ids"`
	Count     int      `json:"count"`
}
