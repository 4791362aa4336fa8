package request

import (
	"strings"

	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/domain/lifecycle"
)

// TransitionRequest asks for one document's status change.
//
// Confirmed is the second half of the two-phase contract: destructive
// transitions are first proposed, then committed with confirmed=true.
type TransitionRequest struct {
	Status    string `json:"status" binding:"required"`
	ActorID   string `json:"actor_id" binding:"required"`
	ActorRole string `json:"actor_role" binding:"required"`
	Confirmed bool   `json:"confirmed"`
}

func (r TransitionRequest) ResolveStatus() entities.Status {
	return entities.Status(strings.ToUpper(strings.TrimSpace(r.Status)))
}

func (r TransitionRequest) Actor() lifecycle.Actor {
	return lifecycle.Actor{
		ID:   strings.TrimSpace(r.ActorID),
		Role: strings.TrimSpace(r.ActorRole),
	}
}

// BatchTransitionRequest asks for one status change over a selection of
// documents. SessionID ties the batch to a selection set so applied ids can
// be cleared from it.
type BatchTransitionRequest struct {
	IDs       []string `json:"ids" binding:"required"`
	Status    string   `json:"status" binding:"required"`
	ActorID   string   `json:"actor_id" binding:"required"`
	ActorRole string   `json:"actor_role" binding:"required"`
	Confirmed bool     `json:"confirmed"`
	SessionID string   `json:"session_id"`
}

func (r BatchTransitionRequest) ResolveStatus() entities.Status {
	return entities.Status(strings.ToUpper(strings.TrimSpace(r.Status)))
}

func (r BatchTransitionRequest) Actor() lifecycle.Actor {
	return lifecycle.Actor{
		ID:   strings.TrimSpace(r.ActorID),
		Role: strings.TrimSpace(r.ActorRole),
	}
}

// CheckIDRequest is the advisory uniqueness pre-check payload. CandidateID is
// matched exactly as sent, no trimming or case folding.
type CheckIDRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
	ExcludeID   string `json:"exclude_id"`
}
