package request

import (
	"testing"

	"distribuidora_xpto/internal/domain/entities"
)

func TestTransitionRequest_ResolveStatus(t *testing.T) {
	r := TransitionRequest{Status: "  sent "}
	if got := r.ResolveStatus(); got != entities.Status("SENT") {
		t.Fatalf("expected SENT, got %q", got)
	}

	r2 := TransitionRequest{Status: "CANCELLED"}
	if got := r2.ResolveStatus(); got != entities.QuotationStatusCancelled {
		t.Fatalf("expected CANCELLED, got %q", got)
	}
}

func TestTransitionRequest_Actor(t *testing.T) {
	r := TransitionRequest{ActorID: " u-1 ", ActorRole: " gerente "}
	actor := r.Actor()
	if actor.ID != "u-1" || actor.Role != "gerente" {
		t.Fatalf("unexpected actor: %+v", actor)
	}
}

func TestBatchTransitionRequest_ResolveStatus(t *testing.T) {
	r := BatchTransitionRequest{Status: "completed"}
	if got := r.ResolveStatus(); got != entities.TransferStatusCompleted {
		t.Fatalf("expected COMPLETED, got %q", got)
	}
}
