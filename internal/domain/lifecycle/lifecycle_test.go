package lifecycle

import (
	"testing"

	"distribuidora_xpto/internal/domain/entities"
)

func TestMachine_CanTransition_QuotationGraph(t *testing.T) {
	m := NewMachine(nil)
	actor := Actor{ID: "u-1", Role: "sales"}

	allowed := []struct {
		from, to entities.Status
	}{
		{entities.QuotationStatusDraft, entities.QuotationStatusSent},
		{entities.QuotationStatusDraft, entities.QuotationStatusCancelled},
		{entities.QuotationStatusSent, entities.QuotationStatusAccepted},
		{entities.QuotationStatusSent, entities.QuotationStatusRejected},
		{entities.QuotationStatusSent, entities.QuotationStatusCancelled},
		{entities.QuotationStatusAccepted, entities.QuotationStatusConverted},
		{entities.QuotationStatusAccepted, entities.QuotationStatusCancelled},
		{entities.QuotationStatusRejected, entities.QuotationStatusCancelled},
	}
	for _, tc := range allowed {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			dec := m.CanTransition(entities.DocumentKindQuotation, tc.from, tc.to, actor)
			if !dec.Allowed {
				t.Fatalf("expected allowed, got reason %q", dec.Reason)
			}
		})
	}

	denied := []struct {
		from, to entities.Status
	}{
		{entities.QuotationStatusDraft, entities.QuotationStatusAccepted},
		{entities.QuotationStatusDraft, entities.QuotationStatusConverted},
		{entities.QuotationStatusSent, entities.QuotationStatusConverted},
		{entities.QuotationStatusRejected, entities.QuotationStatusSent},
		{entities.QuotationStatusConverted, entities.QuotationStatusCancelled},
		{entities.QuotationStatusCancelled, entities.QuotationStatusDraft},
	}
	for _, tc := range denied {
		t.Run(string(tc.from)+"->"+string(tc.to)+" denied", func(t *testing.T) {
			dec := m.CanTransition(entities.DocumentKindQuotation, tc.from, tc.to, actor)
			if dec.Allowed {
				t.Fatalf("expected denied")
			}
			if dec.Reason == "" {
				t.Fatalf("expected a reason")
			}
		})
	}
}

func TestMachine_CanTransition_TransferGraph(t *testing.T) {
	m := NewMachine(nil)
	actor := Actor{ID: "u-1", Role: "warehouse"}

	for _, to := range []entities.Status{entities.TransferStatusCompleted, entities.TransferStatusCancelled} {
		dec := m.CanTransition(entities.DocumentKindTransfer, entities.TransferStatusPending, to, actor)
		if !dec.Allowed {
			t.Fatalf("PENDING->%s: expected allowed, got %q", to, dec.Reason)
		}
	}

	// both end states are terminal
	for _, from := range []entities.Status{entities.TransferStatusCompleted, entities.TransferStatusCancelled} {
		dec := m.CanTransition(entities.DocumentKindTransfer, from, entities.TransferStatusPending, actor)
		if dec.Allowed {
			t.Fatalf("%s->PENDING: expected denied", from)
		}
	}
}

func TestMachine_CanTransition_NoOpAlwaysRejected(t *testing.T) {
	m := NewMachine(nil)
	actor := Actor{ID: "u-1", Role: "sales"}

	for kind, statuses := range map[entities.DocumentKind][]entities.Status{
		entities.DocumentKindQuotation: {
			entities.QuotationStatusDraft,
			entities.QuotationStatusSent,
			entities.QuotationStatusAccepted,
			entities.QuotationStatusRejected,
			entities.QuotationStatusConverted,
			entities.QuotationStatusCancelled,
		},
		entities.DocumentKindTransfer: {
			entities.TransferStatusPending,
			entities.TransferStatusCompleted,
			entities.TransferStatusCancelled,
		},
	} {
		for _, s := range statuses {
			if dec := m.CanTransition(kind, s, s, actor); dec.Allowed {
				t.Fatalf("%s %s->%s: no-op must be rejected", kind, s, s)
			}
		}
	}
}

func TestMachine_CanTransition_InvalidInputs(t *testing.T) {
	m := NewMachine(nil)
	actor := Actor{ID: "u-1", Role: "sales"}

	t.Run("unknown kind", func(t *testing.T) {
		dec := m.CanTransition("invoice", entities.QuotationStatusDraft, entities.QuotationStatusSent, actor)
		if dec.Allowed {
			t.Fatalf("expected denied")
		}
	})

	t.Run("unknown current status", func(t *testing.T) {
		dec := m.CanTransition(entities.DocumentKindQuotation, "LIMBO", entities.QuotationStatusSent, actor)
		if dec.Allowed {
			t.Fatalf("expected denied")
		}
	})

	t.Run("unknown requested status", func(t *testing.T) {
		dec := m.CanTransition(entities.DocumentKindQuotation, entities.QuotationStatusDraft, "ARCHIVED", actor)
		if dec.Allowed {
			t.Fatalf("expected denied")
		}
	})

	t.Run("status of the other variant", func(t *testing.T) {
		dec := m.CanTransition(entities.DocumentKindTransfer, entities.TransferStatusPending, entities.QuotationStatusSent, actor)
		if dec.Allowed {
			t.Fatalf("expected denied")
		}
	})
}

func TestMachine_RolePolicy(t *testing.T) {
	m := NewMachine(RestrictCancelTo("manager", "system"))

	t.Run("sales may not cancel", func(t *testing.T) {
		dec := m.CanTransition(entities.DocumentKindQuotation, entities.QuotationStatusSent, entities.QuotationStatusCancelled, Actor{ID: "u-1", Role: "sales"})
		if dec.Allowed {
			t.Fatalf("expected denied")
		}
	})

	t.Run("sales may still send", func(t *testing.T) {
		dec := m.CanTransition(entities.DocumentKindQuotation, entities.QuotationStatusDraft, entities.QuotationStatusSent, Actor{ID: "u-1", Role: "sales"})
		if !dec.Allowed {
			t.Fatalf("expected allowed, got %q", dec.Reason)
		}
	})

	t.Run("manager may cancel", func(t *testing.T) {
		dec := m.CanTransition(entities.DocumentKindQuotation, entities.QuotationStatusSent, entities.QuotationStatusCancelled, Actor{ID: "u-2", Role: "manager"})
		if !dec.Allowed {
			t.Fatalf("expected allowed, got %q", dec.Reason)
		}
	})

	t.Run("empty role list degrades to allow all", func(t *testing.T) {
		open := NewMachine(RestrictCancelTo())
		dec := open.CanTransition(entities.DocumentKindQuotation, entities.QuotationStatusSent, entities.QuotationStatusCancelled, Actor{ID: "u-1", Role: "sales"})
		if !dec.Allowed {
			t.Fatalf("expected allowed, got %q", dec.Reason)
		}
	})
}

func TestMachine_Propose(t *testing.T) {
	m := NewMachine(nil)
	actor := Actor{ID: "u-1", Role: "sales"}

	t.Run("cancel requires confirmation", func(t *testing.T) {
		p := m.Propose(entities.DocumentKindQuotation, entities.QuotationStatusSent, entities.QuotationStatusCancelled, actor)
		if !p.Allowed || !p.RequiresConfirmation {
			t.Fatalf("unexpected proposal: %+v", p)
		}
		if p.Impact == "" {
			t.Fatalf("expected an impact message")
		}
	})

	t.Run("send does not", func(t *testing.T) {
		p := m.Propose(entities.DocumentKindQuotation, entities.QuotationStatusDraft, entities.QuotationStatusSent, actor)
		if !p.Allowed || p.RequiresConfirmation {
			t.Fatalf("unexpected proposal: %+v", p)
		}
	})

	t.Run("illegal transition is not proposable", func(t *testing.T) {
		p := m.Propose(entities.DocumentKindQuotation, entities.QuotationStatusConverted, entities.QuotationStatusCancelled, actor)
		if p.Allowed {
			t.Fatalf("expected not allowed")
		}
		if p.Reason == "" {
			t.Fatalf("expected a reason")
		}
	})
}
