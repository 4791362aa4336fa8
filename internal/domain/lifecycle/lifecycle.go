package lifecycle

import (
	"fmt"

	"distribuidora_xpto/internal/domain/entities"
)

// Graph is a state machine encoded as data: current status -> reachable next
// statuses. A status present as a key with no outgoing edges is terminal; a
// status absent from the keys is not a valid state of the variant at all.
type Graph map[entities.Status][]entities.Status

var quotationGraph = Graph{
	entities.QuotationStatusDraft:     {entities.QuotationStatusSent, entities.QuotationStatusCancelled},
	entities.QuotationStatusSent:      {entities.QuotationStatusAccepted, entities.QuotationStatusRejected, entities.QuotationStatusCancelled},
	entities.QuotationStatusAccepted:  {entities.QuotationStatusConverted, entities.QuotationStatusCancelled},
	entities.QuotationStatusRejected:  {entities.QuotationStatusCancelled},
	entities.QuotationStatusConverted: {},
	entities.QuotationStatusCancelled: {},
}

var transferGraph = Graph{
	entities.TransferStatusPending:   {entities.TransferStatusCompleted, entities.TransferStatusCancelled},
	entities.TransferStatusCompleted: {},
	entities.TransferStatusCancelled: {},
}

// GraphFor returns the state graph of a document kind.
func GraphFor(kind entities.DocumentKind) (Graph, bool) {
	switch kind {
	case entities.DocumentKindQuotation:
		return quotationGraph, true
	case entities.DocumentKindTransfer:
		return transferGraph, true
	default:
		return nil, false
	}
}

// Valid reports whether s is a state of this graph.
func (g Graph) Valid(s entities.Status) bool {
	_, ok := g[s]
	return ok
}

// Terminal reports whether s is a state of this graph with no outgoing edges.
func (g Graph) Terminal(s entities.Status) bool {
	next, ok := g[s]
	return ok && len(next) == 0
}

// HasEdge reports whether the graph permits moving from one status to another
// in a single step.
func (g Graph) HasEdge(from, to entities.Status) bool {
	for _, next := range g[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Actor identifies who is requesting a transition. Engine calls always carry
// it explicitly; nothing is read from ambient state.
type Actor struct {
	ID   string
	Role string
}

// RolePolicy gates transitions by actor. The exact role matrix is a
// deployment concern, so it is injected rather than hardcoded here.
type RolePolicy func(actor Actor, from, to entities.Status) bool

// AllowAll is the permissive default policy.
func AllowAll(Actor, entities.Status, entities.Status) bool { return true }

// RestrictCancelTo returns a policy that only lets the given roles cancel a
// document. All other transitions stay open. An empty role list degrades to
// AllowAll.
func RestrictCancelTo(roles ...string) RolePolicy {
	if len(roles) == 0 {
		return AllowAll
	}
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(actor Actor, _, to entities.Status) bool {
		if to.Active() {
			return true
		}
		_, ok := allowed[actor.Role]
		return ok
	}
}

// Decision is the state machine's answer for one requested transition.
type Decision struct {
	Allowed bool
	Reason  string
}

// Proposal is the first half of the two-phase confirm contract: whether the
// transition is allowed, and if so whether the caller must confirm before
// committing it.
type Proposal struct {
	Allowed              bool
	Reason               string
	RequiresConfirmation bool
	Impact               string
}

// Machine is the pure lifecycle decision logic. It holds policy only, never
// document data, so the executor and the tests can reason about it without
// any storage in the picture.
type Machine struct {
	policy RolePolicy
}

func NewMachine(policy RolePolicy) *Machine {
	if policy == nil {
		policy = AllowAll
	}
	return &Machine{policy: policy}
}

// CanTransition decides whether a document of the given kind may move from
// current to requested under the acting user.
//
// Requesting the status a document already has is always rejected, even when
// a self-edge would be harmless; that is what catches accidental
// double-submission.
func (m *Machine) CanTransition(kind entities.DocumentKind, current, requested entities.Status, actor Actor) Decision {
	graph, ok := GraphFor(kind)
	if !ok {
		return Decision{Reason: fmt.Sprintf("unknown document kind %q", kind)}
	}
	if !graph.Valid(current) {
		return Decision{Reason: fmt.Sprintf("%q is not a %s status", current, kind)}
	}
	if !graph.Valid(requested) {
		return Decision{Reason: fmt.Sprintf("%q is not a %s status", requested, kind)}
	}
	if requested == current {
		return Decision{Reason: fmt.Sprintf("document is already %s", current)}
	}
	if graph.Terminal(current) {
		return Decision{Reason: fmt.Sprintf("%s is terminal", current)}
	}
	if !graph.HasEdge(current, requested) {
		return Decision{Reason: fmt.Sprintf("cannot move from %s to %s", current, requested)}
	}
	if !m.policy(actor, current, requested) {
		return Decision{Reason: fmt.Sprintf("role %q may not move a document to %s", actor.Role, requested)}
	}
	return Decision{Allowed: true}
}

// Propose evaluates a transition without committing anything and tells the
// caller whether a confirmation step is required first. Cancellation is the
// destructive case: the document keeps its history but permanently loses
// effect, so it always asks for confirmation.
func (m *Machine) Propose(kind entities.DocumentKind, current, requested entities.Status, actor Actor) Proposal {
	dec := m.CanTransition(kind, current, requested, actor)
	if !dec.Allowed {
		return Proposal{Reason: dec.Reason}
	}
	if !requested.Active() {
		return Proposal{
			Allowed:              true,
			RequiresConfirmation: true,
			Impact:               fmt.Sprintf("cancelling this %s is permanent; it keeps its history but loses all effect", kind),
		}
	}
	return Proposal{Allowed: true}
}
