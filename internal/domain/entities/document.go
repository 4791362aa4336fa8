package entities

import "time"

// DocumentKind tags the lifecycle-bearing document variants handled by the
// transition engine. Each kind carries its own state graph (see the lifecycle
// package); everything else the engine does is kind-agnostic.

type DocumentKind string

const (
	DocumentKindQuotation DocumentKind = "quotation"
	DocumentKindTransfer  DocumentKind = "transfer"
)

// Status is the lifecycle state of a document. The engine only ever moves a
// document forward along its kind's state graph; it never recomputes monetary
// content or line items.

type Status string

const (
	QuotationStatusDraft     Status = "DRAFT"
	QuotationStatusSent      Status = "SENT"
	QuotationStatusAccepted  Status = "ACCEPTED"
	QuotationStatusRejected  Status = "REJECTED"
	QuotationStatusConverted Status = "CONVERTED"
	QuotationStatusCancelled Status = "CANCELLED"
)

const (
	TransferStatusPending   Status = "PENDING"
	TransferStatusCompleted Status = "COMPLETED"
	TransferStatusCancelled Status = "CANCELLED"
)

// Active reports whether a document in this status still counts toward id
// uniqueness. Cancellation is the soft delete: the record keeps its history
// but its identifier becomes reusable. Both variants spell the cancelled
// status the same way.
func (s Status) Active() bool {
	return s != QuotationStatusCancelled
}

// TransitionRecord is one entry of a document's audit trail. Exactly one
// record is appended per successful transition, atomically with the status
// write.
type TransitionRecord struct {
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	From      Status    `json:"from"`
	To        Status    `json:"to"`
	At        time.Time `json:"at"`
}

// DocumentSummary is the slice of a document the transition engine reads and
// reports: identity, kind and current lifecycle position. Repositories return
// a zero-value summary (empty ID) when the document does not exist.
type DocumentSummary struct {
	ID        string       `json:"id"`
	Kind      DocumentKind `json:"kind"`
	Status    Status       `json:"status"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// DocumentRef is the projection used by the uniqueness guard: identifier plus
// whether the document still occupies that identifier.
type DocumentRef struct {
	ID     string
	Active bool
}
