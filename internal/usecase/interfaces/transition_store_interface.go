package interfaces

import (
	"context"
	"errors"

	"distribuidora_xpto/internal/domain/entities"
)

// ErrDuplicateKey is returned by repositories when the store's own conditional
// write rejects a create for an identifier that already exists. It is the
// authoritative counterpart of the advisory uniqueness pre-check.
var ErrDuplicateKey = errors.New("duplicate key")

// ITransitionStore is the slice of a document repository the transition
// engine needs. Both document kinds implement it, so the executor and the
// batch orchestrator stay kind-agnostic.
//
// Conventions (matching the Get* methods of the concrete repositories):
//   - GetSummary returns a zero-value summary when the id does not exist.
//   - ApplyTransition performs one conditional write: it only succeeds when
//     the stored status still equals from, and it appends the audit record in
//     the same write. A zero-value summary with a nil error means the
//     condition failed (document missing or concurrently moved on).
type ITransitionStore interface {
	GetSummary(ctx context.Context, id string) (entities.DocumentSummary, error)
	ApplyTransition(ctx context.Context, id string, from, to entities.Status, rec entities.TransitionRecord) (entities.DocumentSummary, error)
	ListRefs(ctx context.Context) ([]entities.DocumentRef, error)
}
