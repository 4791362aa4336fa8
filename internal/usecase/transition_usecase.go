package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/domain/lifecycle"
	"distribuidora_xpto/internal/domain/selection"
	"distribuidora_xpto/internal/usecase/interfaces"
)

var (
	ErrDocumentNotFound     = errors.New("document not found")
	ErrIllegalTransition    = errors.New("illegal transition")
	ErrDuplicateID          = errors.New("duplicate document id")
	ErrStoreFailure         = errors.New("store failure")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrUnknownDocumentKind  = errors.New("unknown document kind")
)

// BatchSummary reports the per-document outcome of one batch request.
//
//   - AppliedIDs: transition committed.
//   - SkippedIDs: the document's current state made the transition illegal
//     (or the id no longer exists) — the benign outcome of a stale selection.
//   - FailedIDs: the store call itself failed; these are the retryable ones.
type BatchSummary struct {
	AppliedIDs []string `json:"applied_ids"`
	SkippedIDs []string `json:"skipped_ids"`
	FailedIDs  []string `json:"failed_ids"`
}

// ITransitionUseCase is the lifecycle engine's entry surface.
type ITransitionUseCase interface {
	ProposeTransition(ctx context.Context, kind entities.DocumentKind, id string, to entities.Status, actor lifecycle.Actor) (lifecycle.Proposal, error)
	RequestTransition(ctx context.Context, kind entities.DocumentKind, id string, to entities.Status, actor lifecycle.Actor, confirmed bool) (entities.DocumentSummary, error)
	RequestBatchTransition(ctx context.Context, kind entities.DocumentKind, sessionID string, ids []string, to entities.Status, actor lifecycle.Actor, confirmed bool) (BatchSummary, error)
	CheckUniqueID(ctx context.Context, kind entities.DocumentKind, candidateID, excludeID string) (bool, error)
}

// TransitionUseCase applies lifecycle transitions to documents of any kind.
//
// It is the only writer of document status: one conditional store write per
// call, one audit record appended when (and only when) that write succeeds.
// A keyed mutex serializes work on the same document id so two concurrent
// load-mutate-save sequences can never overwrite each other inside this
// process; the repository's status condition is the backstop across
// processes.
type TransitionUseCase struct {
	machine    *lifecycle.Machine
	stores     map[entities.DocumentKind]interfaces.ITransitionStore
	selections *selection.Registry

	mu       sync.Mutex
	docLocks map[string]*sync.Mutex
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(machine *lifecycle.Machine, stores map[entities.DocumentKind]interfaces.ITransitionStore, selections *selection.Registry) *TransitionUseCase {
	if machine == nil {
		machine = lifecycle.NewMachine(nil)
	}
	return &TransitionUseCase{
		machine:    machine,
		stores:     stores,
		selections: selections,
		docLocks:   make(map[string]*sync.Mutex),
	}
}

func (u *TransitionUseCase) store(kind entities.DocumentKind) (interfaces.ITransitionStore, error) {
	st, ok := u.stores[kind]
	if !ok || st == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentKind, kind)
	}
	return st, nil
}

// lockFor returns the mutex serializing transitions for one document.
// Locks are keyed by kind+id and live for the process lifetime; the set of
// documents a deployment touches is small enough that we never reap them.
func (u *TransitionUseCase) lockFor(kind entities.DocumentKind, id string) *sync.Mutex {
	key := string(kind) + "/" + id
	u.mu.Lock()
	defer u.mu.Unlock()
	l, ok := u.docLocks[key]
	if !ok {
		l = &sync.Mutex{}
		u.docLocks[key] = l
	}
	return l
}

// ProposeTransition evaluates a transition without writing anything and tells
// the caller whether a confirmation step is required before committing.
func (u *TransitionUseCase) ProposeTransition(ctx context.Context, kind entities.DocumentKind, id string, to entities.Status, actor lifecycle.Actor) (lifecycle.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return lifecycle.Proposal{}, ErrInvalidDocumentID
	}
	st, err := u.store(kind)
	if err != nil {
		return lifecycle.Proposal{}, err
	}

	cur, err := st.GetSummary(ctx, id)
	if err != nil {
		return lifecycle.Proposal{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if cur.ID == "" {
		return lifecycle.Proposal{}, ErrDocumentNotFound
	}
	return u.machine.Propose(kind, cur.Status, to, actor), nil
}

// RequestTransition applies one transition to one document.
//
// The document is re-read from the store, the state machine decides, and the
// mutation happens as a single conditional write that also appends the audit
// record. Nothing is mutated locally before the store confirms; the summary
// returned is the store's canonical post-save state.
func (u *TransitionUseCase) RequestTransition(ctx context.Context, kind entities.DocumentKind, id string, to entities.Status, actor lifecycle.Actor, confirmed bool) (entities.DocumentSummary, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DocumentSummary{}, ErrInvalidDocumentID
	}
	st, err := u.store(kind)
	if err != nil {
		return entities.DocumentSummary{}, err
	}

	lock := u.lockFor(kind, id)
	lock.Lock()
	defer lock.Unlock()

	cur, err := st.GetSummary(ctx, id)
	if err != nil {
		return entities.DocumentSummary{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if cur.ID == "" {
		return entities.DocumentSummary{}, ErrDocumentNotFound
	}

	prop := u.machine.Propose(kind, cur.Status, to, actor)
	if !prop.Allowed {
		return entities.DocumentSummary{}, fmt.Errorf("%w: %s", ErrIllegalTransition, prop.Reason)
	}
	if prop.RequiresConfirmation && !confirmed {
		return entities.DocumentSummary{}, fmt.Errorf("%w: %s", ErrConfirmationRequired, prop.Impact)
	}

	rec := entities.TransitionRecord{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		From:      cur.Status,
		To:        to,
		At:        time.Now().UTC(),
	}
	out, err := st.ApplyTransition(ctx, id, cur.Status, to, rec)
	if err != nil {
		return entities.DocumentSummary{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	if out.ID == "" {
		// Conditional check failed: another writer moved the document after
		// our read. Same class of outcome as a stale selection.
		return entities.DocumentSummary{}, fmt.Errorf("%w: document changed concurrently", ErrIllegalTransition)
	}
	return out, nil
}

// RequestBatchTransition applies one requested status to a set of documents,
// best effort. No individual outcome aborts the rest; every id lands in
// exactly one of the summary's buckets. On completion the applied ids are
// removed from the session's selection so skipped and failed rows stay
// selected for retry or inspection.
func (u *TransitionUseCase) RequestBatchTransition(ctx context.Context, kind entities.DocumentKind, sessionID string, ids []string, to entities.Status, actor lifecycle.Actor, confirmed bool) (BatchSummary, error) {
	summary := BatchSummary{
		AppliedIDs: []string{},
		SkippedIDs: []string{},
		FailedIDs:  []string{},
	}

	if _, err := u.store(kind); err != nil {
		return summary, err
	}
	graph, _ := lifecycle.GraphFor(kind)
	if !graph.Valid(to) {
		return summary, fmt.Errorf("%w: %q is not a %s status", ErrInvalidStatus, to, kind)
	}
	// A batch cancel without confirmation is refused up front, before any
	// store call, rather than skipping every row.
	if !to.Active() && !confirmed {
		return summary, ErrConfirmationRequired
	}

	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		_, err := u.RequestTransition(ctx, kind, id, to, actor, confirmed)
		switch {
		case err == nil:
			summary.AppliedIDs = append(summary.AppliedIDs, id)
		case errors.Is(err, ErrIllegalTransition), errors.Is(err, ErrDocumentNotFound):
			summary.SkippedIDs = append(summary.SkippedIDs, id)
		default:
			summary.FailedIDs = append(summary.FailedIDs, id)
		}
	}

	sort.Strings(summary.AppliedIDs)
	sort.Strings(summary.SkippedIDs)
	sort.Strings(summary.FailedIDs)

	if sessionID != "" && u.selections != nil && len(summary.AppliedIDs) > 0 {
		u.selections.Session(sessionID).Remove(summary.AppliedIDs...)
	}
	return summary, nil
}

// CheckUniqueID is the advisory uniqueness pre-check over the active document
// set of a kind. The candidate is compared exactly as given, case-sensitive
// and untrimmed; the store's conditional write remains the source of truth.
func (u *TransitionUseCase) CheckUniqueID(ctx context.Context, kind entities.DocumentKind, candidateID, excludeID string) (bool, error) {
	if candidateID == "" {
		return false, ErrInvalidDocumentID
	}
	st, err := u.store(kind)
	if err != nil {
		return false, err
	}
	refs, err := st.ListRefs(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return lifecycle.CheckUnique(candidateID, refs, excludeID), nil
}
