package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/domain/lifecycle"
	"distribuidora_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCustomerRef = errors.New("invalid customer ref")
	ErrInvalidValidUntil  = errors.New("invalid valid_until date")
	ErrInvalidTotal       = errors.New("invalid quotation total")
)

// CreateQuotationInput carries everything the creation flow provides. ID is
// optional: empty means the server assigns a UUID, otherwise the caller's
// identifier is taken as-is and checked for uniqueness.
type CreateQuotationInput struct {
	ID          string
	CustomerRef string
	ValidUntil  time.Time
	Total       float64
	LineItems   json.RawMessage
	ActorID     string
	ActorRole   string
}

// IQuotationUseCase exposes quotation creation and reads. Status mutation is
// the transition engine's job, never this one's.
type IQuotationUseCase interface {
	CreateQuotation(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context, status entities.Status) ([]entities.Quotation, error)
}

type QuotationUseCase struct {
	repo interfaces.IQuotationRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo}
}

func (u *QuotationUseCase) CreateQuotation(ctx context.Context, in CreateQuotationInput) (entities.Quotation, error) {
	if strings.TrimSpace(in.CustomerRef) == "" {
		return entities.Quotation{}, ErrInvalidCustomerRef
	}
	if in.ValidUntil.IsZero() {
		return entities.Quotation{}, ErrInvalidValidUntil
	}
	if in.Total <= 0 {
		return entities.Quotation{}, ErrInvalidTotal
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	} else {
		// Advisory pre-check; the conditional put below stays authoritative.
		refs, err := u.repo.ListRefs(ctx)
		if err != nil {
			return entities.Quotation{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
		if !lifecycle.CheckUnique(id, refs, "") {
			return entities.Quotation{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
	}

	now := time.Now().UTC()
	q := entities.Quotation{
		ID:          id,
		CustomerRef: strings.TrimSpace(in.CustomerRef),
		ValidUntil:  in.ValidUntil,
		Total:       in.Total,
		LineItems:   in.LineItems,
		Status:      entities.QuotationStatusDraft,
		CreatedAt:   now,
		CreatedBy:   in.ActorID,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Quotation{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		return entities.Quotation{}, err
	}
	return created, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidDocumentID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrDocumentNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) List(ctx context.Context, status entities.Status) ([]entities.Quotation, error) {
	if status != "" {
		graph, _ := lifecycle.GraphFor(entities.DocumentKindQuotation)
		if !graph.Valid(status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
	}
	return u.repo.List(ctx, status)
}
