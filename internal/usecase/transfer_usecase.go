package usecase

import (
	"context"
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
	ErrInvalidBranch   = errors.New("invalid branch")
	ErrSameBranch      = errors.New("from and to branch must differ")
	ErrInvalidProduct  = errors.New("invalid product ref")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// CreateTransferInput carries a stock transfer creation request. ID is
// optional, same contract as quotations.
type CreateTransferInput struct {
	ID           string
	FromBranchID string
	ToBranchID   string
	ProductRef   string
	Quantity     int
	Remark       string
	ActorID      string
	ActorRole    string
}

type ITransferUseCase interface {
	CreateTransfer(ctx context.Context, in CreateTransferInput) (entities.Transfer, error)
	GetByID(ctx context.Context, id string) (entities.Transfer, error)
	List(ctx context.Context, status entities.Status) ([]entities.Transfer, error)
}

type TransferUseCase struct {
	repo interfaces.ITransferRepository
}

var _ ITransferUseCase = (*TransferUseCase)(nil)

func NewTransferUseCase(repo interfaces.ITransferRepository) *TransferUseCase {
	return &TransferUseCase{repo: repo}
}

func (u *TransferUseCase) CreateTransfer(ctx context.Context, in CreateTransferInput) (entities.Transfer, error) {
	from := strings.TrimSpace(in.FromBranchID)
	to := strings.TrimSpace(in.ToBranchID)
	if from == "" || to == "" {
		return entities.Transfer{}, ErrInvalidBranch
	}
	if from == to {
		return entities.Transfer{}, ErrSameBranch
	}
	if strings.TrimSpace(in.ProductRef) == "" {
		return entities.Transfer{}, ErrInvalidProduct
	}
	if in.Quantity <= 0 {
		return entities.Transfer{}, ErrInvalidQuantity
	}

	id := in.ID
	if id == "" {
		id = uuid.NewString()
	} else {
		refs, err := u.repo.ListRefs(ctx)
		if err != nil {
			return entities.Transfer{}, fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
		if !lifecycle.CheckUnique(id, refs, "") {
			return entities.Transfer{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
	}

	now := time.Now().UTC()
	tr := entities.Transfer{
		ID:           id,
		FromBranchID: from,
		ToBranchID:   to,
		ProductRef:   strings.TrimSpace(in.ProductRef),
		Quantity:     in.Quantity,
		Remark:       strings.TrimSpace(in.Remark),
		Status:       entities.TransferStatusPending,
		CreatedAt:    now,
		CreatedBy:    in.ActorID,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, tr)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			return entities.Transfer{}, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		return entities.Transfer{}, err
	}
	return created, nil
}

func (u *TransferUseCase) GetByID(ctx context.Context, id string) (entities.Transfer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Transfer{}, ErrInvalidDocumentID
	}

	tr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transfer{}, err
	}
	if tr.ID == "" {
		return entities.Transfer{}, ErrDocumentNotFound
	}
	return tr, nil
}

func (u *TransferUseCase) List(ctx context.Context, status entities.Status) ([]entities.Transfer, error) {
	if status != "" {
		graph, _ := lifecycle.GraphFor(entities.DocumentKindTransfer)
		if !graph.Valid(status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
	}
	return u.repo.List(ctx, status)
}
