package interfaces

import (
	"context"

	"distribuidora_xpto/internal/domain/entities"
)

// ITransferRepository abstracts DynamoDB persistence for Transfer.
type ITransferRepository interface {
	ITransitionStore
	Create(ctx context.Context, tr entities.Transfer) (entities.Transfer, error)
	GetByID(ctx context.Context, id string) (entities.Transfer, error)
	List(ctx context.Context, status entities.Status) ([]entities.Transfer, error)
}
