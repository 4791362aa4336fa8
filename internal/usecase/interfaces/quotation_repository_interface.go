package interfaces

import (
	"context"

	"distribuidora_xpto/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// Create must be conditional on the id not existing and return ErrDuplicateKey
// on collision; List with an empty status returns every quotation.
type IQuotationRepository interface {
	ITransitionStore
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	List(ctx context.Context, status entities.Status) ([]entities.Quotation, error)
}
