package handlers

import (
	"errors"
	"net/http"

	"distribuidora_xpto/internal/usecase"
	"distribuidora_xpto/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

// mapDocumentError translates usecase errors into the HTTP error taxonomy.
// Illegal transitions and duplicates are conflicts the caller must resolve;
// store failures answer 502 so clients can tell "retry me" from "fix your
// request".
func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrUnknownDocumentKind),
		errors.Is(err, usecase.ErrInvalidCustomerRef),
		errors.Is(err, usecase.ErrInvalidValidUntil),
		errors.Is(err, usecase.ErrInvalidTotal),
		errors.Is(err, usecase.ErrInvalidBranch),
		errors.Is(err, usecase.ErrSameBranch),
		errors.Is(err, usecase.ErrInvalidProduct),
		errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateID):
		return pkg.NewDomainErrorSimple("DUPLICATE_ID", "Document id already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainError("CONFIRMATION_REQUIRED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreFailure):
		return pkg.NewDomainError("STORE_FAILURE", "Persistence call failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
