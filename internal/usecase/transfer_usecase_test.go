package usecase

import (
	"context"
	"errors"
	"testing"

	"distribuidora_xpto/internal/domain/entities"
	mock_interfaces "distribuidora_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validTransferInput() CreateTransferInput {
	return CreateTransferInput{
		FromBranchID: "branch-sp",
		ToBranchID:   "branch-rj",
		ProductRef:   "sku-42",
		Quantity:     12,
		Remark:       "reposição",
		ActorID:      "u-2",
		ActorRole:    "warehouse",
	}
}

func TestTransferUseCase_CreateTransfer(t *testing.T) {
	t.Run("missing branch", func(t *testing.T) {
		uc := NewTransferUseCase(nil)
		in := validTransferInput()
		in.ToBranchID = " "
		_, err := uc.CreateTransfer(context.Background(), in)
		if !errors.Is(err, ErrInvalidBranch) {
			t.Fatalf("expected ErrInvalidBranch, got %v", err)
		}
	})

	t.Run("same branch", func(t *testing.T) {
		uc := NewTransferUseCase(nil)
		in := validTransferInput()
		in.ToBranchID = in.FromBranchID
		_, err := uc.CreateTransfer(context.Background(), in)
		if !errors.Is(err, ErrSameBranch) {
			t.Fatalf("expected ErrSameBranch, got %v", err)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		uc := NewTransferUseCase(nil)
		in := validTransferInput()
		in.ProductRef = ""
		_, err := uc.CreateTransfer(context.Background(), in)
		if !errors.Is(err, ErrInvalidProduct) {
			t.Fatalf("expected ErrInvalidProduct, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewTransferUseCase(nil)
		in := validTransferInput()
		in.Quantity = 0
		_, err := uc.CreateTransfer(context.Background(), in)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITransferRepository(ctrl)
		uc := NewTransferUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Transfer{})).DoAndReturn(
			func(_ context.Context, tr entities.Transfer) (entities.Transfer, error) {
				if tr.ID == "" || tr.Status != entities.TransferStatusPending {
					t.Fatalf("unexpected transfer: %+v", tr)
				}
				if tr.FromBranchID != "branch-sp" || tr.ToBranchID != "branch-rj" || tr.Quantity != 12 {
					t.Fatalf("unexpected transfer: %+v", tr)
				}
				return tr, nil
			},
		)

		res, err := uc.CreateTransfer(context.Background(), validTransferInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedBy != "u-2" {
			t.Fatalf("unexpected created_by: %q", res.CreatedBy)
		}
	})

	t.Run("user-assigned id collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITransferRepository(ctrl)
		uc := NewTransferUseCase(repo)

		repo.EXPECT().ListRefs(gomock.Any()).Return([]entities.DocumentRef{{ID: "T-7", Active: true}}, nil)

		in := validTransferInput()
		in.ID = "T-7"
		_, err := uc.CreateTransfer(context.Background(), in)
		if !errors.Is(err, ErrDuplicateID) {
			t.Fatalf("expected ErrDuplicateID, got %v", err)
		}
	})
}

func TestTransferUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITransferRepository(ctrl)
		uc := NewTransferUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "T-1").Return(entities.Transfer{}, nil)

		_, err := uc.GetByID(context.Background(), "T-1")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITransferRepository(ctrl)
		uc := NewTransferUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "T-1").Return(entities.Transfer{ID: "T-1"}, nil)

		res, err := uc.GetByID(context.Background(), " T-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "T-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestTransferUseCase_List(t *testing.T) {
	t.Run("invalid status filter", func(t *testing.T) {
		uc := NewTransferUseCase(nil)
		_, err := uc.List(context.Background(), entities.QuotationStatusDraft)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unfiltered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockITransferRepository(ctrl)
		uc := NewTransferUseCase(repo)
		repo.EXPECT().List(gomock.Any(), entities.Status("")).Return([]entities.Transfer{{ID: "T-1"}, {ID: "T-2"}}, nil)

		out, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}
