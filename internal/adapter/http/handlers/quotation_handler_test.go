package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"distribuidora_xpto/internal/adapter/http/handlers/mocks"
	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/domain/lifecycle"
	"distribuidora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuotationHandler_CreateQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, usecase.ErrDuplicateID)

		body := `{"id":"Q-1","customer_ref":"cust-1","valid_until":"2026-12-31T00:00:00Z","total":150.5,"actor_id":"u-1","actor_role":"vendedor"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations", h.CreateQuotation)

		now := time.Now().UTC()
		uc.EXPECT().CreateQuotation(gomock.Any(), gomock.Any()).Return(entities.Quotation{
			ID:          "Q-1",
			CustomerRef: "cust-1",
			Total:       150.5,
			Status:      entities.QuotationStatusDraft,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil)

		body := `{"id":"Q-1","customer_ref":"cust-1","valid_until":"2026-12-31T00:00:00Z","total":150.5,"actor_id":"u-1","actor_role":"vendedor"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "Q-1" || resp["status"] != "DRAFT" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_GetQuotation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "Q-missing").Return(entities.Quotation{}, usecase.ErrDocumentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/Q-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.GET("/v1/quotations/:id", h.GetQuotation)

		uc.EXPECT().GetByID(gomock.Any(), "Q-1").Return(entities.Quotation{ID: "Q-1", Status: entities.QuotationStatusSent}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations/Q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_ListQuotations(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().List(gomock.Any(), entities.Status("SENT")).Return([]entities.Quotation{{ID: "Q-1"}, {ID: "Q-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations?status=SENT", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 2 {
			t.Fatalf("expected 2 items, got %d", len(resp))
		}
	})

	t.Run("invalid filter maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.GET("/v1/quotations", h.ListQuotations)

		uc.EXPECT().List(gomock.Any(), entities.Status("BOGUS")).Return(nil, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotations?status=BOGUS", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_CheckQuotationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("taken id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations/check-id", h.CheckQuotationID)

		tr.EXPECT().CheckUniqueID(gomock.Any(), entities.DocumentKindQuotation, "Q-1", "").Return(false, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/check-id", bytes.NewBufferString(`{"candidate_id":"Q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["unique"] != false {
			t.Fatalf("expected unique=false, got %s", w.Body.String())
		}
	})

	t.Run("excludes self on rename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations/check-id", h.CheckQuotationID)

		tr.EXPECT().CheckUniqueID(gomock.Any(), entities.DocumentKindQuotation, "Q-1", "Q-1").Return(true, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/check-id", bytes.NewBufferString(`{"candidate_id":"Q-1","exclude_id":"Q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["unique"] != true {
			t.Fatalf("expected unique=true, got %s", w.Body.String())
		}
	})

	t.Run("store failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations/check-id", h.CheckQuotationID)

		tr.EXPECT().CheckUniqueID(gomock.Any(), entities.DocumentKindQuotation, "Q-1", "").Return(false, usecase.ErrStoreFailure)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/check-id", bytes.NewBufferString(`{"candidate_id":"Q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_ProposeQuotationTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cancel requires confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.POST("/v1/quotations/:id/transitions/propose", h.ProposeQuotationTransition)

		tr.EXPECT().
			ProposeTransition(gomock.Any(), entities.DocumentKindQuotation, "Q-1", entities.QuotationStatusCancelled, lifecycle.Actor{ID: "u-1", Role: "gerente"}).
			Return(lifecycle.Proposal{Allowed: true, RequiresConfirmation: true, Impact: "cancellation is permanent"}, nil)

		body := `{"status":"cancelled","actor_id":"u-1","actor_role":"gerente"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotations/Q-1/transitions/propose", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["requires_confirmation"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_UpdateQuotationStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/status", h.UpdateQuotationStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/Q-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("illegal transition maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/status", h.UpdateQuotationStatus)

		tr.EXPECT().
			RequestTransition(gomock.Any(), entities.DocumentKindQuotation, "Q-1", entities.QuotationStatusAccepted, lifecycle.Actor{ID: "u-1", Role: "vendedor"}, false).
			Return(entities.DocumentSummary{}, usecase.ErrIllegalTransition)

		body := `{"status":"ACCEPTED","actor_id":"u-1","actor_role":"vendedor"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/Q-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success normalizes status case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.PATCH("/v1/quotations/:id/status", h.UpdateQuotationStatus)

		now := time.Now().UTC()
		tr.EXPECT().
			RequestTransition(gomock.Any(), entities.DocumentKindQuotation, "Q-1", entities.QuotationStatusSent, lifecycle.Actor{ID: "u-1", Role: "vendedor"}, false).
			Return(entities.DocumentSummary{ID: "Q-1", Kind: entities.DocumentKindQuotation, Status: entities.QuotationStatusSent, UpdatedAt: now}, nil)

		body := `{"status":"sent","actor_id":"u-1","actor_role":"vendedor"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/Q-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != "SENT" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_BatchUpdateQuotationStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirmation required maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.PATCH("/v1/quotations/status", h.BatchUpdateQuotationStatus)

		tr.EXPECT().
			RequestBatchTransition(gomock.Any(), entities.DocumentKindQuotation, "", []string{"Q-1", "Q-2"}, entities.QuotationStatusCancelled, lifecycle.Actor{ID: "u-1", Role: "gerente"}, false).
			Return(usecase.BatchSummary{}, usecase.ErrConfirmationRequired)

		body := `{"ids":["Q-1","Q-2"],"status":"CANCELLED","actor_id":"u-1","actor_role":"gerente"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reports per-id buckets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		tr := mocks.NewMockITransitionUseCase(ctrl)
		h := NewQuotationHandler(uc, tr)

		r := gin.New()
		r.PATCH("/v1/quotations/status", h.BatchUpdateQuotationStatus)

		tr.EXPECT().
			RequestBatchTransition(gomock.Any(), entities.DocumentKindQuotation, "sess-1", []string{"Q-1", "Q-2", "Q-3"}, entities.QuotationStatusSent, lifecycle.Actor{ID: "u-1", Role: "vendedor"}, false).
			Return(usecase.BatchSummary{AppliedIDs: []string{"Q-1", "Q-3"}, SkippedIDs: []string{"Q-2"}, FailedIDs: []string{}}, nil)

		body := `{"ids":["Q-1","Q-2","Q-3"],"status":"SENT","actor_id":"u-1","actor_role":"vendedor","session_id":"sess-1"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/quotations/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			AppliedIDs []string `json:"applied_ids"`
			SkippedIDs []string `json:"skipped_ids"`
			FailedIDs  []string `json:"failed_ids"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp.AppliedIDs) != 2 || len(resp.SkippedIDs) != 1 || len(resp.FailedIDs) != 0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
