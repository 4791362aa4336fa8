package handlers

import (
	"net/http"

	request "distribuidora_xpto/internal/adapter/http/dto/request"
	response "distribuidora_xpto/internal/adapter/http/dto/response"
	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuotationHandler handles HTTP requests for sales quotations: creation,
// reads, the advisory id check, and lifecycle transitions (single and batch)
// delegated to the transition engine.
type QuotationHandler struct {
	quotations  usecase.IQuotationUseCase
	transitions usecase.ITransitionUseCase
}

func NewQuotationHandler(quotations usecase.IQuotationUseCase, transitions usecase.ITransitionUseCase) *QuotationHandler {
	return &QuotationHandler{quotations: quotations, transitions: transitions}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.QuotationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	q, err := h.quotations.CreateQuotation(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.quotations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) ListQuotations(c *gin.Context) {
	status := entities.Status(c.Query("status"))

	items, err := h.quotations.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(items))
}

// CheckQuotationID runs the advisory uniqueness pre-check. A "unique": false
// answer means the save must not proceed; a "unique": true answer is still
// re-validated by the store on write.
func (h *QuotationHandler) CheckQuotationID(c *gin.Context) {
	var payload request.CheckIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	unique, err := h.transitions.CheckUniqueID(c.Request.Context(), entities.DocumentKindQuotation, payload.CandidateID, payload.ExcludeID)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CheckIDResponse{CandidateID: payload.CandidateID, Unique: unique})
}

// ProposeQuotationTransition is the first phase of the confirm contract: it
// evaluates the transition and reports whether the caller must confirm.
func (h *QuotationHandler) ProposeQuotationTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.transitions.ProposeTransition(c.Request.Context(), entities.DocumentKindQuotation, c.Param("id"), payload.ResolveStatus(), payload.Actor())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *QuotationHandler) UpdateQuotationStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	summary, err := h.transitions.RequestTransition(c.Request.Context(), entities.DocumentKindQuotation, c.Param("id"), payload.ResolveStatus(), payload.Actor(), payload.Confirmed)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentSummary(summary))
}

func (h *QuotationHandler) BatchUpdateQuotationStatus(c *gin.Context) {
	var payload request.BatchTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	summary, err := h.transitions.RequestBatchTransition(c.Request.Context(), entities.DocumentKindQuotation, payload.SessionID, payload.IDs, payload.ResolveStatus(), payload.Actor(), payload.Confirmed)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatchSummary(summary))
}
