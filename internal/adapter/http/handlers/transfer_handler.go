package handlers

import (
	"net/http"

	request "distribuidora_xpto/internal/adapter/http/dto/request"
	response "distribuidora_xpto/internal/adapter/http/dto/response"
	"distribuidora_xpto/internal/domain/entities"
	"distribuidora_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// TransferHandler handles HTTP requests for inter-branch stock transfers.
type TransferHandler struct {
	transfers   usecase.ITransferUseCase
	transitions usecase.ITransitionUseCase
}

func NewTransferHandler(transfers usecase.ITransferUseCase, transitions usecase.ITransitionUseCase) *TransferHandler {
	return &TransferHandler{transfers: transfers, transitions: transitions}
}

func (h *TransferHandler) CreateTransfer(c *gin.Context) {
	var payload request.TransferCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	tr, err := h.transfers.CreateTransfer(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransfer(tr))
}

func (h *TransferHandler) GetTransfer(c *gin.Context) {
	tr, err := h.transfers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransfer(tr))
}

func (h *TransferHandler) ListTransfers(c *gin.Context) {
	status := entities.Status(c.Query("status"))

	items, err := h.transfers.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransfers(items))
}

func (h *TransferHandler) CheckTransferID(c *gin.Context) {
	var payload request.CheckIDRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	unique, err := h.transitions.CheckUniqueID(c.Request.Context(), entities.DocumentKindTransfer, payload.CandidateID, payload.ExcludeID)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.CheckIDResponse{CandidateID: payload.CandidateID, Unique: unique})
}

func (h *TransferHandler) ProposeTransferTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.transitions.ProposeTransition(c.Request.Context(), entities.DocumentKindTransfer, c.Param("id"), payload.ResolveStatus(), payload.Actor())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

func (h *TransferHandler) UpdateTransferStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	summary, err := h.transitions.RequestTransition(c.Request.Context(), entities.DocumentKindTransfer, c.Param("id"), payload.ResolveStatus(), payload.Actor(), payload.Confirmed)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocumentSummary(summary))
}

func (h *TransferHandler) BatchUpdateTransferStatus(c *gin.Context) {
	var payload request.BatchTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	summary, err := h.transitions.RequestBatchTransition(c.Request.Context(), entities.DocumentKindTransfer, payload.SessionID, payload.IDs, payload.ResolveStatus(), payload.Actor(), payload.Confirmed)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBatchSummary(summary))
}
