package routes

import (
	"distribuidora_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathTransfers  = "/transfers"
	PathSelection  = "/selection"
)

func addDocumentRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler, transferHandler *handlers.TransferHandler, selectionHandler *handlers.SelectionHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.CreateQuotation)
		quotations.GET("", quotationHandler.ListQuotations)
		quotations.POST("/check-id", quotationHandler.CheckQuotationID)
		// Batch route before the :id routes so "status" is not read as an id.
		quotations.PATCH("/status", quotationHandler.BatchUpdateQuotationStatus)
		quotations.GET("/:id", quotationHandler.GetQuotation)
		quotations.POST("/:id/transitions/propose", quotationHandler.ProposeQuotationTransition)
		quotations.PATCH("/:id/status", quotationHandler.UpdateQuotationStatus)
	}

	transfers := rg.Group(PathTransfers)
	{
		transfers.POST("", transferHandler.CreateTransfer)
		transfers.GET("", transferHandler.ListTransfers)
		transfers.POST("/check-id", transferHandler.CheckTransferID)
		transfers.PATCH("/status", transferHandler.BatchUpdateTransferStatus)
		transfers.GET("/:id", transferHandler.GetTransfer)
		transfers.POST("/:id/transitions/propose", transferHandler.ProposeTransferTransition)
		transfers.PATCH("/:id/status", transferHandler.UpdateTransferStatus)
	}

	selections := rg.Group(PathSelection)
	{
		selections.GET("/:session", selectionHandler.GetSelection)
		selections.PUT("/:session/all", selectionHandler.SelectAll)
		selections.PATCH("/:session/toggle", selectionHandler.Toggle)
		selections.DELETE("/:session", selectionHandler.Clear)
	}
}
