package handlers

import (
	"net/http"

	request "distribuidora_xpto/internal/adapter/http/dto/request"
	response "distribuidora_xpto/internal/adapter/http/dto/response"
	"distribuidora_xpto/internal/domain/selection"

	"github.com/gin-gonic/gin"
)

// SelectionHandler exposes a session's selection set: what the user has
// picked in the visible list for the next batch action.
type SelectionHandler struct {
	registry *selection.Registry
}

func NewSelectionHandler(registry *selection.Registry) *SelectionHandler {
	return &SelectionHandler{registry: registry}
}

func (h *SelectionHandler) set(c *gin.Context) (*selection.Set, string, bool) {
	session := c.Param("session")
	if session == "" {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return nil, "", false
	}
	return h.registry.Session(session), session, true
}

func (h *SelectionHandler) respond(c *gin.Context, session string, set *selection.Set) {
	ids := set.IDs()
	c.JSON(http.StatusOK, response.SelectionResponse{
		SessionID: session,
		IDs:       ids,
		Count:     len(ids),
	})
}

func (h *SelectionHandler) GetSelection(c *gin.Context) {
	set, session, ok := h.set(c)
	if !ok {
		return
	}
	h.respond(c, session, set)
}

func (h *SelectionHandler) SelectAll(c *gin.Context) {
	set, session, ok := h.set(c)
	if !ok {
		return
	}

	var payload request.SelectAllRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	set.SelectAll(payload.VisibleIDs)
	h.respond(c, session, set)
}

func (h *SelectionHandler) Toggle(c *gin.Context) {
	set, session, ok := h.set(c)
	if !ok {
		return
	}

	var payload request.ToggleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	set.Toggle(payload.ID)
	h.respond(c, session, set)
}

func (h *SelectionHandler) Clear(c *gin.Context) {
	set, session, ok := h.set(c)
	if !ok {
		return
	}

	set.Clear()
	h.respond(c, session, set)
}
