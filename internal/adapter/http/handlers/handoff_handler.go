package handlers

import (
	"net/http"

	response "calcplanner/internal/adapter/http/dto/response"
	"calcplanner/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HandoffHandler struct {
	handoff usecase.IEditHandoff
}

func NewHandoffHandler(handoff usecase.IEditHandoff) *HandoffHandler {
	return &HandoffHandler{handoff: handoff}
}

// GetPending godoc
// @Summary  Peek at the estimate waiting to be edited
// @Tags     handoff
// @Produce  json
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /handoff [get]
func (h *HandoffHandler) GetPending(c *gin.Context) {
	pending, ok := h.handoff.Pending()
	if !ok {
		writeError(c, errNoPendingEdit)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(pending))
}

// Take godoc
// @Summary  Take the estimate waiting to be edited and empty the slot
// @Tags     handoff
// @Produce  json
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /handoff/take [post]
func (h *HandoffHandler) Take(c *gin.Context) {
	pending, ok := h.handoff.Take()
	if !ok {
		writeError(c, errNoPendingEdit)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(pending))
}

// Clear godoc
// @Summary  Empty the edit hand-off
// @Tags     handoff
// @Success  204
// @Router   /handoff [delete]
func (h *HandoffHandler) Clear(c *gin.Context) {
	h.handoff.Clear()
	c.Status(http.StatusNoContent)
}
