package handlers

import (
	"net/http"

	request "calcplanner/internal/adapter/http/dto/request"
	response "calcplanner/internal/adapter/http/dto/response"
	"calcplanner/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler serves the entry form and the saved-estimates list.
//
// The hand-off is shared with HandoffHandler: EditEstimate fills it and
// NewDraft empties it.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	handoff usecase.IEditHandoff
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, handoff usecase.IEditHandoff) *EstimateHandler {
	return &EstimateHandler{usecase: uc, handoff: handoff}
}

// ListEstimates godoc
// @Summary  List saved estimates
// @Tags     estimates
// @Produce  json
// @Success  200 {object} response.EstimateListResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromEstimateSet(h.usecase.LoadAll(c.Request.Context())))
}

// CreateEstimate godoc
// @Summary  Save a new estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    body body request.EstimateDraftRequest true "Entry form"
// @Success  201 {object} response.EstimateResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	draft := payload.ToDraft()
	if err := usecase.ValidateDraft(draft); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}

	estimate, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

// PreviewEstimate godoc
// @Summary  Price an unsaved entry form
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    body body request.EstimateDraftRequest true "Entry form"
// @Success  200 {object} response.BreakdownResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimates/preview [post]
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var payload request.EstimateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(h.usecase.Preview(c.Request.Context(), payload.ToDraft())))
}

// NewDraft godoc
// @Summary  Open the entry form
// @Description Returns the estimate waiting in the edit hand-off, if any, and empties the slot.
// @Description Otherwise returns a blank form with one line per material.
// @Tags     estimates
// @Produce  json
// @Success  200 {object} response.DraftResponse
// @Router   /estimates/new [get]
func (h *EstimateHandler) NewDraft(c *gin.Context) {
	ctx := c.Request.Context()
	if pending, ok := h.handoff.Take(); ok {
		c.JSON(http.StatusOK, response.FromDraft(h.usecase.DraftFrom(ctx, pending), pending.ID))
		return
	}
	c.JSON(http.StatusOK, response.FromDraft(h.usecase.NewDraft(ctx), ""))
}

// GetEstimate godoc
// @Summary  Get a saved estimate
// @Tags     estimates
// @Produce  json
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// DeleteEstimate godoc
// @Summary  Delete a saved estimate
// @Description Deleting an id that does not exist succeeds.
// @Tags     estimates
// @Param    id path string true "Estimate ID"
// @Success  204
// @Failure  500 {object} pkg.HTTPError
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearEstimates godoc
// @Summary  Delete every saved estimate
// @Tags     estimates
// @Success  204
// @Failure  500 {object} pkg.HTTPError
// @Router   /estimates [delete]
func (h *EstimateHandler) ClearEstimates(c *gin.Context) {
	if err := h.usecase.ClearAll(c.Request.Context()); err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// EditEstimate godoc
// @Summary  Send a saved estimate to the entry form
// @Tags     estimates
// @Produce  json
// @Param    id path string true "Estimate ID"
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id}/edit [post]
func (h *EstimateHandler) EditEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimateError(err))
		return
	}
	h.handoff.SetPending(estimate)
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
