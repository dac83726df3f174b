package handlers

import (
	"net/http"

	request "calcplanner/internal/adapter/http/dto/request"
	response "calcplanner/internal/adapter/http/dto/response"
	"calcplanner/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewMaterialHandler(uc usecase.ICatalogUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ListMaterials godoc
// @Summary  List the material catalog
// @Tags     materials
// @Produce  json
// @Success  200 {object} response.CatalogResponse
// @Router   /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.usecase.Load(c.Request.Context())))
}

// UpdatePrice godoc
// @Summary  Change the unit price of a material
// @Tags     materials
// @Accept   json
// @Produce  json
// @Param    id   path string                     true "Material ID"
// @Param    body body request.UpdatePriceRequest true "New price"
// @Success  200 {object} response.MaterialResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /materials/{id}/price [patch]
func (h *MaterialHandler) UpdatePrice(c *gin.Context) {
	var payload request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	m, err := h.usecase.UpdatePrice(c.Request.Context(), c.Param("id"), payload.ResolvePrice())
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}
