package handlers

import (
	"fmt"
	"net/http"

	request "calcplanner/internal/adapter/http/dto/request"
	response "calcplanner/internal/adapter/http/dto/response"
	"calcplanner/internal/domain/entities"
	"calcplanner/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	usecase usecase.IExportUseCase
}

func NewExportHandler(uc usecase.IExportUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ListFormats godoc
// @Summary  List the export formats
// @Tags     export
// @Produce  json
// @Success  200 {object} response.ExportFormatsResponse
// @Router   /exports/formats [get]
func (h *ExportHandler) ListFormats(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromExportFormats(h.usecase.Formats()))
}

// ExportEstimate godoc
// @Summary  Download a saved estimate as PDF or HTML
// @Tags     export
// @Produce  application/pdf
// @Produce  text/html
// @Param    id     path  string true  "Estimate ID"
// @Param    format query string false "pdf (default) or html"
// @Success  200 {file} file
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /estimates/{id}/export [get]
func (h *ExportHandler) ExportEstimate(c *gin.Context) {
	doc, err := h.usecase.Export(c.Request.Context(), c.Param("id"), exportFormat(c))
	if err != nil {
		writeError(c, mapExportError(err))
		return
	}
	writeDocument(c, doc)
}

// ExportDraft godoc
// @Summary  Download an unsaved entry form as PDF or HTML
// @Tags     export
// @Accept   json
// @Produce  application/pdf
// @Produce  text/html
// @Param    format query string                       false "pdf (default) or html"
// @Param    body   body  request.EstimateDraftRequest true  "Entry form"
// @Success  200 {file} file
// @Failure  400 {object} pkg.HTTPError
// @Failure  500 {object} pkg.HTTPError
// @Router   /estimates/export [post]
func (h *ExportHandler) ExportDraft(c *gin.Context) {
	var payload request.EstimateDraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	doc, err := h.usecase.ExportDraft(c.Request.Context(), payload.ToDraft(), exportFormat(c))
	if err != nil {
		writeError(c, mapExportError(err))
		return
	}
	writeDocument(c, doc)
}

func exportFormat(c *gin.Context) entities.ExportFormat {
	return entities.ExportFormat(c.Query("format"))
}

func writeDocument(c *gin.Context, doc entities.ExportDocument) {
	disposition := "attachment"
	if c.Query("inline") == "true" {
		disposition = "inline"
	}
	c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, doc.FileName))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
