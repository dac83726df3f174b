package routes

import (
	"calcplanner/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathMaterials = "/materials"
	PathHandoff   = "/handoff"
	PathEvents    = "/events"
	PathExports   = "/exports"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addMaterialRoutes(rg *gin.RouterGroup, materialHandler *handlers.MaterialHandler) {
	materials := rg.Group(PathMaterials)
	{
		materials.GET("", materialHandler.ListMaterials)
		materials.PATCH("/:id/price", materialHandler.UpdatePrice)
	}
}

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, exportHandler *handlers.ExportHandler) {
	estimates := rg.Group(PathEstimates)
	{
		// entry form
		estimates.GET("/new", estimateHandler.NewDraft)
		estimates.POST("/preview", estimateHandler.PreviewEstimate)
		estimates.POST("/export", exportHandler.ExportDraft)
		estimates.POST("", estimateHandler.CreateEstimate)

		// saved list
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.DELETE("", estimateHandler.ClearEstimates)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.DELETE("/:id", estimateHandler.DeleteEstimate)
		estimates.POST("/:id/edit", estimateHandler.EditEstimate)
		estimates.GET("/:id/export", exportHandler.ExportEstimate)
	}

	rg.GET(PathExports+"/formats", exportHandler.ListFormats)
}

func addHandoffRoutes(rg *gin.RouterGroup, handoffHandler *handlers.HandoffHandler, eventsHandler *handlers.EventsHandler) {
	handoff := rg.Group(PathHandoff)
	{
		handoff.GET("", handoffHandler.GetPending)
		handoff.POST("/take", handoffHandler.Take)
		handoff.DELETE("", handoffHandler.Clear)
	}
	rg.GET(PathEvents, eventsHandler.Stream)
}
