package handlers

import (
	"errors"
	"net/http"

	"calcplanner/internal/usecase"
	"calcplanner/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoPendingEdit  = pkg.NewDomainErrorSimple("NO_PENDING_EDIT", "No estimate is waiting to be edited", http.StatusNotFound)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateName):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_NAME", "Estimate name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoMaterialSelected):
		return pkg.NewDomainErrorSimple("NO_MATERIAL_SELECTED", "Select at least one material", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoQuantityEntered):
		return pkg.NewDomainErrorSimple("NO_QUANTITY_ENTERED", "Enter a quantity for at least one selected material", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Unsupported export format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExportFailed):
		return pkg.NewDomainError("EXPORT_FAILED", "The document could not be generated", err, http.StatusInternalServerError)
	default:
		return mapEstimateError(err)
	}
}
