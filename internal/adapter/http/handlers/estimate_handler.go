package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "elektrosmeta/internal/adapter/http/dto/request"
	response "elektrosmeta/internal/adapter/http/dto/response"
	"elektrosmeta/internal/domain/entities"
	"elektrosmeta/internal/usecase"
	"elektrosmeta/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidGeneratePayload = pkg.NewDomainErrorSimple("INVALID_GENERATION_INPUT", "Invalid generation payload", http.StatusBadRequest)
)

// IEstimateExporter renders a saved estimate into a downloadable file.
type IEstimateExporter interface {
	Export(e entities.Estimate) ([]byte, error)
}

// EstimateHandler handles HTTP requests for estimate generation and
// retrieval.

type EstimateHandler struct {
	generation usecase.IEstimateGenerationUseCase
	estimates  usecase.IEstimateUseCase
	exporter   IEstimateExporter
}

func NewEstimateHandler(gen usecase.IEstimateGenerationUseCase, est usecase.IEstimateUseCase, exporter IEstimateExporter) *EstimateHandler {
	return &EstimateHandler{generation: gen, estimates: est, exporter: exporter}
}

// GenerateEstimate runs the generation pipeline without persisting the
// result. The engine never returns a transport error: run-level
// failures come back as success=false with the errors listed, which
// maps to 422 here.
func (h *EstimateHandler) GenerateEstimate(c *gin.Context) {
	var payload request.GenerateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGeneratePayload.HTTPStatus, errInvalidGeneratePayload.ToHTTPError())
		return
	}

	result := h.generation.Generate(c.Request.Context(), usecase.GenerateCommand{
		FormID:      payload.ResolveFormID(),
		RequestID:   payload.RequestID,
		CompanyID:   payload.CompanyID,
		PriceListID: payload.PriceListID,
	})

	c.JSON(generationStatus(result, http.StatusOK), response.FromGenerationResult(result))
}

// CreateEstimate runs the generation pipeline and persists the result
// as a draft estimate.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.GenerateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGeneratePayload.HTTPStatus, errInvalidGeneratePayload.ToHTTPError())
		return
	}

	result := h.generation.GenerateAndSave(c.Request.Context(), usecase.GenerateAndSaveCommand{
		GenerateCommand: usecase.GenerateCommand{
			FormID:      payload.ResolveFormID(),
			RequestID:   payload.RequestID,
			CompanyID:   payload.CompanyID,
			PriceListID: payload.PriceListID,
		},
		CreatedByID: payload.CreatedByID,
	})

	c.JSON(generationStatus(result, http.StatusCreated), response.FromGenerationResult(result))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	id := c.Param("id")

	estimate, err := h.estimates.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// ExportEstimate streams the estimate as an xlsx workbook.
func (h *EstimateHandler) ExportEstimate(c *gin.Context) {
	id := c.Param("id")

	estimate, err := h.estimates.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := h.exporter.Export(estimate)
	if err != nil {
		zap.L().Error("estimate export failed", zap.String("estimate_id", id), zap.Error(err))
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Failed to export estimate", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=kosztorys_%s.xlsx", estimate.ID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func generationStatus(r *usecase.GenerationResult, okStatus int) int {
	if r.Success {
		return okStatus
	}
	return http.StatusUnprocessableEntity
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
