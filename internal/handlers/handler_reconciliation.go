package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/kifedha/corebank_backend/internal/middleware"
)

// reconciliationHandler handles HTTP requests related to bank reconciliation records.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{
		reconciliationService: rs,
	}
}

// registerReconciliationRoutes registers routes related to bank reconciliations.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	recons := rg.Group("/bank-reconciliations")
	{
		recons.POST("", h.createReconciliation)
		recons.GET("", h.listReconciliations)
		recons.GET("/:id", h.getReconciliation)
		recons.PUT("/:id", h.updateReconciliation)
		recons.PATCH("/:id", h.updateReconciliation)
		recons.DELETE("/:id", h.deleteReconciliation)
	}
}

// createReconciliation godoc
// @Summary Capture a bank statement balance
// @Description Records the closing balance of a bank statement against an account
// @Tags bank-reconciliations
// @Accept  json
// @Produce  json
// @Param   reconciliation body dto.CreateReconciliationRequest true "Reconciliation details"
// @Success 201 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown account"
// @Failure 500 {object} map[string]string "Failed to create reconciliation"
// @Router /bank-reconciliations [post]
func (h *reconciliationHandler) createReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recon, err := h.reconciliationService.CreateReconciliation(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating reconciliation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create reconciliation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reconciliation"})
		}
		return
	}

	logger.Info("Reconciliation created", slog.String("reconciliation_id", recon.ReconciliationID))
	c.JSON(http.StatusCreated, dto.ToReconciliationResponse(recon))
}

// getReconciliation godoc
// @Summary Get a reconciliation record by ID
// @Tags bank-reconciliations
// @Produce  json
// @Param   id path string true "Reconciliation ID"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve reconciliation"
// @Router /bank-reconciliations/{id} [get]
func (h *reconciliationHandler) getReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("id")

	recon, err := h.reconciliationService.GetReconciliationByID(c.Request.Context(), reconciliationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reconciliation not found", slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Reconciliation not found"})
		} else {
			logger.Error("Failed to get reconciliation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve reconciliation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationResponse(recon))
}

// listReconciliations godoc
// @Summary List reconciliation records
// @Description Retrieves reconciliation records, newest statement first
// @Tags bank-reconciliations
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListReconciliationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list reconciliations"
// @Router /bank-reconciliations [get]
func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListReconciliationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListReconciliations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	records, err := h.reconciliationService.ListReconciliations(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list reconciliations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reconciliations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReconciliationsResponse(records))
}

// updateReconciliation godoc
// @Summary Update a reconciliation record
// @Tags bank-reconciliations
// @Accept  json
// @Produce  json
// @Param   id path string true "Reconciliation ID to update"
// @Param   reconciliation body dto.UpdateReconciliationRequest true "Reconciliation details to update"
// @Success 200 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 500 {object} map[string]string "Failed to update reconciliation"
// @Router /bank-reconciliations/{id} [put]
func (h *reconciliationHandler) updateReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("id")

	var req dto.UpdateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	recon, err := h.reconciliationService.UpdateReconciliation(c.Request.Context(), reconciliationID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reconciliation not found for update", slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Reconciliation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating reconciliation", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update reconciliation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reconciliation"})
		}
		return
	}

	logger.Info("Reconciliation updated", slog.String("reconciliation_id", recon.ReconciliationID))
	c.JSON(http.StatusOK, dto.ToReconciliationResponse(recon))
}

// deleteReconciliation godoc
// @Summary Delete a reconciliation record
// @Tags bank-reconciliations
// @Produce  json
// @Param   id path string true "Reconciliation ID to delete"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 500 {object} map[string]string "Failed to delete reconciliation"
// @Router /bank-reconciliations/{id} [delete]
func (h *reconciliationHandler) deleteReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("id")

	err := h.reconciliationService.DeleteReconciliation(c.Request.Context(), reconciliationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Reconciliation not found for deletion", slog.String("reconciliation_id", reconciliationID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Reconciliation not found"})
		} else {
			logger.Error("Failed to delete reconciliation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reconciliation"})
		}
		return
	}

	logger.Info("Reconciliation deleted", slog.String("reconciliation_id", reconciliationID))
	c.Status(http.StatusNoContent)
}
