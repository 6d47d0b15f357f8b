package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kifedha/corebank_backend/internal/apperrors"
	portssvc "github.com/kifedha/corebank_backend/internal/core/ports/services"
	"github.com/kifedha/corebank_backend/internal/dto"
	"github.com/kifedha/corebank_backend/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService   portssvc.JournalSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(js portssvc.JournalSvcFacade, rs portssvc.ReportingSvcFacade) *journalHandler {
	return &journalHandler{
		journalService:   js,
		reportingService: rs,
	}
}

// registerJournalRoutes registers routes related to journal entries and reporting.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newJournalHandler(journalService, reportingService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createEntry)
		journals.GET("", h.listEntries)
		// Static segments before the :id wildcard so gin routes them first.
		journals.GET("/trial-balance", h.trialBalance)
		journals.POST("/post", h.postEntries)
		journals.GET("/:id", h.getEntry)
		journals.PUT("/:id", h.updateEntry)
		journals.PATCH("/:id", h.updateEntry)
		journals.DELETE("/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a draft journal entry with its lines; debits must equal credits
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced entry"
// @Failure 500 {object} map[string]string "Failed to create entry"
// @Router /journals [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create journal entry", slog.String("date", req.Date), slog.Int("line_count", len(req.Lines)))

	entry, err := h.journalService.CreateEntry(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		}
		return
	}

	logger.Info("Journal entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry by ID
// @Description Retrieves a journal entry and its lines
// @Tags journals
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to retrieve entry"
// @Router /journals/{id} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to get entry from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Retrieves journal entries with their lines, newest first
// @Tags journals
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /journals [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list journal entries"})
		return
	}

	logger.Info("Journal entries listed successfully", slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Updates header fields; supplying lines replaces the whole line set after re-validation
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID to update"
// @Param   entry body dto.UpdateEntryRequest true "Entry details to update"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid input or unbalanced line set"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to update entry"
// @Router /journals/{id} [put]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("target_entry_id", entryID))

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update journal entry"})
		}
		return
	}

	logger.Info("Journal entry updated successfully")
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Description Deletes a journal entry and its lines
// @Tags journals
// @Produce  json
// @Param   id path string true "Entry ID to delete"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Entry not found"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /journals/{id} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	logger = logger.With(slog.String("target_entry_id", entryID))

	err := h.journalService.DeleteEntry(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Journal entry not found for deletion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		} else {
			logger.Error("Failed to delete entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		}
		return
	}

	logger.Info("Journal entry deleted successfully")
	c.Status(http.StatusNoContent)
}

// postEntries godoc
// @Summary Post journal entries
// @Description Marks the given entries posted. The returned count is the number of rows actually updated: unknown ids are skipped, duplicate ids collapse to one, and re-posting an already-posted entry still counts.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   batch body dto.PostEntriesRequest true "Entry ids to post"
// @Success 200 {object} dto.PostEntriesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to post entries"
// @Router /journals/post [post]
func (h *journalHandler) postEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PostEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PostEntries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to post journal entries", slog.Int("id_count", len(req.IDs)))

	posted, err := h.journalService.PostEntries(c.Request.Context(), req.IDs)
	if err != nil {
		logger.Error("Failed to post entries in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post journal entries"})
		return
	}

	logger.Info("Journal entries posted", slog.Int64("posted", posted))
	c.JSON(http.StatusOK, dto.PostEntriesResponse{Posted: posted})
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Aggregates posted journal lines per account, ordered by account code; start and end bound the entry date inclusively
// @Tags journals
// @Produce  json
// @Param   start query string false "Start date (YYYY-MM-DD)"
// @Param   end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date parameter"
// @Failure 500 {object} map[string]string "Failed to build trial balance"
// @Router /journals/trial-balance [get]
func (h *journalHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var start, end *time.Time
	startStr := c.Query("start")
	endStr := c.Query("end")

	if startStr != "" {
		t, err := time.Parse(dto.DateFormat, startStr)
		if err != nil {
			logger.Warn("Invalid start date for trial balance", slog.String("start", startStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start date, expected YYYY-MM-DD"})
			return
		}
		start = &t
	}
	if endStr != "" {
		t, err := time.Parse(dto.DateFormat, endStr)
		if err != nil {
			logger.Warn("Invalid end date for trial balance", slog.String("end", endStr))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end date, expected YYYY-MM-DD"})
			return
		}
		end = &t
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), start, end)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trial balance"})
		return
	}

	logger.Info("Trial balance built", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, startStr, endStr))
}
