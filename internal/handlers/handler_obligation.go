package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/finassoc/association_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// obligationHandler handles HTTP requests for payables and receivables.
type obligationHandler struct {
	obligationService portssvc.ObligationSvcFacade
}

// newObligationHandler creates a new obligationHandler.
func newObligationHandler(obligationService portssvc.ObligationSvcFacade) *obligationHandler {
	return &obligationHandler{obligationService: obligationService}
}

// registerObligationRoutes registers routes related to obligations.
func registerObligationRoutes(rg *gin.RouterGroup, obligationService portssvc.ObligationSvcFacade) {
	h := newObligationHandler(obligationService)

	obligations := rg.Group("/obligations")
	{
		obligations.POST("", h.createObligation)
		obligations.GET("", h.listObligations)
		obligations.GET("/:id", h.getObligation)
		obligations.PUT("/:id", h.updateObligation)
		obligations.DELETE("/:id", h.deleteObligation)
		obligations.POST("/:id/settle", h.settleObligation)
		obligations.POST("/:id/revert", h.revertObligation)
	}
}

// createObligation godoc
// @Summary Create a payable or receivable
// @Description Creates an obligation. A recurring request fans out into monthly installments.
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   obligation body dto.CreateObligationRequest true "Obligation details"
// @Success 201 {object} dto.ListObligationsResponse
// @Failure 400 {object} map[string]string "Invalid input or missing reference"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create obligation"
// @Security BearerAuth
// @Router /obligations [post]
func (h *obligationHandler) createObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	obligations, err := h.obligationService.CreateObligation(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidAmount) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create obligation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create obligation"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToListObligationsResponse(obligations))
}

// listObligations godoc
// @Summary List obligations
// @Tags obligations
// @Produce  json
// @Param   kind query string false "Filter by kind" Enums(PAYABLE, RECEIVABLE)
// @Param   status query string false "Filter by status" Enums(PENDING, SETTLED)
// @Param   dueFrom query string false "Due date lower bound (YYYY-MM-DD)"
// @Param   dueUntil query string false "Due date upper bound (YYYY-MM-DD)"
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListObligationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list obligations"
// @Security BearerAuth
// @Router /obligations [get]
func (h *obligationHandler) listObligations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListObligationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListObligations", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.obligationService.ListObligations(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list obligations from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list obligations"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getObligation godoc
// @Summary Get an obligation by ID
// @Tags obligations
// @Produce  json
// @Param   id path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to retrieve obligation"
// @Security BearerAuth
// @Router /obligations/{id} [get]
func (h *obligationHandler) getObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("id")

	obligation, err := h.obligationService.GetObligationByID(c.Request.Context(), obligationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
		} else {
			logger.Error("Failed to get obligation from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve obligation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// updateObligation godoc
// @Summary Update an obligation
// @Description Applies a partial update. Status changes route through settlement or reversal.
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   id path string true "Obligation ID to update"
// @Param   obligation body dto.UpdateObligationRequest true "Fields to update"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to update obligation"
// @Security BearerAuth
// @Router /obligations/{id} [put]
func (h *obligationHandler) updateObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("id")

	var req dto.UpdateObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	obligation, err := h.obligationService.UpdateObligation(c.Request.Context(), obligationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update obligation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update obligation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// deleteObligation godoc
// @Summary Delete an obligation
// @Description Removes an obligation, reversing its ledger effect if it was settled
// @Tags obligations
// @Produce  json
// @Param   id path string true "Obligation ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to delete obligation"
// @Security BearerAuth
// @Router /obligations/{id} [delete]
func (h *obligationHandler) deleteObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.obligationService.DeleteObligation(c.Request.Context(), obligationID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
		} else {
			logger.Error("Failed to delete obligation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete obligation"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// settleObligation godoc
// @Summary Settle a pending obligation
// @Description Marks the obligation settled and records the ledger movement. Settling an already settled obligation is a no-op.
// @Tags obligations
// @Accept  json
// @Produce  json
// @Param   id path string true "Obligation ID"
// @Param   settlement body dto.SettleObligationRequest true "Settlement overrides"
// @Success 200 {object} dto.ObligationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to settle obligation"
// @Security BearerAuth
// @Router /obligations/{id}/settle [post]
func (h *obligationHandler) settleObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("id")

	var req dto.SettleObligationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleObligation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	obligation, err := h.obligationService.SettleObligation(c.Request.Context(), obligationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to settle obligation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle obligation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}

// revertObligation godoc
// @Summary Revert a settled obligation to pending
// @Description Removes the settlement movements and compensates the account balance. Reverting a pending obligation is a no-op.
// @Tags obligations
// @Produce  json
// @Param   id path string true "Obligation ID"
// @Success 200 {object} dto.ObligationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Obligation not found"
// @Failure 500 {object} map[string]string "Failed to revert obligation"
// @Security BearerAuth
// @Router /obligations/{id}/revert [post]
func (h *obligationHandler) revertObligation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	obligationID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	obligation, err := h.obligationService.RevertObligationToPending(c.Request.Context(), obligationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Obligation not found"})
		} else {
			logger.Error("Failed to revert obligation in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revert obligation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToObligationResponse(obligation))
}
