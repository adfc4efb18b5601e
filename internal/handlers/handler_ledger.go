package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/finassoc/association_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for the movement ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

// registerLedgerRoutes registers routes related to the movement ledger.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	movements := rg.Group("/movements")
	{
		movements.GET("", h.listMovements)
		movements.GET("/:id", h.getMovement)
		movements.GET("/origin/:originType/:originID", h.getMovementsByOrigin)
	}

	rg.POST("/ledger/reset", h.resetLedger)
}

// listMovements godoc
// @Summary List ledger movements
// @Description Retrieves a page of movements, newest first, with keyset pagination
// @Tags movements
// @Produce  json
// @Param   accountID query string false "Filter by account"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Opaque token for the next page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list movements"
// @Security BearerAuth
// @Router /movements [get]
func (h *ledgerHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListMovements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListMovements(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list movements from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list movements"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getMovement godoc
// @Summary Get a movement by ID
// @Tags movements
// @Produce  json
// @Param   id path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Movement not found"
// @Failure 500 {object} map[string]string "Failed to retrieve movement"
// @Security BearerAuth
// @Router /movements/{id} [get]
func (h *ledgerHandler) getMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	movementID := c.Param("id")

	movement, err := h.ledgerService.GetMovementByID(c.Request.Context(), movementID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movement not found"})
		} else {
			logger.Error("Failed to get movement from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// getMovementsByOrigin godoc
// @Summary Get movements by origin record
// @Description Retrieves the movements produced by an obligation, donation or adjustment
// @Tags movements
// @Produce  json
// @Param   originType path string true "Origin type" Enums(PAYABLE, RECEIVABLE, DONATION, ADJUSTMENT)
// @Param   originID path string true "Origin record ID"
// @Success 200 {array} dto.MovementResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve movements"
// @Security BearerAuth
// @Router /movements/origin/{originType}/{originID} [get]
func (h *ledgerHandler) getMovementsByOrigin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	originType := domain.OriginType(c.Param("originType"))
	originID := c.Param("originID")

	movements, err := h.ledgerService.GetMovementsByOrigin(c.Request.Context(), originType, originID)
	if err != nil {
		logger.Error("Failed to get movements by origin", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve movements"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMovementResponses(movements))
}

// resetLedger godoc
// @Summary Reset the ledger
// @Description Deletes every movement and zeroes every account balance. Irreversible.
// @Tags movements
// @Produce  json
// @Success 200 {object} dto.ResetLedgerResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to reset ledger"
// @Security BearerAuth
// @Router /ledger/reset [post]
func (h *ledgerHandler) resetLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.ledgerService.ResetAllBalances(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to reset ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset ledger"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
