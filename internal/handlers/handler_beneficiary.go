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

// beneficiaryHandler handles HTTP requests for beneficiary records.
type beneficiaryHandler struct {
	beneficiaryService portssvc.BeneficiarySvcFacade
}

// newBeneficiaryHandler creates a new beneficiaryHandler.
func newBeneficiaryHandler(beneficiaryService portssvc.BeneficiarySvcFacade) *beneficiaryHandler {
	return &beneficiaryHandler{beneficiaryService: beneficiaryService}
}

// registerBeneficiaryRoutes registers routes related to beneficiaries.
func registerBeneficiaryRoutes(rg *gin.RouterGroup, beneficiaryService portssvc.BeneficiarySvcFacade) {
	h := newBeneficiaryHandler(beneficiaryService)

	beneficiaries := rg.Group("/beneficiaries")
	{
		beneficiaries.POST("", h.createBeneficiary)
		beneficiaries.GET("", h.listBeneficiaries)
		beneficiaries.GET("/:id", h.getBeneficiary)
		beneficiaries.PUT("/:id", h.updateBeneficiary)
		beneficiaries.DELETE("/:id", h.deleteBeneficiary)
	}
}

// createBeneficiary godoc
// @Summary Register a beneficiary
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   beneficiary body dto.CreateBeneficiaryRequest true "Beneficiary details"
// @Success 201 {object} dto.BeneficiaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create beneficiary"
// @Security BearerAuth
// @Router /beneficiaries [post]
func (h *beneficiaryHandler) createBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBeneficiary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	beneficiary, err := h.beneficiaryService.CreateBeneficiary(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create beneficiary in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create beneficiary"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBeneficiaryResponse(beneficiary))
}

// listBeneficiaries godoc
// @Summary List beneficiaries
// @Tags beneficiaries
// @Produce  json
// @Param   limit query int false "Limit number of results" default(50)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBeneficiariesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list beneficiaries"
// @Security BearerAuth
// @Router /beneficiaries [get]
func (h *beneficiaryHandler) listBeneficiaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBeneficiaries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.beneficiaryService.ListBeneficiaries(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list beneficiaries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list beneficiaries"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getBeneficiary godoc
// @Summary Get a beneficiary by ID
// @Tags beneficiaries
// @Produce  json
// @Param   id path string true "Beneficiary ID"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Failure 500 {object} map[string]string "Failed to retrieve beneficiary"
// @Security BearerAuth
// @Router /beneficiaries/{id} [get]
func (h *beneficiaryHandler) getBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beneficiaryID := c.Param("id")

	beneficiary, err := h.beneficiaryService.GetBeneficiaryByID(c.Request.Context(), beneficiaryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beneficiary not found"})
		} else {
			logger.Error("Failed to get beneficiary from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve beneficiary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(beneficiary))
}

// updateBeneficiary godoc
// @Summary Update a beneficiary
// @Tags beneficiaries
// @Accept  json
// @Produce  json
// @Param   id path string true "Beneficiary ID to update"
// @Param   beneficiary body dto.UpdateBeneficiaryRequest true "Fields to update"
// @Success 200 {object} dto.BeneficiaryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Failure 500 {object} map[string]string "Failed to update beneficiary"
// @Security BearerAuth
// @Router /beneficiaries/{id} [put]
func (h *beneficiaryHandler) updateBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beneficiaryID := c.Param("id")

	var req dto.UpdateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBeneficiary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	beneficiary, err := h.beneficiaryService.UpdateBeneficiary(c.Request.Context(), beneficiaryID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beneficiary not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update beneficiary in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update beneficiary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBeneficiaryResponse(beneficiary))
}

// deleteBeneficiary godoc
// @Summary Delete a beneficiary
// @Description Removes a beneficiary that no obligation references
// @Tags beneficiaries
// @Produce  json
// @Param   id path string true "Beneficiary ID to delete"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Beneficiary not found"
// @Failure 409 {object} map[string]string "Beneficiary is referenced by obligations"
// @Failure 500 {object} map[string]string "Failed to delete beneficiary"
// @Security BearerAuth
// @Router /beneficiaries/{id} [delete]
func (h *beneficiaryHandler) deleteBeneficiary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	beneficiaryID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.beneficiaryService.DeleteBeneficiary(c.Request.Context(), beneficiaryID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beneficiary not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Beneficiary is referenced by obligations"})
		} else {
			logger.Error("Failed to delete beneficiary in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete beneficiary"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
