package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/services"
	"github.com/mkoech/police-profiling/internal/middleware"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
)

// OfficerController handles officer CRUD and the activation workflow.
type OfficerController struct {
	officerService *services.OfficerService
}

// NewOfficerController creates a new OfficerController.
func NewOfficerController(officerService *services.OfficerService) *OfficerController {
	return &OfficerController{officerService: officerService}
}

func parseOfficerID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.New(apperrors.ErrInvalidRequest, "officer id must be an integer")
	}
	return id, nil
}

// List handles GET /officers.
func (ctrl *OfficerController) List(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	officers, pagination, err := ctrl.officerService.List(c.Request.Context(), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"officers":   officers,
		"pagination": pagination,
	}))
}

// Get handles GET /officers/:id.
func (ctrl *OfficerController) Get(c *gin.Context) {
	id, err := parseOfficerID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	officer, err := ctrl.officerService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(officer))
}

// Update handles PUT /officers/:id.
func (ctrl *OfficerController) Update(c *gin.Context) {
	id, err := parseOfficerID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.OfficerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	officer, err := ctrl.officerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(officer))
}

// Delete handles DELETE /officers/:id.
func (ctrl *OfficerController) Delete(c *gin.Context) {
	id, err := parseOfficerID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.officerService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Activate handles PATCH /officers/:id/activate.
func (ctrl *OfficerController) Activate(c *gin.Context) {
	id, err := parseOfficerID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.ActivateOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrAuthenticationRequired)
		return
	}

	resp, err := ctrl.officerService.Activate(c.Request.Context(), userID, id, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// PendingActivation handles GET /officers/pending_activation.
func (ctrl *OfficerController) PendingActivation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrAuthenticationRequired)
		return
	}

	officers, err := ctrl.officerService.PendingActivation(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"officers": officers}))
}
