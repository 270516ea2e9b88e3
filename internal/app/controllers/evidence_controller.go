package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/services"
	"github.com/mkoech/police-profiling/internal/middleware"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
)

// EvidenceController handles evidence record endpoints.
type EvidenceController struct {
	evidenceService *services.EvidenceService
}

// NewEvidenceController creates a new EvidenceController.
func NewEvidenceController(evidenceService *services.EvidenceService) *EvidenceController {
	return &EvidenceController{evidenceService: evidenceService}
}

// List handles GET /criminal-evidence.
func (ctrl *EvidenceController) List(c *gin.Context) {
	criminalID, err := criminalIDFilter(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)
	records, pagination, err := ctrl.evidenceService.List(c.Request.Context(), criminalID, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"evidence":   records,
		"pagination": pagination,
	}))
}

// Get handles GET /criminal-evidence/:id.
func (ctrl *EvidenceController) Get(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.evidenceService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// Create handles POST /criminal-evidence as a multipart form with a
// required "file" part.
func (ctrl *EvidenceController) Create(c *gin.Context) {
	var req dto.CreateEvidenceRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.New(apperrors.ErrValidationFailed, "an evidence file is required"))
		return
	}

	record, err := ctrl.evidenceService.Create(c.Request.Context(), &req, file, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// Update handles PUT /criminal-evidence/:id.
func (ctrl *EvidenceController) Update(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	record, err := ctrl.evidenceService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// Delete handles DELETE /criminal-evidence/:id.
func (ctrl *EvidenceController) Delete(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.evidenceService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
