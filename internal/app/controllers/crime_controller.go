package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/services"
	"github.com/mkoech/police-profiling/internal/middleware"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
)

// CrimeController handles crime record endpoints.
type CrimeController struct {
	crimeService *services.CrimeService
}

// NewCrimeController creates a new CrimeController.
func NewCrimeController(crimeService *services.CrimeService) *CrimeController {
	return &CrimeController{crimeService: crimeService}
}

func parseRecordID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.ErrInvalidRequest, "record id must be a UUID")
	}
	return id, nil
}

// criminalIDFilter reads the optional criminal_id query parameter.
func criminalIDFilter(c *gin.Context) (*uuid.UUID, error) {
	raw := c.Query("criminal_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrInvalidRequest, "criminal_id must be a UUID")
	}
	return &id, nil
}

// List handles GET /crimes.
func (ctrl *CrimeController) List(c *gin.Context) {
	criminalID, err := criminalIDFilter(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)
	crimes, pagination, err := ctrl.crimeService.List(c.Request.Context(), criminalID, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"crimes":     crimes,
		"pagination": pagination,
	}))
}

// Get handles GET /crimes/:id.
func (ctrl *CrimeController) Get(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	crime, err := ctrl.crimeService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(crime))
}

// Create handles POST /crimes.
func (ctrl *CrimeController) Create(c *gin.Context) {
	var req dto.CreateCrimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	crime, err := ctrl.crimeService.Create(c.Request.Context(), &req, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(crime))
}

// Update handles PUT /crimes/:id.
func (ctrl *CrimeController) Update(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCrimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	crime, err := ctrl.crimeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(crime))
}

// Delete handles DELETE /crimes/:id.
func (ctrl *CrimeController) Delete(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.crimeService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
