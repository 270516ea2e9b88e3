package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mkoech/police-profiling/internal/app/models"
	"github.com/mkoech/police-profiling/internal/app/models/dto"
	"github.com/mkoech/police-profiling/internal/app/repositories"
	"github.com/mkoech/police-profiling/internal/app/services"
	"github.com/mkoech/police-profiling/internal/middleware"
	"github.com/mkoech/police-profiling/internal/pkg/apperrors"
	"github.com/mkoech/police-profiling/internal/pkg/helpers"
)

// CriminalController handles criminal profiles, search and statistics.
type CriminalController struct {
	criminalService *services.CriminalService
}

// NewCriminalController creates a new CriminalController.
func NewCriminalController(criminalService *services.CriminalService) *CriminalController {
	return &CriminalController{criminalService: criminalService}
}

func parseCriminalID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.New(apperrors.ErrInvalidRequest, "criminal id must be a UUID")
	}
	return id, nil
}

// filterFromQuery reads the GET-form search filter. The boolean filter
// is lenient: only the literals "true" and "false" apply it.
func filterFromQuery(c *gin.Context) repositories.CriminalFilter {
	filter := repositories.CriminalFilter{
		IsIncarcerated: helpers.ParseOptionalBool(c.Query("is_incarcerated")),
	}

	if q := c.Query("q"); q != "" {
		filter.Query = &q
	}
	if tl := models.ThreatLevel(c.Query("threat_level")); tl.IsValid() {
		filter.ThreatLevel = &tl
	}
	if g := models.Gender(c.Query("gender")); g.IsValid() {
		filter.Gender = &g
	}
	return filter
}

// List handles GET /criminals. The search filters double as list
// filters.
func (ctrl *CriminalController) List(c *gin.Context) {
	page, size := helpers.ParsePaginationParams(c)

	criminals, pagination, err := ctrl.criminalService.List(c.Request.Context(), filterFromQuery(c), page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"criminals":  criminals,
		"pagination": pagination,
	}))
}

// Search handles GET /criminals/search with lenient query-string
// filters.
func (ctrl *CriminalController) Search(c *gin.Context) {
	ctrl.List(c)
}

// SearchPost handles POST /criminals/search with a validated body.
func (ctrl *CriminalController) SearchPost(c *gin.Context) {
	var req dto.SearchCriminalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := repositories.CriminalFilter{
		Query:          req.Query,
		IsIncarcerated: req.IsIncarcerated,
	}
	if req.ThreatLevel != nil {
		tl := models.ThreatLevel(*req.ThreatLevel)
		filter.ThreatLevel = &tl
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		filter.Gender = &g
	}

	page, size := helpers.ParsePaginationParams(c)
	criminals, pagination, err := ctrl.criminalService.List(c.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"criminals":  criminals,
		"pagination": pagination,
	}))
}

// Stats handles GET /criminals/stats.
func (ctrl *CriminalController) Stats(c *gin.Context) {
	stats, err := ctrl.criminalService.Stats(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(stats))
}

// Get handles GET /criminals/:id.
func (ctrl *CriminalController) Get(c *gin.Context) {
	id, err := parseCriminalID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	criminal, err := ctrl.criminalService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(criminal))
}

// Create handles POST /criminals. Callers without an officer profile
// still succeed; attribution stays unset.
func (ctrl *CriminalController) Create(c *gin.Context) {
	var req dto.CreateCriminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	criminal, err := ctrl.criminalService.Create(c.Request.Context(), &req, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(criminal))
}

// Update handles PUT /criminals/:id.
func (ctrl *CriminalController) Update(c *gin.Context) {
	id, err := parseCriminalID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateCriminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	criminal, err := ctrl.criminalService.Update(c.Request.Context(), id, &req, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(criminal))
}

// Delete handles DELETE /criminals/:id.
func (ctrl *CriminalController) Delete(c *gin.Context) {
	id, err := parseCriminalID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.criminalService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateStatus handles PATCH /criminals/:id/update_status.
func (ctrl *CriminalController) UpdateStatus(c *gin.Context) {
	id, err := parseCriminalID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateIncarcerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	criminal, err := ctrl.criminalService.UpdateStatus(c.Request.Context(), id, &req, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(criminal))
}

// UploadImage handles POST /criminals/:id/image with a multipart
// "image" field.
func (ctrl *CriminalController) UploadImage(c *gin.Context) {
	id, err := parseCriminalID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.New(apperrors.ErrValidationFailed, "an image file is required"))
		return
	}

	criminal, err := ctrl.criminalService.UploadProfilePicture(c.Request.Context(), id, file, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(criminal))
}
