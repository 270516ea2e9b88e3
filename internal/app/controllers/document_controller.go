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

// DocumentController handles document record endpoints.
type DocumentController struct {
	documentService *services.DocumentService
}

// NewDocumentController creates a new DocumentController.
func NewDocumentController(documentService *services.DocumentService) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// List handles GET /criminal-documents.
func (ctrl *DocumentController) List(c *gin.Context) {
	criminalID, err := criminalIDFilter(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	page, size := helpers.ParsePaginationParams(c)
	documents, pagination, err := ctrl.documentService.List(c.Request.Context(), criminalID, page, size)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"documents":  documents,
		"pagination": pagination,
	}))
}

// Get handles GET /criminal-documents/:id.
func (ctrl *DocumentController) Get(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	document, err := ctrl.documentService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(document))
}

// Create handles POST /criminal-documents as a multipart form with a
// required "file" part.
func (ctrl *DocumentController) Create(c *gin.Context) {
	var req dto.CreateDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		middleware.HandleAPIError(c, apperrors.New(apperrors.ErrValidationFailed, "a document file is required"))
		return
	}

	document, err := ctrl.documentService.Create(c.Request.Context(), &req, file, middleware.GetOfficerID(c))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(document))
}

// Update handles PUT /criminal-documents/:id.
func (ctrl *DocumentController) Update(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	document, err := ctrl.documentService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(document))
}

// Delete handles DELETE /criminal-documents/:id.
func (ctrl *DocumentController) Delete(c *gin.Context) {
	id, err := parseRecordID(c)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.documentService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
