package handlers

import (
	"net/http"

	"callcenter-gin/internal/dto"
	"callcenter-gin/internal/middleware"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"
	"callcenter-gin/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ===========================================================================
// Project Handler
// CRUD cho dự án
// ===========================================================================

// ProjectHandler xử lý các endpoint project
type ProjectHandler struct {
	directoryService services.DirectoryService
	logger           *zap.Logger
}

// NewProjectHandler tạo handler mới
func NewProjectHandler(directoryService services.DirectoryService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		directoryService: directoryService,
		logger:           logger,
	}
}

// CreateProjectRequest body tạo dự án mới
type CreateProjectRequest struct {
	Code        string  `json:"code" binding:"required,max=50"`
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateProjectRequest body cập nhật dự án
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// List lấy danh sách dự án
// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var pagination dto.PaginationRequest
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	pagination.Normalize(20, 100)

	projects, total, err := h.directoryService.ListProjects(c.Request.Context(), repositories.FindOptions{
		Offset: pagination.Offset(),
		Limit:  pagination.Limit,
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(projects, dto.NewMeta(pagination.Page, pagination.Limit, total)))
}

// Get lấy chi tiết một dự án
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Project ID không hợp lệ"))
		return
	}

	project, err := h.directoryService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(project))
}

// Create tạo dự án mới
// POST /api/v1/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	project := &models.Project{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.directoryService.CreateProject(c.Request.Context(), project); err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(project))
}

// Update cập nhật dự án
// PATCH /api/v1/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Project ID không hợp lệ"))
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	project, err := h.directoryService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = req.Description
	}

	if err := h.directoryService.UpdateProject(c.Request.Context(), project); err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(project))
}

// Delete xóa dự án (soft delete)
// DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Project ID không hợp lệ"))
		return
	}

	if err := h.directoryService.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}

// RegisterRoutes đăng ký routes
// Mutation chỉ dành cho manager/admin
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup, requireManager gin.HandlerFunc) {
	projects := rg.Group("/projects")
	{
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.POST("", requireManager, h.Create)
		projects.PATCH("/:id", requireManager, h.Update)
		projects.DELETE("/:id", requireManager, h.Delete)
	}
}
