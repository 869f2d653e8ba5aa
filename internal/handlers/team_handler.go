package handlers

import (
	"net/http"

	"callcenter-gin/internal/dto"
	"callcenter-gin/internal/middleware"
	"callcenter-gin/internal/repositories"
	"callcenter-gin/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ===========================================================================
// Team Handler
// CRUD team + quản lý thành viên
// ===========================================================================

// TeamHandler xử lý các endpoint team
type TeamHandler struct {
	directoryService services.DirectoryService
	logger           *zap.Logger
}

// NewTeamHandler tạo handler mới
func NewTeamHandler(directoryService services.DirectoryService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		directoryService: directoryService,
		logger:           logger,
	}
}

// CreateTeamRequest body tạo team mới
type CreateTeamRequest struct {
	Code             string      `json:"code" binding:"required,max=50"`
	Name             string      `json:"name" binding:"required,max=255"`
	DefaultProjectID *uuid.UUID  `json:"default_project_id"`
	EmployeeIDs      []uuid.UUID `json:"employee_ids"`
}

// SetMembersRequest body thay danh sách thành viên
type SetMembersRequest struct {
	EmployeeIDs []uuid.UUID `json:"employee_ids" binding:"required"`
}

// List lấy danh sách teams
// GET /api/v1/teams
func (h *TeamHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var pagination dto.PaginationRequest
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	pagination.Normalize(20, 100)

	teams, total, err := h.directoryService.ListTeams(c.Request.Context(), repositories.FindOptions{
		Offset: pagination.Offset(),
		Limit:  pagination.Limit,
		Search: c.Query("search"),
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(teams, dto.NewMeta(pagination.Page, pagination.Limit, total)))
}

// Get lấy chi tiết team (kèm thành viên)
// GET /api/v1/teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Team ID không hợp lệ"))
		return
	}

	team, err := h.directoryService.GetTeam(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(team))
}

// Create tạo team mới
// POST /api/v1/teams
func (h *TeamHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	team, err := h.directoryService.CreateTeam(c.Request.Context(), services.CreateTeamInput{
		Code:             req.Code,
		Name:             req.Name,
		DefaultProjectID: req.DefaultProjectID,
		EmployeeIDs:      req.EmployeeIDs,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(team))
}

// SetMembers thay toàn bộ danh sách thành viên của team
// PUT /api/v1/teams/:id/members
func (h *TeamHandler) SetMembers(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Team ID không hợp lệ"))
		return
	}

	var req SetMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	team, err := h.directoryService.SetTeamMembers(c.Request.Context(), id, req.EmployeeIDs)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(team))
}

// Delete xóa team (soft delete)
// DELETE /api/v1/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Team ID không hợp lệ"))
		return
	}

	if err := h.directoryService.DeleteTeam(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}

// RegisterRoutes đăng ký routes
// Toàn bộ mutation chỉ dành cho manager/admin
func (h *TeamHandler) RegisterRoutes(rg *gin.RouterGroup, requireManager gin.HandlerFunc) {
	teams := rg.Group("/teams")
	{
		teams.GET("", h.List)
		teams.GET("/:id", h.Get)
		teams.POST("", requireManager, h.Create)
		teams.PUT("/:id/members", requireManager, h.SetMembers)
		teams.DELETE("/:id", requireManager, h.Delete)
	}
}
