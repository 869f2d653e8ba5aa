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
// Employee Handler
// CRUD nhân viên (chỉ admin được tạo/sửa)
// ===========================================================================

// EmployeeHandler xử lý các endpoint employee
type EmployeeHandler struct {
	directoryService services.DirectoryService
	logger           *zap.Logger
}

// NewEmployeeHandler tạo handler mới
func NewEmployeeHandler(directoryService services.DirectoryService, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		directoryService: directoryService,
		logger:           logger,
	}
}

// CreateEmployeeRequest body tạo nhân viên mới
type CreateEmployeeRequest struct {
	EmpNo    string `json:"emp_no" binding:"required,max=50"`
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin manager agent trainee"`
	Capacity int    `json:"capacity" binding:"min=0"`
}

// UpdateEmployeeRequest body cập nhật nhân viên, field nil giữ nguyên
type UpdateEmployeeRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin manager agent trainee"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// List lấy danh sách nhân viên
// GET /api/v1/employees?search=&role=&page=&limit=
func (h *EmployeeHandler) List(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var pagination dto.PaginationRequest
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}
	pagination.Normalize(20, 100)

	filters := map[string]interface{}{}
	if role := c.Query("role"); role != "" {
		filters["role"] = role
	}

	employees, total, err := h.directoryService.ListEmployees(c.Request.Context(), repositories.FindOptions{
		Offset:  pagination.Offset(),
		Limit:   pagination.Limit,
		Search:  c.Query("search"),
		Filters: filters,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessWithMeta(employees, dto.NewMeta(pagination.Page, pagination.Limit, total)))
}

// Get lấy chi tiết một nhân viên
// GET /api/v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Employee ID không hợp lệ"))
		return
	}

	employee, err := h.directoryService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(employee))
}

// Create tạo nhân viên mới
// POST /api/v1/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	employee, err := h.directoryService.CreateEmployee(c.Request.Context(), services.CreateEmployeeInput{
		EmpNo:    req.EmpNo,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.EmployeeRole(req.Role),
		Capacity: req.Capacity,
	})
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusCreated, dto.Success(employee))
}

// Update cập nhật nhân viên
// PATCH /api/v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Employee ID không hợp lệ"))
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("INVALID_REQUEST", err.Error()))
		return
	}

	input := services.UpdateEmployeeInput{
		Name:     req.Name,
		Capacity: req.Capacity,
		IsActive: req.IsActive,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.EmployeeRole(*req.Role)
		input.Role = &role
	}

	employee, err := h.directoryService.UpdateEmployee(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.logger, requestID, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success(employee))
}

// RegisterRoutes đăng ký routes
// Tạo/sửa nhân viên chỉ dành cho admin
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup, requireManager, requireAdmin gin.HandlerFunc) {
	employees := rg.Group("/employees")
	{
		employees.GET("", requireManager, h.List)
		employees.GET("/:id", requireManager, h.Get)
		employees.POST("", requireAdmin, h.Create)
		employees.PATCH("/:id", requireAdmin, h.Update)
	}
}
